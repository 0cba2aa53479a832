package models

// FormInput carries the raw add/edit form fields before validation.
// Tags follow go-playground/validator; field names in validation messages
// use the lower-camel persisted names via the name tag.
type FormInput struct {
	Name        string `name:"name" validate:"required"`
	Description string `name:"description" validate:"-"`
	Email       string `name:"email" validate:"omitempty,email"`
	PhoneNumber string `name:"phoneNumber" validate:"-"`
	Password    string `name:"password" validate:"required"`
}

// CategorizerInput resolves the text sent to the categorizer:
// the description when present, otherwise the name.
func (f FormInput) CategorizerInput() string {
	if f.Description != "" {
		return f.Description
	}
	return f.Name
}
