// Package models defines client-side data models used by the Account Butler CLI.
package models

import "strings"

// Account is a stored credential record with categorization metadata.
// The JSON tags define the persisted slot layout, so renaming a tag is a
// breaking change for existing local databases.
type Account struct {
	// ID is an opaque unique identifier, assigned at creation, immutable.
	ID string `json:"id"`

	// Name is the display name of the account. Required.
	Name string `json:"name"`

	// Description is free text used only as categorizer input; when empty,
	// Name is sent to the categorizer instead.
	Description string `json:"description,omitempty"`

	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`

	// Password is sensitive: it is never logged and is displayed masked
	// unless explicitly revealed.
	Password string `json:"password"`

	// Category and CategoryConfidence are set together by the categorizer.
	// An empty Category means the record has never been categorized.
	Category           string  `json:"category,omitempty"`
	CategoryConfidence float64 `json:"categoryConfidence,omitempty"`

	// CreatedAt is an ISO-8601 timestamp fixed at creation.
	CreatedAt string `json:"createdAt"`
}

// Categorized reports whether a categorization result has been recorded.
func (a Account) Categorized() bool {
	return a.Category != ""
}

// MaskedPassword returns a fixed-width mask for display.
func (a Account) MaskedPassword() string {
	if a.Password == "" {
		return ""
	}
	return "********"
}

// Matches reports whether term is a case-insensitive substring of the
// account's name, email, or category.
func (a Account) Matches(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(a.Name), term) ||
		strings.Contains(strings.ToLower(a.Email), term) ||
		strings.Contains(strings.ToLower(a.Category), term)
}
