package models

// Session is the single locally-remembered logged-in identity.
// There is no server-side verification behind it: logging in stamps an
// email into local storage and nothing more.
type Session struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
