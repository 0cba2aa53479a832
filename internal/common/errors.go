// Package common defines shared sentinel errors used across the Account
// Butler client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Presentation-level errors.
	ErrNotLoggedIn = errors.New("not logged in")
)
