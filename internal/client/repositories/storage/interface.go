// Package storage provides named key-value blob slots, the local
// persistence substrate for the account collection and the session
// identity. Slots mirror a browser-profile storage model: one opaque
// serialized value per key.
package storage

import "context"

// Slot names used by the application.
const (
	SlotAccounts = "accounts"
	SlotSession  = "session"
)

// Repository describes slot operations. Implementations are backed by a
// local SQLite database in production and a map in tests.
type Repository interface {
	// Get returns the slot value, or (nil, nil) when the slot is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set upserts the slot value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the slot. Deleting an absent slot is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes all slots.
	Clear(ctx context.Context) error
}
