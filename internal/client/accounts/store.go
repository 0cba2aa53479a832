// Package accounts implements the record store: durable, locally-scoped
// ownership of the Account collection, persisted as a single JSON blob in
// the "accounts" storage slot. The collection keeps insertion order with
// new records prepended, and every mutation rewrites the whole slot; the
// last save wins. A single-threaded caller is assumed.
package accounts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/accountbutler/internal/client/models"
	"github.com/dmitrijs2005/accountbutler/internal/client/repositories/storage"
	"github.com/dmitrijs2005/accountbutler/internal/logging"
)

// Patch carries replacement values for an update. Nil fields are left
// untouched. ID and CreatedAt are not patchable.
type Patch struct {
	Name               *string
	Description        *string
	Email              *string
	PhoneNumber        *string
	Password           *string
	Category           *string
	CategoryConfidence *float64
}

// Store owns the persisted Account collection.
type Store struct {
	repo storage.Repository
	log  logging.Logger
}

func NewStore(repo storage.Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log.With("component", "accounts")}
}

// Load reads the persisted collection. A missing slot yields an empty
// collection. A malformed slot is self-healing: the corrupt blob is
// cleared with a warning and an empty collection is returned, so a parse
// failure never reaches the caller.
func (s *Store) Load(ctx context.Context) ([]models.Account, error) {
	blob, err := s.repo.Get(ctx, storage.SlotAccounts)
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts slot: %w", err)
	}
	if blob == nil {
		return []models.Account{}, nil
	}

	var result []models.Account
	if err := json.Unmarshal(blob, &result); err != nil {
		s.log.Warn(ctx, "accounts slot is corrupt, resetting", "error", err)
		if err := s.repo.Delete(ctx, storage.SlotAccounts); err != nil {
			return nil, fmt.Errorf("failed to clear corrupt accounts slot: %w", err)
		}
		return []models.Account{}, nil
	}
	if result == nil {
		result = []models.Account{}
	}
	return result, nil
}

// SaveAll serializes and persists the full collection, overwriting any
// prior state. There are no partial patches at the storage level.
func (s *Store) SaveAll(ctx context.Context, accounts []models.Account) error {
	blob, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to serialize accounts: %w", err)
	}
	if err := s.repo.Set(ctx, storage.SlotAccounts, blob); err != nil {
		return fmt.Errorf("failed to write accounts slot: %w", err)
	}
	return nil
}

// Add prepends the account, persists, and returns the new collection.
func (s *Store) Add(ctx context.Context, account models.Account) ([]models.Account, error) {
	current, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	updated := make([]models.Account, 0, len(current)+1)
	updated = append(updated, account)
	updated = append(updated, current...)

	if err := s.SaveAll(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Update overwrites the matching record's fields from patch, persists, and
// returns the collection. An unknown id is a no-op: the unchanged
// collection is returned without error.
func (s *Store) Update(ctx context.Context, id string, patch Patch) ([]models.Account, error) {
	current, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	changed := false
	for i := range current {
		if current[i].ID != id {
			continue
		}
		applyPatch(&current[i], patch)
		changed = true
		break
	}

	if !changed {
		return current, nil
	}
	if err := s.SaveAll(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Remove filters out the matching record, persists, and returns the
// collection. Removing an absent id is idempotent.
func (s *Store) Remove(ctx context.Context, id string) ([]models.Account, error) {
	current, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	updated := make([]models.Account, 0, len(current))
	for _, a := range current {
		if a.ID != id {
			updated = append(updated, a)
		}
	}

	if len(updated) == len(current) {
		return updated, nil
	}
	if err := s.SaveAll(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func applyPatch(a *models.Account, p Patch) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Email != nil {
		a.Email = *p.Email
	}
	if p.PhoneNumber != nil {
		a.PhoneNumber = *p.PhoneNumber
	}
	if p.Password != nil {
		a.Password = *p.Password
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.CategoryConfidence != nil {
		a.CategoryConfidence = *p.CategoryConfidence
	}
}
