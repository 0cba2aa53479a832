// Package services contains application services for the Account Butler
// CLI: the record workflow (validate, categorize, commit) and the local
// session identity.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/accountbutler/internal/client/accounts"
	"github.com/dmitrijs2005/accountbutler/internal/client/categorizer"
	"github.com/dmitrijs2005/accountbutler/internal/client/models"
	"github.com/dmitrijs2005/accountbutler/internal/common"
	"github.com/dmitrijs2005/accountbutler/internal/logging"
)

// AccountService orchestrates validated account creation and update with
// categorization, and exposes read/delete operations over the store.
//
// Contract:
//   - Submit: validate the form, categorize, then commit atomically; on any
//     failure nothing is persisted.
//   - List/Search: snapshots of the current collection; Search is a pure
//     case-insensitive substring filter over name, email and category.
//   - Get: single record lookup, common.ErrNotFound when absent.
//   - Delete: pass-through removal, idempotent.
type AccountService interface {
	Submit(ctx context.Context, form models.FormInput, editingID string) (*models.Account, []models.Account, error)
	List(ctx context.Context) ([]models.Account, error)
	Search(ctx context.Context, term string) ([]models.Account, error)
	Get(ctx context.Context, id string) (*models.Account, error)
	Delete(ctx context.Context, id string) ([]models.Account, error)
}

type accountService struct {
	store *accounts.Store
	cat   categorizer.Categorizer
	log   logging.Logger
}

func NewAccountService(store *accounts.Store, cat categorizer.Categorizer, log logging.Logger) AccountService {
	return &accountService{store: store, cat: cat, log: log.With("component", "workflow")}
}

// Submit runs the record workflow. With an empty editingID a new record is
// created; otherwise the matching record is updated in place. The
// categorizer is called only after validation passes, and the store is
// touched only after categorization succeeds, so a failed submission
// leaves the collection exactly as it was.
func (s *accountService) Submit(ctx context.Context, form models.FormInput, editingID string) (*models.Account, []models.Account, error) {
	if err := validate.Struct(form); err != nil {
		return nil, nil, newValidationError(err)
	}

	if editingID != "" {
		// Verify the target still exists before paying for the round trip.
		if _, err := s.Get(ctx, editingID); err != nil {
			return nil, nil, err
		}
	}

	result, err := s.cat.Categorize(ctx, form.Name, form.CategorizerInput())
	if err != nil {
		s.log.Warn(ctx, "categorization failed, submission aborted", "error", err)
		return nil, nil, err
	}

	if editingID != "" {
		return s.commitUpdate(ctx, editingID, form, result)
	}
	return s.commitAdd(ctx, form, result)
}

func (s *accountService) commitAdd(ctx context.Context, form models.FormInput, result *categorizer.Result) (*models.Account, []models.Account, error) {
	account := models.Account{
		ID:                 uuid.NewString(),
		Name:               form.Name,
		Description:        form.Description,
		Email:              form.Email,
		PhoneNumber:        form.PhoneNumber,
		Password:           form.Password,
		Category:           result.Category,
		CategoryConfidence: result.Confidence,
		CreatedAt:          time.Now().UTC().Format(time.RFC3339),
	}

	collection, err := s.store.Add(ctx, account)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.log.Info(ctx, "account created", "id", account.ID, "name", account.Name, "category", account.Category)
	return &account, collection, nil
}

func (s *accountService) commitUpdate(ctx context.Context, id string, form models.FormInput, result *categorizer.Result) (*models.Account, []models.Account, error) {
	patch := accounts.Patch{
		Name:               &form.Name,
		Description:        &form.Description,
		Email:              &form.Email,
		PhoneNumber:        &form.PhoneNumber,
		Password:           &form.Password,
		Category:           &result.Category,
		CategoryConfidence: &result.Confidence,
	}

	collection, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update account: %w", err)
	}

	for i := range collection {
		if collection[i].ID == id {
			s.log.Info(ctx, "account updated", "id", id, "category", collection[i].Category)
			return &collection[i], collection, nil
		}
	}
	// The record vanished between the existence check and the commit;
	// with a single-threaded caller this should not happen.
	return nil, nil, common.ErrNotFound
}

func (s *accountService) List(ctx context.Context) ([]models.Account, error) {
	return s.store.Load(ctx)
}

func (s *accountService) Search(ctx context.Context, term string) ([]models.Account, error) {
	all, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Account, 0, len(all))
	for _, a := range all {
		if a.Matches(term) {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (s *accountService) Get(ctx context.Context, id string) (*models.Account, error) {
	all, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *accountService) Delete(ctx context.Context, id string) ([]models.Account, error) {
	collection, err := s.store.Remove(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete account: %w", err)
	}
	return collection, nil
}
