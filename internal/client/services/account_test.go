package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/accountbutler/internal/client/accounts"
	"github.com/dmitrijs2005/accountbutler/internal/client/categorizer"
	"github.com/dmitrijs2005/accountbutler/internal/client/models"
	"github.com/dmitrijs2005/accountbutler/internal/client/repositories/storage"
	"github.com/dmitrijs2005/accountbutler/internal/common"
	"github.com/dmitrijs2005/accountbutler/internal/logging"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeCategorizer struct {
	// presets
	Result *categorizer.Result
	Err    error

	// recorded calls
	Calls           int
	LastName        string
	LastDescription string
}

func (f *fakeCategorizer) Categorize(ctx context.Context, name, description string) (*categorizer.Result, error) {
	f.Calls++
	f.LastName = name
	f.LastDescription = description
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Result, nil
}

func setupService(t *testing.T, fc *fakeCategorizer) (AccountService, *accounts.Store) {
	t.Helper()
	store := accounts.NewStore(storage.NewMemoryRepository(), discardLogger())
	return NewAccountService(store, fc, discardLogger()), store
}

func TestSubmit_CreatesCategorizedAccount(t *testing.T) {
	fc := &fakeCategorizer{Result: &categorizer.Result{Category: "Entertainment", Confidence: 0.88}}
	svc, store := setupService(t, fc)
	ctx := context.Background()

	form := models.FormInput{Name: "Netflix", Description: "", Password: "abc123"}
	account, collection, err := svc.Submit(ctx, form, "")
	require.NoError(t, err)

	assert.Equal(t, "Netflix", account.Name)
	assert.Equal(t, "Entertainment", account.Category)
	assert.Equal(t, 0.88, account.CategoryConfidence)

	// empty description falls back to the name as categorizer input
	assert.Equal(t, 1, fc.Calls)
	assert.Equal(t, "Netflix", fc.LastName)
	assert.Equal(t, "Netflix", fc.LastDescription)

	// freshly assigned identity
	_, err = uuid.Parse(account.ID)
	assert.NoError(t, err)
	created, err := time.Parse(time.RFC3339, account.CreatedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), created, time.Minute)

	// the snapshot matches persisted state
	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, collection, loaded)
	require.Len(t, loaded, 1)
}

func TestSubmit_EmptyNameFailsBeforeCategorizer(t *testing.T) {
	fc := &fakeCategorizer{Result: &categorizer.Result{Category: "X", Confidence: 1}}
	svc, store := setupService(t, fc)
	ctx := context.Background()

	_, _, err := svc.Submit(ctx, models.FormInput{Name: "", Password: "abc123"}, "")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Zero(t, fc.Calls)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestSubmit_InvalidEmailRejected(t *testing.T) {
	fc := &fakeCategorizer{}
	svc, _ := setupService(t, fc)

	_, _, err := svc.Submit(context.Background(), models.FormInput{
		Name:     "Gmail",
		Email:    "not-an-email",
		Password: "abc123",
	}, "")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"email"}, verr.Fields)
	assert.Zero(t, fc.Calls)
}

func TestSubmit_MissingPasswordRejected(t *testing.T) {
	fc := &fakeCategorizer{}
	svc, _ := setupService(t, fc)

	_, _, err := svc.Submit(context.Background(), models.FormInput{Name: "Gmail"}, "")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "password")
}

func TestSubmit_CategorizationFailureLeavesStoreUntouched(t *testing.T) {
	fc := &fakeCategorizer{Err: categorizer.ErrCategorization}
	svc, store := setupService(t, fc)
	ctx := context.Background()

	// one pre-existing record
	before, err := store.Add(ctx, models.Account{ID: "1", Name: "Gmail", Password: "x", CreatedAt: "2025-01-01T00:00:00Z"})
	require.NoError(t, err)

	_, _, err = svc.Submit(ctx, models.FormInput{Name: "Netflix", Password: "abc123"}, "")
	require.ErrorIs(t, err, categorizer.ErrCategorization)

	after, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSubmit_EditMergesFormAndCategorization(t *testing.T) {
	fc := &fakeCategorizer{Result: &categorizer.Result{Category: "Email", Confidence: 0.95}}
	svc, store := setupService(t, fc)
	ctx := context.Background()

	orig := models.Account{
		ID:        "abc",
		Name:      "Gmail",
		Password:  "old",
		CreatedAt: "2025-01-01T00:00:00Z",
	}
	_, err := store.Add(ctx, orig)
	require.NoError(t, err)

	form := models.FormInput{
		Name:        "Google Mail",
		Description: "personal mailbox",
		Email:       "me@example.com",
		Password:    "new",
	}
	account, collection, err := svc.Submit(ctx, form, "abc")
	require.NoError(t, err)

	assert.Equal(t, "abc", account.ID)
	assert.Equal(t, orig.CreatedAt, account.CreatedAt)
	assert.Equal(t, "Google Mail", account.Name)
	assert.Equal(t, "personal mailbox", account.Description)
	assert.Equal(t, "me@example.com", account.Email)
	assert.Equal(t, "new", account.Password)
	assert.Equal(t, "Email", account.Category)
	assert.Equal(t, 0.95, account.CategoryConfidence)

	// description, when present, is the categorizer input
	assert.Equal(t, "personal mailbox", fc.LastDescription)

	require.Len(t, collection, 1)
}

func TestSubmit_EditUnknownIDFailsBeforeCategorizer(t *testing.T) {
	fc := &fakeCategorizer{Result: &categorizer.Result{Category: "X", Confidence: 1}}
	svc, _ := setupService(t, fc)

	_, _, err := svc.Submit(context.Background(), models.FormInput{Name: "Gmail", Password: "x"}, "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Zero(t, fc.Calls)
}

func TestSearch_FiltersOverNameEmailCategory(t *testing.T) {
	fc := &fakeCategorizer{}
	svc, store := setupService(t, fc)
	ctx := context.Background()

	seed := []models.Account{
		{ID: "1", Name: "Netflix", Category: "Entertainment", Password: "x", CreatedAt: "2025-01-01T00:00:00Z"},
		{ID: "2", Name: "Gmail", Email: "me@gmail.com", Category: "Email", Password: "x", CreatedAt: "2025-01-01T00:00:00Z"},
		{ID: "3", Name: "Bank", Email: "support@bank.io", Category: "Finance", Password: "x", CreatedAt: "2025-01-01T00:00:00Z"},
	}
	require.NoError(t, store.SaveAll(ctx, seed))

	got, err := svc.Search(ctx, "GMAIL")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	got, err = svc.Search(ctx, "enter")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	// empty term returns everything
	got, err = svc.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestGet_NotFound(t *testing.T) {
	fc := &fakeCategorizer{}
	svc, _ := setupService(t, fc)

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete_PassThrough(t *testing.T) {
	fc := &fakeCategorizer{}
	svc, store := setupService(t, fc)
	ctx := context.Background()

	_, err := store.Add(ctx, models.Account{ID: "1", Name: "Gmail", Password: "x", CreatedAt: "2025-01-01T00:00:00Z"})
	require.NoError(t, err)

	got, err := svc.Delete(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, got)

	// deleting again yields the same result
	again, err := svc.Delete(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestSubmit_ContextPassedToCategorizer(t *testing.T) {
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	fc := &fakeCategorizer{Err: errors.Join(categorizer.ErrCategorization, canceled.Err())}
	svc, store := setupService(t, fc)

	_, _, err := svc.Submit(canceled, models.FormInput{Name: "Netflix", Password: "x"}, "")
	require.ErrorIs(t, err, categorizer.ErrCategorization)

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
