package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/accountbutler/internal/client/models"
	"github.com/dmitrijs2005/accountbutler/internal/client/repositories/storage"
	"github.com/dmitrijs2005/accountbutler/internal/logging"
)

// SessionService manages the single locally-remembered identity in the
// "session" storage slot. Login performs no verification beyond an email
// shape check: it stamps the identity and nothing more.
type SessionService interface {
	Login(ctx context.Context, email string) (*models.Session, error)
	Current(ctx context.Context) (*models.Session, error)
	Logout(ctx context.Context) error
}

type sessionService struct {
	repo storage.Repository
	log  logging.Logger
}

func NewSessionService(repo storage.Repository, log logging.Logger) SessionService {
	return &sessionService{repo: repo, log: log.With("component", "session")}
}

func (s *sessionService) Login(ctx context.Context, email string) (*models.Session, error) {
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, &ValidationError{Fields: []string{"email"}}
	}

	session := models.Session{ID: uuid.NewString(), Email: email}
	blob, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize session: %w", err)
	}
	if err := s.repo.Set(ctx, storage.SlotSession, blob); err != nil {
		return nil, fmt.Errorf("failed to write session slot: %w", err)
	}

	s.log.Info(ctx, "logged in", "email", email)
	return &session, nil
}

// Current returns the stamped identity, or nil when none exists. A
// malformed slot is treated as absent and cleared, matching the
// self-healing behavior of the accounts slot.
func (s *sessionService) Current(ctx context.Context) (*models.Session, error) {
	blob, err := s.repo.Get(ctx, storage.SlotSession)
	if err != nil {
		return nil, fmt.Errorf("failed to read session slot: %w", err)
	}
	if blob == nil {
		return nil, nil
	}

	var session models.Session
	if err := json.Unmarshal(blob, &session); err != nil || session.Email == "" {
		s.log.Warn(ctx, "session slot is corrupt, resetting")
		if err := s.repo.Delete(ctx, storage.SlotSession); err != nil {
			return nil, fmt.Errorf("failed to clear corrupt session slot: %w", err)
		}
		return nil, nil
	}
	return &session, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.repo.Delete(ctx, storage.SlotSession); err != nil {
		return fmt.Errorf("failed to clear session slot: %w", err)
	}
	s.log.Info(ctx, "logged out")
	return nil
}
