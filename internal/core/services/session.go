package services

import (
	"context"
	"fmt"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
	"github.com/gavel-labs/oklaw-cli/internal/core/ports/driven"
	"github.com/gavel-labs/oklaw-cli/internal/core/ports/driving"
	"github.com/gavel-labs/oklaw-cli/internal/logger"
)

// Ensure SessionService implements the interface.
var _ driving.SessionService = (*SessionService)(nil)

// SessionService manages conversation session lifecycle. It is a thin
// layer over the store; the interesting session behaviour (history
// windowing, turn persistence) lives in the answer composer.
type SessionService struct {
	store driven.SessionStore
}

// NewSessionService creates a new session service.
func NewSessionService(store driven.SessionStore) *SessionService {
	return &SessionService{store: store}
}

// Create starts a new conversation session.
func (s *SessionService) Create(ctx context.Context, metadata map[string]any) (*domain.Session, error) {
	session, err := s.store.CreateSession(ctx, metadata)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	logger.Info("Created session %s", session.ID)
	return session, nil
}

// Get retrieves a session by id.
func (s *SessionService) Get(ctx context.Context, id string) (*domain.Session, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: session id is required", domain.ErrInvalidInput)
	}
	return s.store.GetSession(ctx, id)
}

// defaultSessionListLimit bounds 'list all sessions' reads.
const defaultSessionListLimit = 20

// List returns the most recently updated limit sessions, newest first.
func (s *SessionService) List(ctx context.Context, limit int) ([]domain.Session, error) {
	if limit <= 0 {
		limit = defaultSessionListLimit
	}
	return s.store.ListSessions(ctx, limit)
}

// History returns the most recent limit messages in chronological order.
// A non-positive limit falls back to the composer's history window.
func (s *SessionService) History(ctx context.Context, id string, limit int) ([]domain.Message, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: session id is required", domain.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = historyWindow
	}
	if _, err := s.store.GetSession(ctx, id); err != nil {
		return nil, err
	}
	return s.store.ListMessages(ctx, id, limit)
}

// Delete removes a session and its messages.
func (s *SessionService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: session id is required", domain.ErrInvalidInput)
	}
	if err := s.store.DeleteSession(ctx, id); err != nil {
		return err
	}
	logger.Info("Deleted session %s", id)
	return nil
}
