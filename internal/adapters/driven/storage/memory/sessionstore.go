package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
	"github.com/gavel-labs/oklaw-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore is an in-memory implementation of driven.SessionStore.
// Messages are kept per session in append order.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
	messages map[string][]domain.Message
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]domain.Session),
		messages: make(map[string][]domain.Message),
	}
}

// CreateSession creates a new session with a generated id.
func (s *SessionStore) CreateSession(_ context.Context, metadata map[string]any) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	session := domain.Session{
		ID:        uuid.NewString(),
		Metadata:  metadata,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.sessions[session.ID] = session
	return &session, nil
}

// GetSession retrieves a session by id.
func (s *SessionStore) GetSession(_ context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrInvalidSession)
	}
	return &session, nil
}

// ListSessions returns the most recently updated limit sessions,
// newest first.
func (s *SessionStore) ListSessions(_ context.Context, limit int) ([]domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sessions := make([]domain.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, session)
	}
	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].UpdatedAt.Equal(sessions[j].UpdatedAt) {
			return sessions[i].UpdatedAt.After(sessions[j].UpdatedAt)
		}
		return sessions[i].ID > sessions[j].ID
	})
	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return sessions, nil
}

// AppendMessage appends a message to its session.
func (s *SessionStore) AppendMessage(_ context.Context, msg *domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[msg.SessionID]
	if !ok {
		return fmt.Errorf("session %s: %w", msg.SessionID, domain.ErrInvalidSession)
	}

	stored := *msg
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	s.messages[msg.SessionID] = append(s.messages[msg.SessionID], stored)

	session.UpdatedAt = time.Now()
	s.sessions[msg.SessionID] = session

	msg.ID = stored.ID
	msg.CreatedAt = stored.CreatedAt
	return nil
}

// ListMessages returns the most recent lastN messages in chronological
// order.
func (s *SessionStore) ListMessages(_ context.Context, sessionID string, lastN int) ([]domain.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, domain.ErrInvalidSession)
	}
	msgs := s.messages[sessionID]
	if lastN > 0 && len(msgs) > lastN {
		msgs = msgs[len(msgs)-lastN:]
	}
	out := make([]domain.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

// DeleteSession removes a session and its messages.
func (s *SessionStore) DeleteSession(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("session %s: %w", id, domain.ErrInvalidSession)
	}
	delete(s.sessions, id)
	delete(s.messages, id)
	return nil
}
