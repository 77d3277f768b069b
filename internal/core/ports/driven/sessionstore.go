package driven

import (
	"context"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
)

// SessionStore persists conversation sessions and their append-only
// message logs. Sessions own their messages: deleting a session cascades
// to its messages. Reads always request "last N", never "all", to bound
// memory and prompt size.
type SessionStore interface {
	// CreateSession creates a new session with the given metadata and
	// returns it with a generated id.
	CreateSession(ctx context.Context, metadata map[string]any) (*domain.Session, error)

	// GetSession retrieves a session by id.
	// Returns domain.ErrInvalidSession when the id does not exist.
	GetSession(ctx context.Context, id string) (*domain.Session, error)

	// ListSessions returns the most recently updated limit sessions,
	// newest first. A non-positive limit returns all sessions.
	ListSessions(ctx context.Context, limit int) ([]domain.Session, error)

	// AppendMessage appends a message to its session and advances the
	// session's updated-at time. Messages are never mutated in place.
	AppendMessage(ctx context.Context, msg *domain.Message) error

	// ListMessages returns the most recent lastN messages of a session
	// in chronological order. Older messages are truncated from the
	// front, never reordered.
	ListMessages(ctx context.Context, sessionID string, lastN int) ([]domain.Message, error)

	// DeleteSession removes a session and, by cascade, its messages.
	DeleteSession(ctx context.Context, id string) error
}
