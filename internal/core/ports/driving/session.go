package driving

import (
	"context"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
)

// SessionService manages conversation sessions for external actors.
// Session creation is explicit: the answer composer never creates a
// session implicitly for an unknown id.
type SessionService interface {
	// Create starts a new conversation session.
	Create(ctx context.Context, metadata map[string]any) (*domain.Session, error)

	// Get retrieves a session by id.
	Get(ctx context.Context, id string) (*domain.Session, error)

	// List returns the most recently updated limit sessions, newest
	// first. A non-positive limit uses a default.
	List(ctx context.Context, limit int) ([]domain.Session, error)

	// History returns the most recent limit messages in chronological
	// order.
	History(ctx context.Context, id string, limit int) ([]domain.Message, error)

	// Delete removes a session and its messages.
	Delete(ctx context.Context, id string) error
}
