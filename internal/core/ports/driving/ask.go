package driving

import (
	"context"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
)

// AskRequest is a question for the answer composer.
type AskRequest struct {
	// Question is the natural-language question.
	Question string

	// SessionID scopes the conversation. Empty means a stateless ask
	// with no history and no persistence.
	SessionID string

	// Model selects the generative tier. Zero value uses the default.
	Model domain.Model

	// SourceCount is how many context documents to retrieve.
	// Zero uses the default.
	SourceCount int

	// Source restricts retrieval to one corpus. Zero value searches all.
	Source domain.Source
}

// AskService answers questions grounded on retrieved corpus documents.
// Not idempotent when a session id is supplied: each call appends two
// conversation messages.
type AskService interface {
	Ask(ctx context.Context, req AskRequest) (*domain.Answer, error)
}
