package driving

import (
	"context"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
)

// SearchService provides semantic search to external actors.
// Stateless and idempotent; safe to retry.
type SearchService interface {
	// Search embeds the query, fans out to the selected vector indexes,
	// merges and hydrates the results.
	Search(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResponse, error)
}
