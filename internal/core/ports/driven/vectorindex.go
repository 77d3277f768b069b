package driven

import (
	"context"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
)

// VectorIndex provides nearest-neighbour search over one corpus source.
// Each configured source (constitution, statutes) is backed by its own
// index. Read-only from the core's perspective.
type VectorIndex interface {
	// Source identifies the corpus partition this index serves.
	Source() domain.Source

	// Query returns up to k hits closest to the query vector, ordered by
	// similarity descending. Zero hits is a valid, non-error outcome.
	// Fails with domain.ErrIndexUnavailable when the backing index
	// cannot be reached or does not exist.
	Query(ctx context.Context, vector []float32, k int) ([]domain.SearchHit, error)

	// Ping validates the index is reachable and non-empty.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
