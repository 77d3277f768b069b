package driving

import (
	"context"
	"io"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
)

// ImportStats summarizes a bulk document import.
type ImportStats struct {
	Imported int
	Skipped  int
}

// DocumentService exposes direct document access and the corpus import
// path to external actors.
type DocumentService interface {
	// Get retrieves a single document by cite id.
	Get(ctx context.Context, citeID string) (*domain.Document, error)

	// Import reads JSON Lines from r, one document per line, and stores
	// each. Malformed lines are skipped and counted, never fatal.
	Import(ctx context.Context, r io.Reader) (*ImportStats, error)

	// Count returns how many documents of the given type are stored
	// (empty type counts everything).
	Count(ctx context.Context, docType domain.DocumentType) (int, error)
}
