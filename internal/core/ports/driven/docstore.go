package driven

import (
	"context"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
)

// DocumentStore resolves compact cite ids into full documents.
// Backed by SQLite. Decouples "what is semantically close" (the vector
// index) from "what is the content" so the index stays small.
type DocumentStore interface {
	// Fetch retrieves a document by cite id.
	// Returns domain.ErrNotFound when the id does not resolve.
	Fetch(ctx context.Context, citeID string) (*domain.Document, error)

	// FetchMany retrieves documents for the given cite ids in one round
	// trip. Missing ids are simply absent from the returned map; partial
	// success is expected and callers must tolerate it.
	FetchMany(ctx context.Context, citeIDs []string) (map[string]domain.Document, error)

	// Save stores or updates a document. Used by the import path, not
	// the retrieval core.
	Save(ctx context.Context, doc *domain.Document) error

	// Count returns the number of stored documents, optionally filtered
	// by type (empty type counts everything).
	Count(ctx context.Context, docType domain.DocumentType) (int, error)
}
