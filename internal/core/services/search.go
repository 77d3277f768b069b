package services

import (
	"context"
	"fmt"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
	"github.com/gavel-labs/oklaw-cli/internal/core/ports/driven"
	"github.com/gavel-labs/oklaw-cli/internal/core/ports/driving"
	"github.com/gavel-labs/oklaw-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// defaultSearchLimit is used when the caller does not request a count.
const defaultSearchLimit = 5

// SearchService runs the stateless search path: embed the query, fan out
// to the vector indexes, merge, and hydrate the winning hits with full
// document text.
type SearchService struct {
	embedder driven.EmbeddingService
	merger   *Merger
	docs     driven.DocumentStore
}

// NewSearchService creates a new search service.
func NewSearchService(
	embedder driven.EmbeddingService,
	merger *Merger,
	docs driven.DocumentStore,
) *SearchService {
	return &SearchService{
		embedder: embedder,
		merger:   merger,
		docs:     docs,
	}
}

// Search performs semantic search across the selected sources.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) (*domain.SearchResponse, error) {
	logger.Section("Search Execution")

	query, err := domain.ValidateQuery(query)
	if err != nil {
		return nil, err
	}

	limit := opts.Limit
	if limit == 0 {
		limit = defaultSearchLimit
	}
	if limit < 0 || limit > domain.MaxResultLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrInvalidInput, domain.MaxResultLimit)
	}

	source := opts.Source
	if source == "" {
		source = domain.SourceAll
	}
	if !source.IsValid() {
		return nil, fmt.Errorf("%w: unknown source %q", domain.ErrInvalidInput, source)
	}

	logger.Debug("Query: %q, source: %s, limit: %d", query, source, limit)

	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	logger.Debug("Query embedding: %d dimensions", len(vector))

	hits, breakdown, err := s.merger.Retrieve(ctx, vector, source, limit)
	if err != nil {
		return nil, err
	}

	results, err := hydrateHits(ctx, s.docs, hits)
	if err != nil {
		return nil, err
	}

	// Breakdown reflects what is actually returned, including zero
	// entries for sources that were queried but contributed nothing.
	for src := range breakdown {
		breakdown[src] = 0
	}
	for _, r := range results {
		breakdown[r.Source]++
	}

	logger.Info("Final results: %d", len(results))
	return &domain.SearchResponse{Results: results, Breakdown: breakdown}, nil
}

// hydrateHits resolves hit cite ids into full documents in one round
// trip, preserving rank order. Hits whose document is missing from the
// store are dropped and logged as a data-integrity problem, never
// escalated.
func hydrateHits(ctx context.Context, store driven.DocumentStore, hits []domain.SearchHit) ([]domain.SearchResult, error) {
	if len(hits) == 0 {
		return []domain.SearchResult{}, nil
	}

	ids := make([]string, len(hits))
	for i, h := range hits {
		ids[i] = h.CiteID
	}

	docs, err := store.FetchMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("hydrate results: %w", err)
	}

	results := make([]domain.SearchResult, 0, len(hits))
	for _, h := range hits {
		doc, ok := docs[h.CiteID]
		if !ok {
			logger.Error("Hit %s (%s) has no document in the store, dropping", h.CiteID, h.Source)
			continue
		}
		results = append(results, domain.SearchResult{
			Document: doc,
			Score:    h.Score,
			Source:   h.Source,
		})
	}
	return results, nil
}
