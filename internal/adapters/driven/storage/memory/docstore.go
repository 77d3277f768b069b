package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
	"github.com/gavel-labs/oklaw-cli/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// Used in tests and for ephemeral runs without a database file.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.Document),
	}
}

// Fetch retrieves a document by cite id.
func (s *DocumentStore) Fetch(_ context.Context, citeID string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[citeID]
	if !ok {
		return nil, fmt.Errorf("document %s: %w", citeID, domain.ErrNotFound)
	}
	return &doc, nil
}

// FetchMany retrieves documents for the given cite ids. Missing ids are
// absent from the returned map.
func (s *DocumentStore) FetchMany(_ context.Context, citeIDs []string) (map[string]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make(map[string]domain.Document, len(citeIDs))
	for _, id := range citeIDs {
		if doc, ok := s.documents[id]; ok {
			result[id] = doc
		}
	}
	return result, nil
}

// Save stores or updates a document, preserving the original creation
// time on update.
func (s *DocumentStore) Save(_ context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	stored := *doc
	if existing, ok := s.documents[doc.CiteID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now
	s.documents[doc.CiteID] = stored
	return nil
}

// Count returns the number of stored documents, optionally filtered by
// type.
func (s *DocumentStore) Count(_ context.Context, docType domain.DocumentType) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if docType == "" {
		return len(s.documents), nil
	}
	count := 0
	for _, doc := range s.documents {
		if doc.Type == docType {
			count++
		}
	}
	return count, nil
}
