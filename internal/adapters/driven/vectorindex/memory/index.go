// Package memory provides a brute-force in-memory vector index. Used in
// tests and for small local corpora where a hosted index is overkill.
package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
	"github.com/gavel-labs/oklaw-cli/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// entry is one stored vector with its hit metadata.
type entry struct {
	hit    domain.SearchHit
	vector []float32
}

// Index is an in-memory implementation of driven.VectorIndex using
// exact cosine similarity.
type Index struct {
	mu      sync.RWMutex
	source  domain.Source
	entries []entry
}

// NewIndex creates a new in-memory vector index for one source.
func NewIndex(source domain.Source) *Index {
	return &Index{source: source}
}

// Source identifies the corpus partition this index serves.
func (x *Index) Source() domain.Source {
	return x.source
}

// Add stores a vector with its hit metadata. The hit's Source is forced
// to this index's source.
func (x *Index) Add(hit domain.SearchHit, vector []float32) {
	hit.Source = x.source
	x.mu.Lock()
	defer x.mu.Unlock()
	x.entries = append(x.entries, entry{hit: hit, vector: vector})
}

// Query returns up to k hits closest to the query vector by cosine
// similarity, ordered descending.
func (x *Index) Query(_ context.Context, vector []float32, k int) ([]domain.SearchHit, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	hits := make([]domain.SearchHit, 0, len(x.entries))
	for _, e := range x.entries {
		hit := e.hit
		hit.Score = cosineSimilarity(vector, e.vector)
		hits = append(hits, hit)
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})
	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

// Ping validates the index holds vectors.
func (x *Index) Ping(_ context.Context) error {
	x.mu.RLock()
	defer x.mu.RUnlock()
	if len(x.entries) == 0 {
		return fmt.Errorf("%w: index for %s is empty", domain.ErrIndexUnavailable, x.source)
	}
	return nil
}

// Close releases resources.
func (x *Index) Close() error {
	return nil
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched lengths and zero vectors score zero.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
