package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
	"github.com/gavel-labs/oklaw-cli/internal/core/ports/driven"
	"github.com/gavel-labs/oklaw-cli/internal/logger"
)

// Merger fans a query vector out to the configured vector indexes and
// merges the per-source hit lists into one globally-ranked list.
type Merger struct {
	indexes  map[domain.Source]driven.VectorIndex
	priority map[domain.Source]int
	order    []domain.Source
}

// NewMerger creates a merger over the given per-source indexes.
// priority fixes the tie-break order between sources with equal scores;
// sources missing from priority rank after those listed.
func NewMerger(indexes []driven.VectorIndex, priority []domain.Source) *Merger {
	m := &Merger{
		indexes:  make(map[domain.Source]driven.VectorIndex, len(indexes)),
		priority: make(map[domain.Source]int, len(priority)),
	}
	for _, idx := range indexes {
		src := idx.Source()
		m.indexes[src] = idx
		m.order = append(m.order, src)
	}
	for i, src := range priority {
		m.priority[src] = i + 1
	}
	sort.Slice(m.order, func(i, j int) bool {
		ri, rj := m.rank(m.order[i]), m.rank(m.order[j])
		if ri != rj {
			return ri < rj
		}
		return m.order[i] < m.order[j]
	})
	return m
}

// Sources returns the configured sources in priority order.
func (m *Merger) Sources() []domain.Source {
	return m.order
}

// rank returns the tie-break rank for a source. Unlisted sources share
// the lowest rank; ties between them are broken by name where ordering
// matters.
func (m *Merger) rank(src domain.Source) int {
	if r, ok := m.priority[src]; ok {
		return r
	}
	return len(m.priority) + 1
}

// Retrieve queries the selected sources for the top k nearest neighbours
// and merges the results into a single ranked list of at most k hits,
// along with a per-source breakdown of the final list.
//
// Each source is asked for the full k, not k divided by the source count,
// so the merge has enough candidates for a correct global top-k even when
// one source dominates. A source whose index is unavailable contributes
// zero results; only when every selected source fails does Retrieve fail
// with domain.ErrRetrievalUnavailable.
func (m *Merger) Retrieve(
	ctx context.Context, vector []float32, source domain.Source, k int,
) ([]domain.SearchHit, domain.SourceBreakdown, error) {
	if k <= 0 {
		return nil, nil, fmt.Errorf("%w: result count must be positive, got %d", domain.ErrInvalidInput, k)
	}

	sources, err := m.selectSources(source)
	if err != nil {
		return nil, nil, err
	}

	logger.Debug("Fan-out to %d source(s), k=%d", len(sources), k)

	outcomes := gather(ctx, sources, func(ctx context.Context, src domain.Source) ([]domain.SearchHit, error) {
		return m.indexes[src].Query(ctx, vector, k)
	})

	breakdown := make(domain.SourceBreakdown, len(sources))
	var merged []domain.SearchHit
	failures := 0
	for i, out := range outcomes {
		breakdown[sources[i]] = 0
		if out.err != nil {
			failures++
			logger.Warn("Source %s unavailable: %v", sources[i], out.err)
			continue
		}
		logger.Debug("Source %s returned %d hit(s)", sources[i], len(out.value))
		merged = append(merged, out.value...)
	}

	if failures == len(sources) {
		return nil, nil, fmt.Errorf("%w: all %d source(s) failed", domain.ErrRetrievalUnavailable, len(sources))
	}

	merged = m.rankAndTruncate(merged, k)
	for _, hit := range merged {
		breakdown[hit.Source]++
	}

	logger.Info("Merged results: %d hit(s), breakdown %v", len(merged), breakdown)
	return merged, breakdown, nil
}

// selectSources resolves the source selector to concrete sources.
func (m *Merger) selectSources(source domain.Source) ([]domain.Source, error) {
	if source == "" || source.IsAll() {
		if len(m.order) == 0 {
			return nil, fmt.Errorf("%w: no sources configured", domain.ErrRetrievalUnavailable)
		}
		return m.order, nil
	}
	if _, ok := m.indexes[source]; !ok {
		return nil, fmt.Errorf("%w: unknown source %q", domain.ErrInvalidInput, source)
	}
	return []domain.Source{source}, nil
}

// rankAndTruncate sorts hits by score descending with deterministic
// tie-breaks (source priority, then cite id), removes duplicate
// (source, cite id) pairs keeping the best-scored occurrence, and
// truncates to k.
func (m *Merger) rankAndTruncate(hits []domain.SearchHit, k int) []domain.SearchHit {
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		ri, rj := m.rank(hits[i].Source), m.rank(hits[j].Source)
		if ri != rj {
			return ri < rj
		}
		return hits[i].CiteID < hits[j].CiteID
	})

	type key struct {
		source domain.Source
		citeID string
	}
	seen := make(map[key]bool, len(hits))
	deduped := hits[:0]
	for _, h := range hits {
		id := key{h.Source, h.CiteID}
		if seen[id] {
			continue
		}
		seen[id] = true
		deduped = append(deduped, h)
	}

	if len(deduped) > k {
		deduped = deduped[:k]
	}
	return deduped
}
