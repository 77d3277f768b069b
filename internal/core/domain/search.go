package domain

import "math"

// SearchHit is a single nearest-neighbour result from a vector index query,
// prior to text hydration. Immutable once returned.
type SearchHit struct {
	// Source identifies the corpus partition the hit came from.
	Source Source

	// CiteID resolves to exactly one Document in the document store.
	CiteID string

	// Score is the cosine similarity, higher is more similar.
	// Practically in [0, 1] for normalised embeddings.
	Score float64

	// Title is the section heading carried in the index metadata.
	Title string

	// ArticleNumber is the constitution article number, when present.
	ArticleNumber string

	// TitleNumber is the statute title number, when present.
	TitleNumber string

	// SectionNumber is the section number, when present.
	SectionNumber string
}

// SearchOptions configures a search request.
type SearchOptions struct {
	// Source selects one named source or SourceAll.
	Source Source

	// Limit is the total number of results requested across sources.
	Limit int
}

// SearchResult is a search hit hydrated with its full document.
type SearchResult struct {
	// Document is the full text and citation metadata.
	Document Document

	// Score is the raw cosine similarity from the vector index.
	Score float64

	// Source identifies which corpus the result came from.
	Source Source
}

// DisplayScore converts the raw cosine score to the percentage shown to
// users, rounded to one decimal place.
func (r SearchResult) DisplayScore() float64 {
	return math.Round(r.Score*1000) / 10
}

// SourceBreakdown counts how many of the final results came from each
// source. Part of the contract surfaced to callers, not just debugging.
type SourceBreakdown map[Source]int

// SearchResponse is the full result of a search operation.
type SearchResponse struct {
	// Results are the hydrated hits, ranked by similarity descending.
	Results []SearchResult

	// Breakdown reports per-source provenance of the final results.
	Breakdown SourceBreakdown
}
