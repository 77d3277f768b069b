package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. Adapters wrap provider
// failures with these sentinels so callers can distinguish "your input was
// bad" from "a dependency is down" from "nothing matched".
var (
	// ErrInvalidInput indicates malformed or invalid input to a core
	// operation: empty question, k <= 0, unknown source or model name.
	// Never retried.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidSession indicates a supplied session id does not exist.
	// A provided-but-unknown id is an error, not silently a new session.
	ErrInvalidSession = errors.New("session not found")

	// ErrEmbeddingProvider indicates the embedding step failed (network,
	// auth, provider outage, malformed response). Callers may retry with
	// backoff; the core does not retry internally.
	ErrEmbeddingProvider = errors.New("embedding provider failure")

	// ErrIndexUnavailable indicates a single vector index is unreachable
	// or misconfigured. Distinct from zero results, which is a valid
	// non-error outcome. Tolerated per-source by the retrieval merger.
	ErrIndexUnavailable = errors.New("vector index unavailable")

	// ErrRetrievalUnavailable indicates no configured source could be
	// queried. The whole search or ask fails.
	ErrRetrievalUnavailable = errors.New("retrieval unavailable")

	// ErrGenerativeProvider indicates the generation step failed after
	// valid retrieval. Callers can surface "try again".
	ErrGenerativeProvider = errors.New("generative provider failure")
)
