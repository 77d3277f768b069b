package driven

import "context"

// EmbeddingService generates vector embeddings from text.
// The same text and model always map to the same vector, ignoring
// provider-side nondeterminism.
//
// Implementations may include:
//   - OpenAI (text-embedding-ada-002, text-embedding-3-small)
//   - Local inference servers exposing a compatible API
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	// Fails with domain.ErrEmbeddingProvider on transport, auth, or
	// rate-limit failures; it is not retried internally.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the embedding vector size (e.g. 1536).
	// Determined by the model and must match the vector index
	// configuration.
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
