package services

import (
	"context"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
	"github.com/gavel-labs/oklaw-cli/internal/core/ports/driven"
)

// --- Mock implementations shared by the service tests ---

// mockEmbeddingService implements driven.EmbeddingService.
type mockEmbeddingService struct {
	embedding []float32
	embedErr  error
	calls     int
}

func (m *mockEmbeddingService) Embed(_ context.Context, _ string) ([]float32, error) {
	m.calls++
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	if m.embedding != nil {
		return m.embedding, nil
	}
	return make([]float32, 1536), nil
}

func (m *mockEmbeddingService) Dimensions() int   { return 1536 }
func (m *mockEmbeddingService) ModelName() string { return "mock-embed" }

func (m *mockEmbeddingService) Ping(_ context.Context) error { return nil }
func (m *mockEmbeddingService) Close() error                 { return nil }

// mockVectorIndex implements driven.VectorIndex for one source.
type mockVectorIndex struct {
	source   domain.Source
	hits     []domain.SearchHit
	queryErr error
	calls    int
	lastK    int
}

func (m *mockVectorIndex) Source() domain.Source { return m.source }

func (m *mockVectorIndex) Query(_ context.Context, _ []float32, k int) ([]domain.SearchHit, error) {
	m.calls++
	m.lastK = k
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	if k > len(m.hits) {
		return m.hits, nil
	}
	return m.hits[:k], nil
}

func (m *mockVectorIndex) Ping(_ context.Context) error { return nil }
func (m *mockVectorIndex) Close() error                 { return nil }

// mockLLMService implements driven.LLMService.
type mockLLMService struct {
	result  *driven.ChatResult
	chatErr error

	// Captured from the last Chat call.
	lastMessages []driven.ChatMessage
	lastOpts     driven.ChatOptions
	calls        int
}

func (m *mockLLMService) Chat(_ context.Context, messages []driven.ChatMessage, opts driven.ChatOptions) (*driven.ChatResult, error) {
	m.calls++
	m.lastMessages = messages
	m.lastOpts = opts
	if m.chatErr != nil {
		return nil, m.chatErr
	}
	if m.result != nil {
		return m.result, nil
	}
	return &driven.ChatResult{Text: "mock answer", TokensUsed: 42}, nil
}

func (m *mockLLMService) Ping(_ context.Context) error { return nil }
func (m *mockLLMService) Close() error                 { return nil }

// mockPromptStore implements driven.PromptStore.
type mockPromptStore struct {
	prompts map[string]string
	loadErr error
}

func (m *mockPromptStore) Load(name string) (string, error) {
	if m.loadErr != nil {
		return "", m.loadErr
	}
	return m.prompts[name], nil
}

func (m *mockPromptStore) Reload() {}
