// Package ai provides factory functions for creating AI service adapters
// from configuration, with connectivity validation.
package ai

import (
	"context"
	"fmt"
	"time"

	openaiembed "github.com/gavel-labs/oklaw-cli/internal/adapters/driven/embedding/openai"
	openaillm "github.com/gavel-labs/oklaw-cli/internal/adapters/driven/llm/openai"
	"github.com/gavel-labs/oklaw-cli/internal/adapters/driven/vectorindex/pinecone"
	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
	"github.com/gavel-labs/oklaw-cli/internal/core/ports/driven"
	"github.com/gavel-labs/oklaw-cli/internal/logger"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// Services bundles the provider-backed driven adapters.
type Services struct {
	Embedding driven.EmbeddingService
	LLM       driven.LLMService
	Indexes   []driven.VectorIndex
}

// Close releases all resources held by Services.
func (s *Services) Close() {
	if s.Embedding != nil {
		s.Embedding.Close()
	}
	if s.LLM != nil {
		s.LLM.Close()
	}
	for _, idx := range s.Indexes {
		idx.Close()
	}
}

// BuildServices creates embedding, generation, and vector index adapters
// from configuration. Fails fast on missing credentials; connectivity is
// validated separately via ValidateServices so offline commands (session
// management, document import) still work.
func BuildServices(config driven.ConfigStore) (*Services, error) {
	embedding, err := buildEmbedding(config)
	if err != nil {
		return nil, err
	}

	llm, err := buildLLM(config)
	if err != nil {
		embedding.Close()
		return nil, err
	}

	indexes, err := buildIndexes(config)
	if err != nil {
		embedding.Close()
		llm.Close()
		return nil, err
	}

	return &Services{
		Embedding: embedding,
		LLM:       llm,
		Indexes:   indexes,
	}, nil
}

// ValidateServices pings each adapter with a short timeout. Index
// failures are returned as warnings rather than errors; retrieval
// degrades per source at query time.
func ValidateServices(ctx context.Context, services *Services) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := services.Embedding.Ping(ctx); err != nil {
		return nil, fmt.Errorf("embedding service unreachable: %w. Run 'oklaw config set %s <key>' to fix",
			err, driven.ConfigOpenAIAPIKey)
	}
	if err := services.LLM.Ping(ctx); err != nil {
		return nil, fmt.Errorf("generation service unreachable: %w. Run 'oklaw config set %s <key>' to fix",
			err, driven.ConfigOpenAIAPIKey)
	}

	var warnings []string
	for _, idx := range services.Indexes {
		if err := idx.Ping(ctx); err != nil {
			logger.Warn("Vector index %s failed ping: %v", idx.Source(), err)
			warnings = append(warnings, fmt.Sprintf("source %s unavailable: %v", idx.Source(), err))
		}
	}
	return warnings, nil
}

// buildEmbedding creates the OpenAI embedding service from config.
func buildEmbedding(config driven.ConfigStore) (driven.EmbeddingService, error) {
	apiKey := config.GetString(driven.ConfigOpenAIAPIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not configured. Run 'oklaw config set %s <key>'",
			driven.ConfigOpenAIAPIKey)
	}

	return openaiembed.NewEmbeddingService(openaiembed.Config{
		APIKey:  apiKey,
		BaseURL: config.GetString(driven.ConfigOpenAIBaseURL),
		Model:   config.GetString(driven.ConfigEmbeddingModel),
	})
}

// buildLLM creates the OpenAI LLM service from config.
func buildLLM(config driven.ConfigStore) (driven.LLMService, error) {
	apiKey := config.GetString(driven.ConfigOpenAIAPIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not configured. Run 'oklaw config set %s <key>'",
			driven.ConfigOpenAIAPIKey)
	}

	return openaillm.NewLLMService(openaillm.LLMConfig{
		APIKey:  apiKey,
		BaseURL: config.GetString(driven.ConfigOpenAIBaseURL),
	})
}

// buildIndexes creates one Pinecone index per configured corpus source.
func buildIndexes(config driven.ConfigStore) ([]driven.VectorIndex, error) {
	apiKey := config.GetString(driven.ConfigPineconeAPIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("Pinecone API key not configured. Run 'oklaw config set %s <key>'",
			driven.ConfigPineconeAPIKey)
	}

	hosts := map[domain.Source]string{
		domain.SourceConstitution: config.GetString(driven.ConfigPineconeConstitutionHost),
		domain.SourceStatutes:     config.GetString(driven.ConfigPineconeStatutesHost),
	}

	var indexes []driven.VectorIndex
	for _, source := range domain.DefaultSourcePriority {
		host := hosts[source]
		if host == "" {
			logger.Warn("No index host configured for source %s, skipping", source)
			continue
		}
		idx, err := pinecone.NewIndex(pinecone.Config{
			APIKey: apiKey,
			Host:   host,
			Source: source,
		})
		if err != nil {
			for _, built := range indexes {
				built.Close()
			}
			return nil, fmt.Errorf("create %s index: %w", source, err)
		}
		indexes = append(indexes, idx)
	}

	if len(indexes) == 0 {
		return nil, fmt.Errorf("no vector indexes configured. Run 'oklaw config set %s <host>'",
			driven.ConfigPineconeConstitutionHost)
	}
	return indexes, nil
}
