// Package pinecone provides a vector index adapter backed by a Pinecone
// serverless index over its REST API.
package pinecone

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
	"github.com/gavel-labs/oklaw-cli/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// DefaultTimeout is the per-request timeout.
const DefaultTimeout = 30 * time.Second

// Metadata keys stored alongside each vector at ingestion time.
const (
	metaCiteID        = "cite_id"
	metaPageTitle     = "page_title"
	metaArticleNumber = "article_number"
	metaTitleNumber   = "title_number"
	metaSectionNumber = "section_number"
)

// Config holds configuration for one Pinecone index.
type Config struct {
	// APIKey is the Pinecone API key (required).
	APIKey string

	// Host is the index endpoint host, e.g.
	// "oklahoma-constitution-abc123.svc.us-east-1.pinecone.io" (required).
	Host string

	// Source is the corpus partition this index serves (required).
	Source domain.Source

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// Index queries a single Pinecone index for one corpus source.
type Index struct {
	client *http.Client
	host   string
	apiKey string
	source domain.Source
}

// queryRequest is the Pinecone /query request format.
type queryRequest struct {
	Vector          []float32 `json:"vector"`
	TopK            int       `json:"topK"`
	IncludeMetadata bool      `json:"includeMetadata"`
}

// queryResponse is the Pinecone /query response format.
type queryResponse struct {
	Matches []struct {
		ID       string         `json:"id"`
		Score    float64        `json:"score"`
		Metadata map[string]any `json:"metadata"`
	} `json:"matches"`
}

// statsResponse is the Pinecone /describe_index_stats response format.
type statsResponse struct {
	TotalVectorCount int `json:"totalVectorCount"`
}

// NewIndex creates a new Pinecone index adapter.
func NewIndex(cfg Config) (*Index, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("pinecone: API key is required")
	}
	if cfg.Host == "" {
		return nil, fmt.Errorf("pinecone: index host is required")
	}
	if cfg.Source == "" || cfg.Source.IsAll() {
		return nil, fmt.Errorf("pinecone: a concrete source is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	host := cfg.Host
	if !strings.HasPrefix(host, "https://") && !strings.HasPrefix(host, "http://") {
		host = "https://" + host
	}

	return &Index{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		host:   host,
		apiKey: cfg.APIKey,
		source: cfg.Source,
	}, nil
}

// Source identifies the corpus partition this index serves.
func (x *Index) Source() domain.Source {
	return x.source
}

// Query returns up to k hits closest to the query vector.
func (x *Index) Query(ctx context.Context, vector []float32, k int) ([]domain.SearchHit, error) {
	jsonBody, err := json.Marshal(queryRequest{
		Vector:          vector,
		TopK:            k,
		IncludeMetadata: true,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	body, err := x.post(ctx, "/query", jsonBody)
	if err != nil {
		return nil, err
	}

	var queryResp queryResponse
	if err := json.Unmarshal(body, &queryResp); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrIndexUnavailable, err)
	}

	hits := make([]domain.SearchHit, 0, len(queryResp.Matches))
	for _, match := range queryResp.Matches {
		hit := domain.SearchHit{
			Source: x.source,
			CiteID: match.ID,
			Score:  match.Score,
		}
		if cite, ok := match.Metadata[metaCiteID].(string); ok && cite != "" {
			hit.CiteID = cite
		}
		hit.Title, _ = match.Metadata[metaPageTitle].(string)
		hit.ArticleNumber = metadataString(match.Metadata, metaArticleNumber)
		hit.TitleNumber = metadataString(match.Metadata, metaTitleNumber)
		hit.SectionNumber = metadataString(match.Metadata, metaSectionNumber)
		hits = append(hits, hit)
	}
	return hits, nil
}

// Ping validates the index is reachable and holds vectors.
func (x *Index) Ping(ctx context.Context) error {
	body, err := x.post(ctx, "/describe_index_stats", []byte("{}"))
	if err != nil {
		return err
	}

	var stats statsResponse
	if err := json.Unmarshal(body, &stats); err != nil {
		return fmt.Errorf("%w: decode stats: %v", domain.ErrIndexUnavailable, err)
	}
	if stats.TotalVectorCount == 0 {
		return fmt.Errorf("%w: index for %s is empty", domain.ErrIndexUnavailable, x.source)
	}
	return nil
}

// Close releases resources.
func (x *Index) Close() error {
	return nil
}

// post sends a JSON POST to the index host and returns the response body.
func (x *Index) post(ctx context.Context, path string, jsonBody []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, x.host+path, bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", x.apiKey)

	resp, err := x.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIndexUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", domain.ErrIndexUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrIndexUnavailable, resp.StatusCode, string(body))
	}
	return body, nil
}

// metadataString reads a metadata value that may arrive as a string or a
// number, normalised to string form.
func metadataString(metadata map[string]any, key string) string {
	switch v := metadata[key].(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	default:
		return ""
	}
}
