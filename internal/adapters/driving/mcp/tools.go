package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
	"github.com/gavel-labs/oklaw-cli/internal/core/ports/driving"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query  string `json:"query" jsonschema:"the search query to find relevant legal sections"`
	Limit  int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 5, max 20)"`
	Source string `json:"source,omitempty" jsonschema:"restrict to one corpus: constitution or statutes (default all)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results   []SearchResultOutput `json:"results"`
	Breakdown map[string]int       `json:"breakdown"`
	Count     int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	CiteID   string  `json:"cite_id"`
	Title    string  `json:"title"`
	Citation string  `json:"citation"`
	Source   string  `json:"source"`
	Score    float64 `json:"score"`
	Text     string  `json:"text"`
}

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question    string `json:"question" jsonschema:"the question about Oklahoma law to answer"`
	SessionID   string `json:"session_id,omitempty" jsonschema:"conversation session id for multi-turn context"`
	Model       string `json:"model,omitempty" jsonschema:"generative model: gpt-3.5-turbo or gpt-4"`
	SourceCount int    `json:"source_count,omitempty" jsonschema:"number of context documents to retrieve (default 3, max 5)"`
	Source      string `json:"source,omitempty" jsonschema:"restrict retrieval to one corpus: constitution or statutes"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer     string         `json:"answer"`
	Sources    []SourceOutput `json:"sources"`
	SessionID  string         `json:"session_id,omitempty"`
	Model      string         `json:"model"`
	TokensUsed int            `json:"tokens_used"`
}

// SourceOutput is one cited document in an ask answer.
type SourceOutput struct {
	CiteID   string  `json:"cite_id"`
	Citation string  `json:"citation"`
	Title    string  `json:"title"`
	Score    float64 `json:"score"`
}

// ListSessionsInput is the input schema for the list_sessions tool.
type ListSessionsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of sessions to return (default 20)"`
}

// ListSessionsOutput is the output schema for the list_sessions tool.
type ListSessionsOutput struct {
	Sessions []SessionOutput `json:"sessions"`
	Count    int             `json:"count"`
}

// SessionOutput is one conversation session.
type SessionOutput struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// GetDocumentInput is the input schema for the get_document tool.
type GetDocumentInput struct {
	CiteID string `json:"cite_id" jsonschema:"the cite id of the document, e.g. okcn-2-7 or os-22-13"`
}

// GetDocumentOutput is the output schema for the get_document tool.
type GetDocumentOutput struct {
	CiteID   string `json:"cite_id"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Citation string `json:"citation"`
	Text     string `json:"text"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Semantic search across the Oklahoma Constitution and Oklahoma Statutes",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a question about Oklahoma law, grounded on retrieved legal text with citations",
	}, s.handleAsk)

	if s.ports.Session != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_sessions",
			Description: "List recent conversation sessions usable with the ask tool",
		}, s.handleListSessions)
	}

	if s.ports.Document != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "get_document",
			Description: "Fetch the full text of a legal section by cite id",
		}, s.handleGetDocument)
	}
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	opts := domain.SearchOptions{
		Limit:  input.Limit,
		Source: domain.Source(input.Source),
	}
	if opts.Source == "" {
		opts.Source = domain.SourceAll
	}

	response, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results:   make([]SearchResultOutput, len(response.Results)),
		Breakdown: make(map[string]int, len(response.Breakdown)),
		Count:     len(response.Results),
	}
	for source, count := range response.Breakdown {
		output.Breakdown[source.String()] = count
	}
	for i := range response.Results {
		result := response.Results[i]
		output.Results[i] = SearchResultOutput{
			CiteID:   result.Document.CiteID,
			Title:    result.Document.SectionName,
			Citation: result.Document.Citation(),
			Source:   result.Source.String(),
			Score:    result.Score,
			Text:     result.Document.Text,
		}
	}

	return nil, output, nil
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	req := driving.AskRequest{
		Question:    input.Question,
		SessionID:   input.SessionID,
		Model:       domain.Model(input.Model),
		SourceCount: input.SourceCount,
		Source:      domain.Source(input.Source),
	}
	if req.Source == "" {
		req.Source = domain.SourceAll
	}

	answer, err := s.ports.Ask.Ask(ctx, req)
	if err != nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Answer:     answer.Text,
		Sources:    make([]SourceOutput, len(answer.Sources)),
		SessionID:  answer.SessionID,
		Model:      answer.Model.String(),
		TokensUsed: answer.TokensUsed,
	}
	for i := range answer.Sources {
		src := answer.Sources[i]
		output.Sources[i] = SourceOutput{
			CiteID:   src.Document.CiteID,
			Citation: src.Document.Citation(),
			Title:    src.Document.SectionName,
			Score:    src.Score,
		}
	}

	return nil, output, nil
}

// handleListSessions handles the list_sessions tool invocation.
func (s *Server) handleListSessions(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListSessionsInput,
) (*mcp.CallToolResult, ListSessionsOutput, error) {
	sessions, err := s.ports.Session.List(ctx, input.Limit)
	if err != nil {
		return nil, ListSessionsOutput{}, err
	}

	output := ListSessionsOutput{
		Sessions: make([]SessionOutput, len(sessions)),
		Count:    len(sessions),
	}
	for i := range sessions {
		output.Sessions[i] = SessionOutput{
			ID:        sessions[i].ID,
			CreatedAt: sessions[i].CreatedAt.Format(time.RFC3339),
			UpdatedAt: sessions[i].UpdatedAt.Format(time.RFC3339),
		}
	}
	return nil, output, nil
}

// handleGetDocument handles the get_document tool invocation.
func (s *Server) handleGetDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetDocumentInput,
) (*mcp.CallToolResult, GetDocumentOutput, error) {
	doc, err := s.ports.Document.Get(ctx, input.CiteID)
	if err != nil {
		return nil, GetDocumentOutput{}, err
	}

	output := GetDocumentOutput{
		CiteID:   doc.CiteID,
		Type:     doc.Type.String(),
		Title:    doc.SectionName,
		Citation: doc.Citation(),
		Text:     doc.Text,
	}
	return nil, output, nil
}
