package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for Oklaw resources.
	uriScheme = "oklaw://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing corpus sources.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "sources",
		Name:        "sources",
		Description: "List of searchable Oklahoma law corpora",
		MIMEType:    "application/json",
	}, s.handleSourcesResource)

	// Template for document content.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "documents/{citeId}",
		Name:        "document-content",
		Description: "Full text of a legal section by cite id",
		MIMEType:    "text/plain",
	}, s.handleDocumentContentResource)
}

// handleSourcesResource returns the list of corpus sources.
func (s *Server) handleSourcesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type sourceInfo struct {
		ID          string `json:"id"`
		Description string `json:"description"`
	}

	infos := make([]sourceInfo, len(domain.DefaultSourcePriority))
	for i, source := range domain.DefaultSourcePriority {
		infos[i] = sourceInfo{
			ID:          source.String(),
			Description: source.Description(),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling sources: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleDocumentContentResource returns the text of a specific document.
func (s *Server) handleDocumentContentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Document == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	citeID := extractCiteID(req.Params.URI)
	if citeID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	doc, err := s.ports.Document.Get(ctx, citeID)
	if err != nil {
		return nil, fmt.Errorf("getting document %q: %w", citeID, err)
	}

	text := doc.Citation()
	if doc.SectionName != "" {
		text += " - " + doc.SectionName
	}
	text += "\n\n" + doc.Text

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     text,
		}},
	}, nil
}

// extractCiteID extracts the cite id from a URI like oklaw://documents/{citeId}.
func extractCiteID(uri string) string {
	const prefix = uriScheme + "documents/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
