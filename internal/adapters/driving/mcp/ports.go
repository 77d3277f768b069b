package mcp

import (
	"github.com/gavel-labs/oklaw-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides semantic search over the corpus.
	Search driving.SearchService

	// Ask answers questions grounded on retrieved documents.
	Ask driving.AskService

	// Session manages conversation sessions.
	Session driving.SessionService

	// Document provides direct document access by cite id.
	Document driving.DocumentService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Ask == nil {
		return ErrMissingAskService
	}
	// Session and Document are optional
	return nil
}
