// Package mcp provides an MCP (Model Context Protocol) server adapter for Oklaw.
// It enables AI assistants like Claude to search and question Oklahoma legal text.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrMissingAskService is returned when the ask service is not provided.
var ErrMissingAskService = errors.New("mcp: ask service is required")
