// Package driving provides interfaces consumed by external actors
// (primary/inbound ports): the CLI and the MCP server.
package driving
