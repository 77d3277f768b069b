// Package cli provides the command-line interface for Oklaw.
// Commands are thin adapters over the driving ports; all business rules
// live in the core services.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gavel-labs/oklaw-cli/internal/core/ports/driven"
	"github.com/gavel-labs/oklaw-cli/internal/core/ports/driving"
	"github.com/gavel-labs/oklaw-cli/internal/logger"
)

// version is the CLI version, overridable at build time via ldflags.
var version = "0.1.0"

// Injected services. Set once at startup via SetServices; commands check
// for nil so that misconfiguration fails with a clear message rather
// than a panic.
var (
	searchService   driving.SearchService
	askService      driving.AskService
	sessionService  driving.SessionService
	documentService driving.DocumentService
	configStore     driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "oklaw",
	Short: "Semantic search and Q&A for Oklahoma law",
	Long: `Oklaw searches the Oklahoma Constitution and Oklahoma Statutes by
meaning rather than keywords, and answers questions about them with
citations to specific articles, titles, and sections.

Answers are general information, not legal advice.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Services bundles the driving ports the CLI depends on.
type Services struct {
	Search   driving.SearchService
	Ask      driving.AskService
	Session  driving.SessionService
	Document driving.DocumentService
	Config   driven.ConfigStore
}

// SetServices injects the service implementations used by the commands.
// Must be called before Execute.
func SetServices(s Services) {
	searchService = s.Search
	askService = s.Ask
	sessionService = s.Session
	documentService = s.Document
	configStore = s.Config
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context, so that
// long-running commands (the MCP server) stop on cancellation.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
