// Command oklaw is the Oklahoma law search and Q&A CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gavel-labs/oklaw-cli/internal/adapters/driven/ai"
	"github.com/gavel-labs/oklaw-cli/internal/adapters/driven/config/file"
	"github.com/gavel-labs/oklaw-cli/internal/adapters/driven/storage/sqlite"
	"github.com/gavel-labs/oklaw-cli/internal/adapters/driving/cli"
	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
	"github.com/gavel-labs/oklaw-cli/internal/core/ports/driven"
	"github.com/gavel-labs/oklaw-cli/internal/core/services"
	"github.com/gavel-labs/oklaw-cli/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialising config: %w", err)
	}

	store, err := sqlite.NewStore(config.GetString(driven.ConfigDataDir))
	if err != nil {
		return fmt.Errorf("initialising storage: %w", err)
	}
	defer store.Close()

	prompts, err := file.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("initialising prompts: %w", err)
	}
	if err := prompts.Watch(); err != nil {
		logger.Debug("Prompt watcher not started: %v", err)
	}
	defer prompts.Close()

	wired := cli.Services{
		Session:  services.NewSessionService(store.SessionStore()),
		Document: services.NewDocumentService(store.DocumentStore()),
		Config:   config,
	}

	// Search and ask need provider credentials. When they are missing,
	// offline commands (config, session, document) still work.
	aiServices, err := ai.BuildServices(config)
	if err != nil {
		logger.Debug("AI services not configured: %v", err)
	} else {
		defer aiServices.Close()
		merger := services.NewMerger(aiServices.Indexes, domain.DefaultSourcePriority)
		wired.Search = services.NewSearchService(aiServices.Embedding, merger, store.DocumentStore())
		wired.Ask = services.NewComposer(
			aiServices.Embedding,
			merger,
			store.DocumentStore(),
			store.SessionStore(),
			aiServices.LLM,
			prompts,
		)
	}

	cli.SetServices(wired)
	return cli.ExecuteContext(ctx)
}
