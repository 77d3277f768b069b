package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gavel-labs/oklaw-cli/internal/core/ports/driven"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and set configuration values.

Keys use dotted paths, for example:

  oklaw config set openai.api_key sk-...
  oklaw config set pinecone.api_key pc-...
  oklaw config set pinecone.constitution_host constitution-xxxx.svc.pinecone.io
  oklaw config set pinecone.statutes_host statutes-xxxx.svc.pinecone.io`,
	RunE: runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show all configuration values",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// wellKnownKeys are shown by 'config show' even when unset, so users can
// discover what needs configuring.
var wellKnownKeys = []string{
	driven.ConfigOpenAIAPIKey,
	driven.ConfigOpenAIBaseURL,
	driven.ConfigEmbeddingModel,
	driven.ConfigPineconeAPIKey,
	driven.ConfigPineconeConstitutionHost,
	driven.ConfigPineconeStatutesHost,
	driven.ConfigDataDir,
	driven.ConfigDefaultModel,
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, value := args[0], args[1]
	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("set config failed: %w", err)
	}

	cmd.Printf("Set %s\n", key)
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	value, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("key %q is not set", args[0])
	}

	cmd.Printf("%v\n", maskIfSecret(args[0], fmt.Sprintf("%v", value)))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	keys := make([]string, len(wellKnownKeys))
	copy(keys, wellKnownKeys)
	sort.Strings(keys)

	cmd.Println("Configuration:")
	for _, key := range keys {
		value, ok := configStore.Get(key)
		display := "(not set)"
		if ok {
			display = maskIfSecret(key, fmt.Sprintf("%v", value))
		}
		cmd.Printf("  %s = %s\n", key, display)
	}
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println(configStore.Path())
	return nil
}

// maskIfSecret hides all but the last four characters of API keys.
func maskIfSecret(key, value string) string {
	if !strings.HasSuffix(key, "api_key") {
		return value
	}
	if len(value) <= 4 {
		return "****"
	}
	return "****" + value[len(value)-4:]
}
