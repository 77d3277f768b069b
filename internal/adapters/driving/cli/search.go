package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
)

var (
	searchLimit  int
	searchSource string
	searchJSON   bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search Oklahoma law by meaning",
	Long: `Performs semantic search across the Oklahoma Constitution and
Oklahoma Statutes. Results are ranked by similarity to the query,
not keyword overlap.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (default 5, max 20)")
	searchCmd.Flags().StringVarP(&searchSource, "source", "s", "all", "restrict to one corpus: constitution, statutes, or all")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	opts := domain.SearchOptions{
		Limit:  searchLimit,
		Source: domain.Source(searchSource),
	}

	response, err := searchService.Search(cmd.Context(), query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, response)
	}

	return outputSearchTable(cmd, response)
}

func outputSearchJSON(cmd *cobra.Command, response *domain.SearchResponse) error {
	data, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, response *domain.SearchResponse) error {
	if len(response.Results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range response.Results {
		cmd.Print(renderResult(i+1, response.Results[i]))
		cmd.Println()
	}

	cmd.Println("Sources:")
	cmd.Print(renderBreakdown(response.Breakdown))

	return nil
}
