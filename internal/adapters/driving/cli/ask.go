package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
	"github.com/gavel-labs/oklaw-cli/internal/core/ports/driving"
)

var (
	askSession     string
	askModel       string
	askSourceCount int
	askSource      string
	askJSON        bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about Oklahoma law",
	Long: `Answers a question using retrieved sections of the Oklahoma
Constitution and Oklahoma Statutes as grounding, with citations.

Use --session to carry context across multiple questions:

  oklaw session create
  oklaw ask --session <id> "What does the constitution say about due process?"
  oklaw ask --session <id> "Which statutes reference it?"

Without --session the question is answered statelessly.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askSession, "session", "", "conversation session id")
	askCmd.Flags().StringVarP(&askModel, "model", "m", "", "generative model: gpt-3.5-turbo or gpt-4")
	askCmd.Flags().IntVar(&askSourceCount, "sources", 0, "number of context documents to retrieve (default 3, max 5)")
	askCmd.Flags().StringVarP(&askSource, "source", "s", "all", "restrict retrieval to one corpus: constitution, statutes, or all")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := args[0]

	if askService == nil {
		return errors.New("ask service not configured")
	}

	req := driving.AskRequest{
		Question:    question,
		SessionID:   askSession,
		Model:       domain.Model(askModel),
		SourceCount: askSourceCount,
		Source:      domain.Source(askSource),
	}

	answer, err := askService.Ask(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	if askJSON {
		return outputAnswerJSON(cmd, answer)
	}

	return outputAnswerText(cmd, answer)
}

func outputAnswerJSON(cmd *cobra.Command, answer *domain.Answer) error {
	data, err := json.MarshalIndent(answer, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputAnswerText(cmd *cobra.Command, answer *domain.Answer) error {
	cmd.Println(answer.Text)
	cmd.Println()

	if answer.Grounded() {
		cmd.Println("Sources:")
		cmd.Print(renderSources(answer.Sources))
		cmd.Println()
	}

	if answer.SessionID != "" {
		cmd.Println(mutedStyle.Render(fmt.Sprintf("Session: %s", answer.SessionID)))
	}
	cmd.Println(mutedStyle.Render(fmt.Sprintf("Model: %s, tokens used: %d", answer.Model, answer.TokensUsed)))
	cmd.Println(disclaimerStyle.Render(disclaimer))

	return nil
}
