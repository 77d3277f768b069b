package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	sessionHistoryLimit int
	sessionListLimit    int
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage conversation sessions",
	Long:  `Create, inspect, and delete the sessions that carry context across asks.`,
}

var sessionCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new conversation session",
	Args:  cobra.NoArgs,
	RunE:  runSessionCreate,
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	Args:  cobra.NoArgs,
	RunE:  runSessionList,
}

var sessionShowCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "Show a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionShow,
}

var sessionHistoryCmd = &cobra.Command{
	Use:   "history [session-id]",
	Short: "Show the conversation history of a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionHistory,
}

var sessionDeleteCmd = &cobra.Command{
	Use:   "delete [session-id]",
	Short: "Delete a session and its messages",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionDelete,
}

func init() {
	sessionHistoryCmd.Flags().IntVarP(&sessionHistoryLimit, "limit", "n", 0, "number of recent messages to show")
	sessionListCmd.Flags().IntVarP(&sessionListLimit, "limit", "n", 0, "number of recent sessions to show")
	sessionCmd.AddCommand(sessionCreateCmd)
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionHistoryCmd)
	sessionCmd.AddCommand(sessionDeleteCmd)
	rootCmd.AddCommand(sessionCmd)
}

func runSessionCreate(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	session, err := sessionService.Create(cmd.Context(), nil)
	if err != nil {
		return fmt.Errorf("create session failed: %w", err)
	}

	cmd.Printf("Created session %s\n", session.ID)
	cmd.Println(mutedStyle.Render(fmt.Sprintf("Use it with: oklaw ask --session %s \"...\"", session.ID)))
	return nil
}

func runSessionList(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	sessions, err := sessionService.List(cmd.Context(), sessionListLimit)
	if err != nil {
		return fmt.Errorf("list sessions failed: %w", err)
	}

	if len(sessions) == 0 {
		cmd.Println("No sessions.")
		return nil
	}

	for i := range sessions {
		cmd.Printf("%s %s\n",
			sessions[i].ID,
			mutedStyle.Render(fmt.Sprintf("updated %s", sessions[i].UpdatedAt.Format("2006-01-02 15:04:05"))))
	}
	return nil
}

func runSessionShow(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	session, err := sessionService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("show session failed: %w", err)
	}

	cmd.Printf("Session:  %s\n", session.ID)
	cmd.Printf("Created:  %s\n", session.CreatedAt.Format("2006-01-02 15:04:05"))
	cmd.Printf("Updated:  %s\n", session.UpdatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func runSessionHistory(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	messages, err := sessionService.History(cmd.Context(), args[0], sessionHistoryLimit)
	if err != nil {
		return fmt.Errorf("session history failed: %w", err)
	}

	if len(messages) == 0 {
		cmd.Println("No messages yet.")
		return nil
	}

	for i := range messages {
		cmd.Printf("%s %s\n",
			titleStyle.Render(fmt.Sprintf("[%s]", messages[i].Role)),
			mutedStyle.Render(messages[i].CreatedAt.Format("2006-01-02 15:04:05")))
		cmd.Println(messages[i].Content)
		cmd.Println()
	}
	return nil
}

func runSessionDelete(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	if err := sessionService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("delete session failed: %w", err)
	}

	cmd.Printf("Deleted session %s\n", args[0])
	return nil
}
