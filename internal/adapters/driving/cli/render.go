package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
)

// Styles for terminal output. Lipgloss degrades to plain text when the
// output is not a colour terminal.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	citationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#06B6D4"))

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6E3A1"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086"))

	disclaimerStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#F9E2AF"))
)

// disclaimer is printed after every generated answer.
const disclaimer = "This is general information, not legal advice."

// renderResult formats one search result for table output.
func renderResult(rank int, result domain.SearchResult) string {
	title := result.Document.SectionName
	if title == "" {
		title = result.Document.CiteID
	}

	out := fmt.Sprintf("  [%d] %s %s\n",
		rank,
		titleStyle.Render(title),
		scoreStyle.Render(fmt.Sprintf("(%.1f%%)", result.DisplayScore())))
	out += fmt.Sprintf("      %s\n", citationStyle.Render(result.Document.Citation()))
	out += fmt.Sprintf("      %s\n", mutedStyle.Render(result.Document.CiteID))
	return out
}

// renderBreakdown formats the per-source result counts in priority order.
func renderBreakdown(breakdown domain.SourceBreakdown) string {
	out := ""
	for _, source := range domain.DefaultSourcePriority {
		count, ok := breakdown[source]
		if !ok {
			continue
		}
		out += fmt.Sprintf("  %s: %d\n", source.Description(), count)
	}
	return out
}

// renderSources formats the cited documents of an answer.
func renderSources(sources []domain.SearchResult) string {
	out := ""
	for i := range sources {
		out += fmt.Sprintf("  [%d] %s %s\n",
			i+1,
			citationStyle.Render(sources[i].Document.Citation()),
			scoreStyle.Render(fmt.Sprintf("(%.1f%%)", sources[i].DisplayScore())))
	}
	return out
}
