package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
)

var documentCountType string

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage the local document store",
	Long:  `Import, view, and count the legal sections held in the local document store.`,
}

var documentImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import documents from a JSON Lines file",
	Long: `Imports legal sections from a JSON Lines file, one document per line.
Use "-" to read from stdin. Malformed lines are skipped and counted.`,
	Args: cobra.ExactArgs(1),
	RunE: runDocumentImport,
}

var documentShowCmd = &cobra.Command{
	Use:   "show [cite-id]",
	Short: "Show a document by cite id",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentShow,
}

var documentCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Count stored documents",
	Args:  cobra.NoArgs,
	RunE:  runDocumentCount,
}

func init() {
	documentCountCmd.Flags().StringVarP(&documentCountType, "type", "t", "",
		"count only one type: constitution_section or statute_section")
	documentCmd.AddCommand(documentImportCmd)
	documentCmd.AddCommand(documentShowCmd)
	documentCmd.AddCommand(documentCountCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentImport(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	reader := cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()
		reader = f
	}

	stats, err := documentService.Import(cmd.Context(), reader)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	cmd.Printf("Imported %d documents, skipped %d\n", stats.Imported, stats.Skipped)
	return nil
}

func runDocumentShow(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	doc, err := documentService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("show document failed: %w", err)
	}

	cmd.Println(titleStyle.Render(doc.SectionName))
	cmd.Println(citationStyle.Render(doc.Citation()))
	cmd.Println(mutedStyle.Render(doc.CiteID))
	cmd.Println()
	cmd.Println(doc.Text)
	return nil
}

func runDocumentCount(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	docType := domain.DocumentType(documentCountType)
	count, err := documentService.Count(cmd.Context(), docType)
	if err != nil {
		return fmt.Errorf("count failed: %w", err)
	}

	if docType != "" {
		cmd.Printf("%d %s documents\n", count, docType)
	} else {
		cmd.Printf("%d documents\n", count)
	}
	return nil
}
