package services

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
	"github.com/gavel-labs/oklaw-cli/internal/core/ports/driven"
	"github.com/gavel-labs/oklaw-cli/internal/core/ports/driving"
	"github.com/gavel-labs/oklaw-cli/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// maxImportLine bounds a single JSONL record. Statute sections run long
// but never near this.
const maxImportLine = 4 * 1024 * 1024

// DocumentService exposes direct document access and the JSONL import
// path that fills the store.
type DocumentService struct {
	docs driven.DocumentStore
}

// NewDocumentService creates a new document service.
func NewDocumentService(docs driven.DocumentStore) *DocumentService {
	return &DocumentService{docs: docs}
}

// Get retrieves a single document by cite id.
func (s *DocumentService) Get(ctx context.Context, citeID string) (*domain.Document, error) {
	citeID = strings.TrimSpace(citeID)
	if citeID == "" {
		return nil, fmt.Errorf("%w: cite id is required", domain.ErrInvalidInput)
	}
	return s.docs.Fetch(ctx, citeID)
}

// importRecord is the JSONL wire format for one document.
type importRecord struct {
	CiteID        string `json:"cite_id"`
	Type          string `json:"type"`
	TitleNumber   string `json:"title_number,omitempty"`
	ArticleNumber string `json:"article_number,omitempty"`
	ChapterNumber string `json:"chapter_number,omitempty"`
	SectionNumber string `json:"section_number,omitempty"`
	SectionName   string `json:"section_name,omitempty"`
	Text          string `json:"text"`
}

// Import reads JSON Lines from r and stores each document. Blank lines
// are ignored; malformed or invalid records are skipped with a logged
// warning and counted, so one bad line never aborts an import.
func (s *DocumentService) Import(ctx context.Context, r io.Reader) (*driving.ImportStats, error) {
	logger.Section("Document Import")

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxImportLine)

	stats := &driving.ImportStats{}
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec importRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			logger.Warn("Line %d: malformed JSON, skipping: %v", lineNo, err)
			stats.Skipped++
			continue
		}

		doc, err := rec.toDocument()
		if err != nil {
			logger.Warn("Line %d: %v, skipping", lineNo, err)
			stats.Skipped++
			continue
		}

		if err := s.docs.Save(ctx, doc); err != nil {
			return stats, fmt.Errorf("save document %s (line %d): %w", doc.CiteID, lineNo, err)
		}
		stats.Imported++
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("read import stream: %w", err)
	}

	logger.Info("Imported %d document(s), skipped %d", stats.Imported, stats.Skipped)
	return stats, nil
}

// toDocument validates a record and converts it to the domain type.
func (r importRecord) toDocument() (*domain.Document, error) {
	if r.CiteID == "" {
		return nil, fmt.Errorf("missing cite_id")
	}
	docType := domain.DocumentType(r.Type)
	if !docType.IsValid() {
		return nil, fmt.Errorf("unknown document type %q", r.Type)
	}
	if r.Text == "" {
		return nil, fmt.Errorf("document %s has no text", r.CiteID)
	}
	return &domain.Document{
		CiteID:        r.CiteID,
		Type:          docType,
		TitleNumber:   r.TitleNumber,
		ArticleNumber: r.ArticleNumber,
		ChapterNumber: r.ChapterNumber,
		SectionNumber: r.SectionNumber,
		SectionName:   r.SectionName,
		Text:          r.Text,
	}, nil
}

// Count returns how many documents of the given type are stored.
func (s *DocumentService) Count(ctx context.Context, docType domain.DocumentType) (int, error) {
	if docType != "" && !docType.IsValid() {
		return 0, fmt.Errorf("%w: unknown document type %q", domain.ErrInvalidInput, docType)
	}
	return s.docs.Count(ctx, docType)
}
