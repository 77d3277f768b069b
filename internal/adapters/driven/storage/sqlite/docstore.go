package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
	"github.com/gavel-labs/oklaw-cli/internal/core/ports/driven"
)

// documentStore implements driven.DocumentStore.
type documentStore struct {
	store *Store
}

var _ driven.DocumentStore = (*documentStore)(nil)

const documentColumns = `cite_id, doc_type, title_number, article_number,
	chapter_number, section_number, section_name, content, created_at, updated_at`

// Fetch retrieves a document by cite id.
func (s *documentStore) Fetch(ctx context.Context, citeID string) (*domain.Document, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT `+documentColumns+`
		FROM documents WHERE cite_id = ?
	`, citeID)

	doc, err := scanDocument(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("document %s: %w", citeID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning document: %w", err)
	}
	return doc, nil
}

// FetchMany retrieves documents for the given cite ids in one query.
// Missing ids are absent from the returned map.
func (s *documentStore) FetchMany(ctx context.Context, citeIDs []string) (map[string]domain.Document, error) {
	result := make(map[string]domain.Document, len(citeIDs))
	if len(citeIDs) == 0 {
		return result, nil
	}

	placeholders := strings.Repeat("?,", len(citeIDs))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, len(citeIDs))
	for i, id := range citeIDs {
		args[i] = id
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+documentColumns+`
		FROM documents WHERE cite_id IN (`+placeholders+`)
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		doc, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		result[doc.CiteID] = *doc
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}

	return result, nil
}

// Save stores or updates a document, preserving the original creation
// time on update.
func (s *documentStore) Save(ctx context.Context, doc *domain.Document) error {
	now := time.Now().UTC()
	createdAt := doc.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO documents (`+documentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(cite_id) DO UPDATE SET
			doc_type = excluded.doc_type,
			title_number = excluded.title_number,
			article_number = excluded.article_number,
			chapter_number = excluded.chapter_number,
			section_number = excluded.section_number,
			section_name = excluded.section_name,
			content = excluded.content,
			updated_at = excluded.updated_at
	`, doc.CiteID, string(doc.Type), doc.TitleNumber, doc.ArticleNumber,
		doc.ChapterNumber, doc.SectionNumber, doc.SectionName, doc.Text,
		createdAt, now)

	if err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	return nil
}

// Count returns the number of stored documents, optionally filtered by type.
func (s *documentStore) Count(ctx context.Context, docType domain.DocumentType) (int, error) {
	query := "SELECT COUNT(*) FROM documents"
	var args []any
	if docType != "" {
		query += " WHERE doc_type = ?"
		args = append(args, string(docType))
	}

	var count int
	if err := s.store.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting documents: %w", err)
	}
	return count, nil
}

// scanDocument scans a document using the given scan function, which
// works for both *sql.Row and *sql.Rows.
func scanDocument(scan func(...any) error) (*domain.Document, error) {
	var doc domain.Document
	var docType string
	var createdAt, updatedAt sql.NullTime

	if err := scan(&doc.CiteID, &docType, &doc.TitleNumber, &doc.ArticleNumber,
		&doc.ChapterNumber, &doc.SectionNumber, &doc.SectionName, &doc.Text,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	doc.Type = domain.DocumentType(docType)
	if createdAt.Valid {
		doc.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		doc.UpdatedAt = updatedAt.Time
	}
	return &doc, nil
}
