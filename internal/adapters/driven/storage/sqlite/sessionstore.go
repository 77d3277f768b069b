package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
	"github.com/gavel-labs/oklaw-cli/internal/core/ports/driven"
)

// sessionStore implements driven.SessionStore.
type sessionStore struct {
	store *Store
}

var _ driven.SessionStore = (*sessionStore)(nil)

// CreateSession creates a new session with a generated id.
func (s *sessionStore) CreateSession(ctx context.Context, metadata map[string]any) (*domain.Session, error) {
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("marshalling metadata: %w", err)
	}

	now := time.Now().UTC()
	session := domain.Session{
		ID:        uuid.NewString(),
		Metadata:  metadata,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO conversation_sessions (id, metadata, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`, session.ID, string(metadataJSON), session.CreatedAt, session.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return &session, nil
}

// GetSession retrieves a session by id.
func (s *sessionStore) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, metadata, created_at, updated_at
		FROM conversation_sessions WHERE id = ?
	`, id)

	var session domain.Session
	var metadataJSON sql.NullString
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&session.ID, &metadataJSON, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session %s: %w", id, domain.ErrInvalidSession)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	if metadataJSON.Valid && metadataJSON.String != jsonNull {
		if err := json.Unmarshal([]byte(metadataJSON.String), &session.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshalling metadata: %w", err)
		}
	}
	if createdAt.Valid {
		session.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		session.UpdatedAt = updatedAt.Time
	}
	return &session, nil
}

// ListSessions returns the most recently updated limit sessions,
// newest first.
func (s *sessionStore) ListSessions(ctx context.Context, limit int) ([]domain.Session, error) {
	if limit <= 0 {
		limit = -1 // SQLite treats a negative LIMIT as unbounded
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, metadata, created_at, updated_at
		FROM conversation_sessions
		ORDER BY updated_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.Session //nolint:prealloc // size unknown from query
	for rows.Next() {
		var session domain.Session
		var metadataJSON sql.NullString
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&session.ID, &metadataJSON, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		if metadataJSON.Valid && metadataJSON.String != jsonNull {
			if err := json.Unmarshal([]byte(metadataJSON.String), &session.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshalling metadata: %w", err)
			}
		}
		if createdAt.Valid {
			session.CreatedAt = createdAt.Time
		}
		if updatedAt.Valid {
			session.UpdatedAt = updatedAt.Time
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

// AppendMessage appends a message to its session and advances the
// session's updated-at time in the same transaction.
func (s *sessionStore) AppendMessage(ctx context.Context, msg *domain.Message) error {
	metadataJSON, err := json.Marshal(msg.Metadata)
	if err != nil {
		return fmt.Errorf("marshalling message metadata: %w", err)
	}

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx, `
		UPDATE conversation_sessions SET updated_at = ? WHERE id = ?
	`, msg.CreatedAt, msg.SessionID)
	if err != nil {
		return fmt.Errorf("touching session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("touching session: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("session %s: %w", msg.SessionID, domain.ErrInvalidSession)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO conversation_messages (id, session_id, role, content, metadata, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, msg.ID, msg.SessionID, string(msg.Role), msg.Content, string(metadataJSON), msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("appending message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// ListMessages returns the most recent lastN messages in chronological
// order. The query selects the newest lastN then reverses them.
func (s *sessionStore) ListMessages(ctx context.Context, sessionID string, lastN int) ([]domain.Message, error) {
	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, session_id, role, content, metadata, created_at
		FROM conversation_messages
		WHERE session_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, sessionID, lastN)
	if err != nil {
		return nil, fmt.Errorf("querying messages: %w", err)
	}
	defer rows.Close()

	var msgs []domain.Message //nolint:prealloc // size unknown from query
	for rows.Next() {
		var msg domain.Message
		var role string
		var metadataJSON sql.NullString
		var createdAt sql.NullTime
		if err := rows.Scan(&msg.ID, &msg.SessionID, &role, &msg.Content,
			&metadataJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}

		msg.Role = domain.Role(role)
		if metadataJSON.Valid && metadataJSON.String != jsonNull {
			if err := json.Unmarshal([]byte(metadataJSON.String), &msg.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshalling message metadata: %w", err)
			}
		}
		if createdAt.Valid {
			msg.CreatedAt = createdAt.Time
		}
		msgs = append(msgs, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating messages: %w", err)
	}

	// Newest-first from the query; flip to chronological.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

// DeleteSession removes a session; messages go with it via cascade.
func (s *sessionStore) DeleteSession(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM conversation_sessions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("session %s: %w", id, domain.ErrInvalidSession)
	}
	return nil
}
