package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
)

func TestSessionStore_CreateAndGet(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	session, err := store.CreateSession(ctx, map[string]any{"client": "cli"})
	require.NoError(t, err)
	require.NotEmpty(t, session.ID)

	fetched, err := store.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, fetched.ID)
	assert.Equal(t, "cli", fetched.Metadata["client"])
}

func TestSessionStore_GetSession_Unknown(t *testing.T) {
	store := NewSessionStore()

	_, err := store.GetSession(context.Background(), "nope")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}

func TestSessionStore_ListSessions_NewestFirst(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	first, err := store.CreateSession(ctx, nil)
	require.NoError(t, err)
	second, err := store.CreateSession(ctx, nil)
	require.NoError(t, err)

	// Appending touches the session, so first becomes most recent.
	require.NoError(t, store.AppendMessage(ctx, &domain.Message{
		SessionID: first.ID, Role: domain.RoleUser, Content: "hello",
	}))

	sessions, err := store.ListSessions(ctx, 0)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, first.ID, sessions[0].ID)
	assert.Equal(t, second.ID, sessions[1].ID)

	limited, err := store.ListSessions(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, first.ID, limited[0].ID)
}

func TestSessionStore_AppendMessage_UnknownSession(t *testing.T) {
	store := NewSessionStore()

	err := store.AppendMessage(context.Background(), &domain.Message{
		SessionID: "nope",
		Role:      domain.RoleUser,
		Content:   "hello",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}

func TestSessionStore_AppendMessage_AssignsIDAndTime(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	session, err := store.CreateSession(ctx, nil)
	require.NoError(t, err)

	msg := &domain.Message{SessionID: session.ID, Role: domain.RoleUser, Content: "hello"}
	require.NoError(t, store.AppendMessage(ctx, msg))

	assert.NotEmpty(t, msg.ID)
	assert.False(t, msg.CreatedAt.IsZero())
}

func TestSessionStore_ListMessages_ChronologicalWindow(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	session, err := store.CreateSession(ctx, nil)
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		role := domain.RoleUser
		if i%2 == 1 {
			role = domain.RoleAssistant
		}
		require.NoError(t, store.AppendMessage(ctx, &domain.Message{
			SessionID: session.ID,
			Role:      role,
			Content:   fmt.Sprintf("turn %d", i),
		}))
	}

	msgs, err := store.ListMessages(ctx, session.ID, 4)
	require.NoError(t, err)
	require.Len(t, msgs, 4)

	// The oldest two are truncated; the rest stay in append order.
	assert.Equal(t, "turn 2", msgs[0].Content)
	assert.Equal(t, "turn 5", msgs[3].Content)
}

func TestSessionStore_ListMessages_SessionIsolation(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	alpha, err := store.CreateSession(ctx, nil)
	require.NoError(t, err)
	beta, err := store.CreateSession(ctx, nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.AppendMessage(ctx, &domain.Message{
			SessionID: alpha.ID, Role: domain.RoleUser, Content: fmt.Sprintf("alpha %d", i),
		}))
	}
	require.NoError(t, store.AppendMessage(ctx, &domain.Message{
		SessionID: beta.ID, Role: domain.RoleUser, Content: "beta 0",
	}))

	msgs, err := store.ListMessages(ctx, beta.ID, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "beta 0", msgs[0].Content)
	for _, msg := range msgs {
		assert.Equal(t, beta.ID, msg.SessionID)
	}
}

func TestSessionStore_ListMessages_FewerThanWindow(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	session, err := store.CreateSession(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, store.AppendMessage(ctx, &domain.Message{
		SessionID: session.ID, Role: domain.RoleUser, Content: "only one",
	}))

	msgs, err := store.ListMessages(ctx, session.ID, 10)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestSessionStore_DeleteSession_Cascades(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	session, err := store.CreateSession(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, store.AppendMessage(ctx, &domain.Message{
		SessionID: session.ID, Role: domain.RoleUser, Content: "hello",
	}))

	require.NoError(t, store.DeleteSession(ctx, session.ID))

	_, err = store.GetSession(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidSession)

	_, err = store.ListMessages(ctx, session.ID, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}

func TestSessionStore_DeleteSession_Unknown(t *testing.T) {
	store := NewSessionStore()

	err := store.DeleteSession(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}

func TestSessionStore_AppendMessage_AdvancesUpdatedAt(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	session, err := store.CreateSession(ctx, nil)
	require.NoError(t, err)

	require.NoError(t, store.AppendMessage(ctx, &domain.Message{
		SessionID: session.ID, Role: domain.RoleUser, Content: "hello",
	}))

	fetched, err := store.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.False(t, fetched.UpdatedAt.Before(session.UpdatedAt))
}
