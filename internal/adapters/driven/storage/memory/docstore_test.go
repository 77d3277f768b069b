package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
)

func testDocument(citeID string, docType domain.DocumentType) *domain.Document {
	return &domain.Document{
		CiteID:        citeID,
		Type:          docType,
		ArticleNumber: "II",
		SectionNumber: "7",
		SectionName:   "Due process of law",
		Text:          "No person shall be deprived of life, liberty, or property, without due process of law.",
	}
}

func TestDocumentStore_SaveAndFetch(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	doc := testDocument("okcn-2-7", domain.DocTypeConstitution)
	require.NoError(t, store.Save(ctx, doc))

	fetched, err := store.Fetch(ctx, "okcn-2-7")
	require.NoError(t, err)
	assert.Equal(t, "okcn-2-7", fetched.CiteID)
	assert.Equal(t, domain.DocTypeConstitution, fetched.Type)
	assert.False(t, fetched.CreatedAt.IsZero())
	assert.False(t, fetched.UpdatedAt.IsZero())
}

func TestDocumentStore_Fetch_NotFound(t *testing.T) {
	store := NewDocumentStore()

	_, err := store.Fetch(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_Save_UpdatePreservesCreatedAt(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	doc := testDocument("okcn-2-7", domain.DocTypeConstitution)
	require.NoError(t, store.Save(ctx, doc))

	first, err := store.Fetch(ctx, "okcn-2-7")
	require.NoError(t, err)

	doc.Text = "Amended text."
	require.NoError(t, store.Save(ctx, doc))

	second, err := store.Fetch(ctx, "okcn-2-7")
	require.NoError(t, err)
	assert.Equal(t, "Amended text.", second.Text)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
}

func TestDocumentStore_FetchMany_PartialSuccess(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testDocument("okcn-2-7", domain.DocTypeConstitution)))
	require.NoError(t, store.Save(ctx, testDocument("os-10-21", domain.DocTypeStatute)))

	docs, err := store.FetchMany(ctx, []string{"okcn-2-7", "missing", "os-10-21"})

	require.NoError(t, err)
	assert.Len(t, docs, 2)
	assert.Contains(t, docs, "okcn-2-7")
	assert.Contains(t, docs, "os-10-21")
	assert.NotContains(t, docs, "missing")
}

func TestDocumentStore_FetchMany_Empty(t *testing.T) {
	store := NewDocumentStore()

	docs, err := store.FetchMany(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDocumentStore_Count(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testDocument("okcn-2-7", domain.DocTypeConstitution)))
	require.NoError(t, store.Save(ctx, testDocument("okcn-2-3", domain.DocTypeConstitution)))
	require.NoError(t, store.Save(ctx, testDocument("os-10-21", domain.DocTypeStatute)))

	total, err := store.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	constitution, err := store.Count(ctx, domain.DocTypeConstitution)
	require.NoError(t, err)
	assert.Equal(t, 2, constitution)

	statutes, err := store.Count(ctx, domain.DocTypeStatute)
	require.NoError(t, err)
	assert.Equal(t, 1, statutes)
}
