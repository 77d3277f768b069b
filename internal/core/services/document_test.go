package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gavel-labs/oklaw-cli/internal/adapters/driven/storage/memory"
	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
)

func TestDocumentService_Get(t *testing.T) {
	store := setupTestDocStore(t)
	service := NewDocumentService(store)
	ctx := context.Background()

	doc, err := service.Get(ctx, "okcn-2-7")
	require.NoError(t, err)
	assert.Equal(t, domain.DocTypeConstitution, doc.Type)

	_, err = service.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = service.Get(ctx, "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentService_Import(t *testing.T) {
	store := memory.NewDocumentStore()
	service := NewDocumentService(store)
	ctx := context.Background()

	input := strings.Join([]string{
		`{"cite_id":"okcn-2-7","type":"constitution_section","article_number":"II","section_number":"7","section_name":"Due process of law","text":"No person shall be deprived of life, liberty, or property."}`,
		``,
		`{"cite_id":"os-22-13","type":"statute_section","title_number":"22","section_number":"13","section_name":"Rights of defendant","text":"The defendant is entitled to a speedy and public trial."}`,
		`not json at all`,
		`{"cite_id":"bad-type","type":"regulation","text":"nope"}`,
		`{"cite_id":"","type":"statute_section","text":"no id"}`,
		`{"cite_id":"os-empty","type":"statute_section","text":""}`,
	}, "\n")

	stats, err := service.Import(ctx, strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Imported)
	assert.Equal(t, 4, stats.Skipped)

	doc, err := store.Fetch(ctx, "okcn-2-7")
	require.NoError(t, err)
	assert.Equal(t, "II", doc.ArticleNumber)
	assert.Equal(t, "7", doc.SectionNumber)

	count, err := service.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestDocumentService_Import_Empty(t *testing.T) {
	service := NewDocumentService(memory.NewDocumentStore())

	stats, err := service.Import(context.Background(), strings.NewReader(""))

	require.NoError(t, err)
	assert.Equal(t, 0, stats.Imported)
	assert.Equal(t, 0, stats.Skipped)
}

func TestDocumentService_Count_UnknownType(t *testing.T) {
	service := NewDocumentService(memory.NewDocumentStore())

	_, err := service.Count(context.Background(), "regulation")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
