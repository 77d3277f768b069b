package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDocument_Citation tests citation display strings for each corpus
func TestDocument_Citation(t *testing.T) {
	tests := []struct {
		name     string
		doc      Document
		expected string
	}{
		{
			name: "constitution with article and section",
			doc: Document{
				Type:          DocTypeConstitution,
				ArticleNumber: "II",
				SectionNumber: "7",
			},
			expected: "Oklahoma Constitution - Article II, Section 7",
		},
		{
			name: "constitution with article only",
			doc: Document{
				Type:          DocTypeConstitution,
				ArticleNumber: "III",
			},
			expected: "Oklahoma Constitution - Article III",
		},
		{
			name: "constitution without locator fields",
			doc: Document{
				Type: DocTypeConstitution,
			},
			expected: "Oklahoma Constitution",
		},
		{
			name: "statute with title and section",
			doc: Document{
				Type:          DocTypeStatute,
				TitleNumber:   "10",
				SectionNumber: "21",
			},
			expected: "Oklahoma Statutes - Title 10, Section 21",
		},
		{
			name: "statute with title only",
			doc: Document{
				Type:        DocTypeStatute,
				TitleNumber: "21",
			},
			expected: "Oklahoma Statutes - Title 21",
		},
		{
			name: "unknown type falls back to section name",
			doc: Document{
				Type:        DocumentType("ag_opinion"),
				SectionName: "2010 OK AG 12",
			},
			expected: "2010 OK AG 12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.doc.Citation())
		})
	}
}

func TestDocumentType_IsValid(t *testing.T) {
	assert.True(t, DocTypeConstitution.IsValid())
	assert.True(t, DocTypeStatute.IsValid())
	assert.False(t, DocumentType("").IsValid())
	assert.False(t, DocumentType("case_law").IsValid())
}

func TestDocumentType_Source(t *testing.T) {
	assert.Equal(t, SourceConstitution, DocTypeConstitution.Source())
	assert.Equal(t, SourceStatutes, DocTypeStatute.Source())
	assert.Equal(t, Source(""), DocumentType("bogus").Source())
}
