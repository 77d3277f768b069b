package domain

import (
	"fmt"
	"time"
)

// DocumentType classifies a document by the corpus it came from.
type DocumentType string

// Available document types.
const (
	// DocTypeConstitution is a section of the Oklahoma Constitution.
	DocTypeConstitution DocumentType = "constitution_section"

	// DocTypeStatute is a section of the Oklahoma Statutes.
	DocTypeStatute DocumentType = "statute_section"
)

// IsValid returns true if the document type is recognised.
func (t DocumentType) IsValid() bool {
	switch t {
	case DocTypeConstitution, DocTypeStatute:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t DocumentType) String() string {
	return string(t)
}

// Source returns the corpus source this document type belongs to.
func (t DocumentType) Source() Source {
	switch t {
	case DocTypeConstitution:
		return SourceConstitution
	case DocTypeStatute:
		return SourceStatutes
	default:
		return ""
	}
}

// Document is a single section of legal text with its citation metadata.
// Documents are created at ingestion time and read-only from the core's
// perspective.
type Document struct {
	// CiteID is the unique, stable identifier shared between the vector
	// index and the document store (e.g. "okcn-2-7", "os-10-21").
	CiteID string

	// Type classifies the owning corpus.
	Type DocumentType

	// TitleNumber is the statute title number. Empty for constitution
	// sections.
	TitleNumber string

	// ArticleNumber is the constitution article number. Empty for
	// statutes.
	ArticleNumber string

	// ChapterNumber is the statute chapter number, when known.
	ChapterNumber string

	// SectionNumber is the section number within the article or title.
	SectionNumber string

	// SectionName is the human-readable section heading.
	SectionName string

	// Text is the full text body of the section.
	Text string

	// CreatedAt is when the document was first ingested.
	CreatedAt time.Time

	// UpdatedAt is when the document was last updated.
	UpdatedAt time.Time
}

// Citation builds the display citation string for the document, e.g.
// "Oklahoma Constitution - Article II, Section 7" or
// "Oklahoma Statutes - Title 10, Section 21".
func (d Document) Citation() string {
	switch d.Type {
	case DocTypeConstitution:
		label := "Oklahoma Constitution"
		if d.ArticleNumber != "" {
			label += fmt.Sprintf(" - Article %s", d.ArticleNumber)
			if d.SectionNumber != "" {
				label += fmt.Sprintf(", Section %s", d.SectionNumber)
			}
		}
		return label
	case DocTypeStatute:
		label := "Oklahoma Statutes"
		if d.TitleNumber != "" {
			label += fmt.Sprintf(" - Title %s", d.TitleNumber)
			if d.SectionNumber != "" {
				label += fmt.Sprintf(", Section %s", d.SectionNumber)
			}
		}
		return label
	default:
		return d.SectionName
	}
}
