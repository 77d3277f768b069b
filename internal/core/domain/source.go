package domain

const unknownDescription = "Unknown"

// Source is a named partition of the corpus with its own vector index
// and document-type tag.
type Source string

// Available sources.
const (
	// SourceConstitution is the Oklahoma Constitution corpus.
	SourceConstitution Source = "constitution"

	// SourceStatutes is the Oklahoma Statutes corpus.
	SourceStatutes Source = "statutes"

	// SourceAll selects every configured source.
	SourceAll Source = "all"
)

// IsValid returns true if the source selector is recognised.
func (s Source) IsValid() bool {
	switch s {
	case SourceConstitution, SourceStatutes, SourceAll:
		return true
	default:
		return false
	}
}

// IsAll returns true if the selector means "every configured source".
func (s Source) IsAll() bool {
	return s == SourceAll
}

// String returns the string representation.
func (s Source) String() string {
	return string(s)
}

// Description returns a human-readable description of the source.
func (s Source) Description() string {
	switch s {
	case SourceConstitution:
		return "Oklahoma Constitution"
	case SourceStatutes:
		return "Oklahoma Statutes"
	case SourceAll:
		return "All sources"
	default:
		return unknownDescription
	}
}

// DefaultSourcePriority is the tie-break order applied when merged hits have
// equal similarity scores. The business priority between sources is a policy
// choice; this default is overridable through configuration.
var DefaultSourcePriority = []Source{SourceConstitution, SourceStatutes}
