package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Query bounds shared by the search and ask paths.
const (
	// MaxQueryLength is the maximum accepted query/question length.
	// Longer input is rejected rather than silently truncated so the
	// caller knows their text was not fully considered.
	MaxQueryLength = 500

	// MaxResultLimit caps the total result count a caller may request.
	MaxResultLimit = 20

	// MaxSourceCount caps the number of context documents for an ask.
	MaxSourceCount = 5
)

// ValidateQuery checks a user-supplied query or question. Returns the
// trimmed text, or ErrInvalidInput when empty or over the length bound.
func ValidateQuery(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", fmt.Errorf("%w: query is empty", ErrInvalidInput)
	}
	if utf8.RuneCountInString(trimmed) > MaxQueryLength {
		return "", fmt.Errorf("%w: query exceeds %d characters", ErrInvalidInput, MaxQueryLength)
	}
	return trimmed, nil
}

// Model identifies a generative model tier. The allow-list keeps typo'd
// model names from reaching the provider.
type Model string

// Approved generative models.
const (
	// ModelFast is the cheap, lower-latency tier.
	ModelFast Model = "gpt-3.5-turbo"

	// ModelQuality is the higher-quality, higher-cost tier.
	ModelQuality Model = "gpt-4"
)

// DefaultModel is used when the caller does not select a tier.
const DefaultModel = ModelFast

// IsValid returns true if the model is on the allow-list.
func (m Model) IsValid() bool {
	switch m {
	case ModelFast, ModelQuality:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m Model) String() string {
	return string(m)
}

// Description returns a human-readable description of the tier.
func (m Model) Description() string {
	switch m {
	case ModelFast:
		return "Fast (gpt-3.5-turbo)"
	case ModelQuality:
		return "Quality (gpt-4)"
	default:
		return unknownDescription
	}
}
