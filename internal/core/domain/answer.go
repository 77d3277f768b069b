package domain

// Answer is the result of an ask operation: generated text plus the
// documents it was grounded on. Ephemeral; the conversation messages
// derived from it are persisted separately.
type Answer struct {
	// Question is the validated question text.
	Question string

	// Text is the generated answer.
	Text string

	// Sources are the cited documents with their similarity scores,
	// in rank order. Empty when the answer is ungrounded.
	Sources []SearchResult

	// SessionID is the session the turn was recorded under, empty for
	// stateless asks.
	SessionID string

	// Model is the generative model that produced the text.
	Model Model

	// TokensUsed is the provider-reported total token usage.
	TokensUsed int
}

// Grounded returns true when the answer cites at least one source
// document. Ungrounded answers are general knowledge, not corpus-backed.
func (a Answer) Grounded() bool {
	return len(a.Sources) > 0
}
