package driven

import (
	"context"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
)

// LLMService produces text completions from a structured list of
// role-tagged messages.
type LLMService interface {
	// Chat sends the conversation to the provider and returns the
	// generated text plus token usage. Fails with
	// domain.ErrGenerativeProvider on provider outage, context-length
	// overflow, or malformed responses.
	Chat(ctx context.Context, messages []ChatMessage, opts ChatOptions) (*ChatResult, error)

	// Ping validates the service is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// ChatMessage is a single role-tagged message sent to the provider.
type ChatMessage struct {
	// Role is one of "system", "user", or "assistant".
	Role domain.Role

	// Content is the message text.
	Content string
}

// ChatOptions configures a single generation call.
type ChatOptions struct {
	// Model selects the generative tier for this call.
	Model domain.Model

	// MaxTokens bounds the generated output length.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic).
	Temperature float64
}

// ChatResult is the provider's response to a Chat call.
type ChatResult struct {
	// Text is the generated completion.
	Text string

	// TokensUsed is the provider-reported total token count for the
	// call (prompt + completion).
	TokensUsed int
}
