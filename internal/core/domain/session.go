package domain

import "time"

// Role identifies the author of a conversation message.
type Role string

// Available message roles.
const (
	// RoleUser is a question from the person asking.
	RoleUser Role = "user"

	// RoleAssistant is a generated answer.
	RoleAssistant Role = "assistant"

	// RoleSystem is an instruction message.
	RoleSystem Role = "system"
)

// IsValid returns true if the role is recognised.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (r Role) String() string {
	return string(r)
}

// Session scopes an ordered sequence of conversation turns.
// Sessions own their messages: deleting a session removes its messages.
type Session struct {
	// ID is an opaque, globally unique identifier.
	ID string

	// Metadata contains arbitrary key-value pairs.
	Metadata map[string]any

	// CreatedAt is when the session was created.
	CreatedAt time.Time

	// UpdatedAt advances on every appended message.
	UpdatedAt time.Time
}

// Message is one conversation turn. Messages are append-only and ordered
// by creation time; the core never mutates or deletes individual messages.
type Message struct {
	// ID is the unique message identifier.
	ID string

	// SessionID is the owning session.
	SessionID string

	// Role is the message author.
	Role Role

	// Content is the message text.
	Content string

	// Metadata carries per-message details such as token counts,
	// model name, and source count.
	Metadata map[string]any

	// CreatedAt orders the message within its session.
	CreatedAt time.Time
}
