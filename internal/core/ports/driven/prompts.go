package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from files, embed them in the binary,
// or fetch them from a remote configuration service.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// If the prompt is not found, implementations should return a
	// sensible default or an error, depending on whether the prompt
	// is required.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next
	// access. Useful when prompts may have been edited on disk.
	Reload()
}

// Well-known prompt names used throughout the application.
const (
	// PromptAskSystem is the system instruction for the answer composer.
	// It defines the assistant's role, the citation requirement, and the
	// not-legal-advice disclaimer. No format placeholders.
	PromptAskSystem = "ask_system"

	// PromptAskQuestion frames the question with its retrieved context.
	// The template expects %s (question) and %s (context blocks).
	PromptAskQuestion = "ask_question"
)
