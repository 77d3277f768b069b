package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
	"github.com/gavel-labs/oklaw-cli/internal/core/ports/driven"
	"github.com/gavel-labs/oklaw-cli/internal/core/ports/driving"
	"github.com/gavel-labs/oklaw-cli/internal/logger"
)

// Ensure Composer implements the interface.
var _ driving.AskService = (*Composer)(nil)

// Prompt assembly bounds.
const (
	// defaultSourceCount is how many context documents an ask retrieves
	// when the caller does not specify.
	defaultSourceCount = 3

	// contextCharBudget is the hard per-document character budget for
	// prompt context. A token-budget guard, not a quality heuristic.
	contextCharBudget = 1500

	// truncationMarker is appended when a document is cut at the budget.
	truncationMarker = "..."

	// historyWindow is the number of most recent conversation messages
	// included in the prompt.
	historyWindow = 10

	// answerMaxTokens bounds the generated output length.
	answerMaxTokens = 1000

	// answerTemperature keeps generation factual.
	answerTemperature = 0.3
)

// defaultSystemPrompt is used when no prompt store is configured or the
// template cannot be loaded.
const defaultSystemPrompt = `You are an expert research assistant for Oklahoma law.
Your role is to answer questions about the Oklahoma Constitution and Oklahoma Statutes accurately and clearly.

Guidelines:
1. Base your answer ONLY on the provided legal text
2. Cite specific sections when answering (e.g., "According to Article II, Section 7...")
3. If the provided text doesn't contain enough information to answer the question, say so
4. Be clear, concise, and accurate
5. Use plain language that citizens can understand
6. Always note that your answers are general information, not legal advice`

// Composer is the RAG engine: it turns a question, retrieved documents,
// and conversation history into a generated, cited answer.
type Composer struct {
	embedder driven.EmbeddingService
	merger   *Merger
	docs     driven.DocumentStore
	sessions driven.SessionStore
	llm      driven.LLMService
	prompts  driven.PromptStore
}

// NewComposer creates an answer composer. The prompt store is optional;
// when nil the embedded default prompts are used.
func NewComposer(
	embedder driven.EmbeddingService,
	merger *Merger,
	docs driven.DocumentStore,
	sessions driven.SessionStore,
	llm driven.LLMService,
	prompts driven.PromptStore,
) *Composer {
	return &Composer{
		embedder: embedder,
		merger:   merger,
		docs:     docs,
		sessions: sessions,
		llm:      llm,
		prompts:  prompts,
	}
}

// Ask answers a question grounded on retrieved corpus documents.
//
// When req.SessionID is set, the session must already exist; the prior
// turns are included in the prompt and the new question/answer pair is
// appended afterwards. When it is empty the ask is stateless: no history,
// no persistence, and no session is created.
func (c *Composer) Ask(ctx context.Context, req driving.AskRequest) (*domain.Answer, error) {
	logger.Section("Ask Execution")

	question, err := domain.ValidateQuery(req.Question)
	if err != nil {
		return nil, err
	}

	model := req.Model
	if model == "" {
		model = domain.DefaultModel
	}
	if !model.IsValid() {
		return nil, fmt.Errorf("%w: unknown model %q", domain.ErrInvalidInput, req.Model)
	}

	sourceCount := req.SourceCount
	if sourceCount == 0 {
		sourceCount = defaultSourceCount
	}
	if sourceCount < 0 || sourceCount > domain.MaxSourceCount {
		return nil, fmt.Errorf("%w: source count must be between 1 and %d", domain.ErrInvalidInput, domain.MaxSourceCount)
	}

	// Load history before doing any expensive work so a stale session id
	// fails fast, before the embedding call and before any writes.
	var history []domain.Message
	if req.SessionID != "" {
		if _, err := c.sessions.GetSession(ctx, req.SessionID); err != nil {
			return nil, fmt.Errorf("load session %s: %w", req.SessionID, err)
		}
		history, err = c.sessions.ListMessages(ctx, req.SessionID, historyWindow)
		if err != nil {
			return nil, fmt.Errorf("load history: %w", err)
		}
		logger.Debug("Loaded %d history message(s) for session %s", len(history), req.SessionID)
	}

	vector, err := c.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embed question: %w", err)
	}

	hits, _, err := c.merger.Retrieve(ctx, vector, req.Source, sourceCount)
	if err != nil {
		return nil, err
	}

	sources, err := hydrateHits(ctx, c.docs, hits)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		// Proceed ungrounded: the model gets no document context and
		// the answer carries an empty citation list.
		logger.Warn("No sources survived hydration, answering ungrounded")
	}

	messages := c.buildMessages(question, history, sources)

	result, err := c.llm.Chat(ctx, messages, driven.ChatOptions{
		Model:       model,
		MaxTokens:   answerMaxTokens,
		Temperature: answerTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}
	logger.Info("Answer generated, %d token(s) used", result.TokensUsed)

	answer := &domain.Answer{
		Question:   question,
		Text:       result.Text,
		Sources:    sources,
		SessionID:  req.SessionID,
		Model:      model,
		TokensUsed: result.TokensUsed,
	}

	if req.SessionID != "" {
		c.persistTurn(ctx, req.SessionID, answer)
	}

	return answer, nil
}

// persistTurn appends the user question and the assistant answer, in that
// order. Persistence failures are logged, not returned: the answer has
// already been generated and a partially recorded turn is tolerated by
// subsequent reads.
func (c *Composer) persistTurn(ctx context.Context, sessionID string, answer *domain.Answer) {
	userMsg := &domain.Message{
		SessionID: sessionID,
		Role:      domain.RoleUser,
		Content:   answer.Question,
	}
	if err := c.sessions.AppendMessage(ctx, userMsg); err != nil {
		logger.Error("Failed to persist user message for session %s: %v", sessionID, err)
		return
	}

	assistantMsg := &domain.Message{
		SessionID: sessionID,
		Role:      domain.RoleAssistant,
		Content:   answer.Text,
		Metadata: map[string]any{
			"tokens":  answer.TokensUsed,
			"model":   answer.Model.String(),
			"sources": len(answer.Sources),
		},
	}
	if err := c.sessions.AppendMessage(ctx, assistantMsg); err != nil {
		logger.Error("Failed to persist assistant message for session %s: %v", sessionID, err)
	}
}

// buildMessages assembles the chat payload: system instruction, the most
// recent history in chronological order, then the question with its
// labelled context blocks.
func (c *Composer) buildMessages(
	question string, history []domain.Message, sources []domain.SearchResult,
) []driven.ChatMessage {
	messages := make([]driven.ChatMessage, 0, len(history)+2)
	messages = append(messages, driven.ChatMessage{
		Role:    domain.RoleSystem,
		Content: c.loadPrompt(driven.PromptAskSystem, defaultSystemPrompt),
	})

	for _, msg := range history {
		messages = append(messages, driven.ChatMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	messages = append(messages, driven.ChatMessage{
		Role:    domain.RoleUser,
		Content: c.buildQuestionContent(question, sources),
	})
	return messages
}

// buildQuestionContent formats the final user message. With no surviving
// sources the model receives the bare question, never fabricated context.
func (c *Composer) buildQuestionContent(question string, sources []domain.SearchResult) string {
	if len(sources) == 0 {
		return question
	}

	var context strings.Builder
	for i, src := range sources {
		doc := src.Document
		fmt.Fprintf(&context, "\n--- Source %d: %s (%s) ---\n", i+1, doc.SectionName, doc.Citation())
		context.WriteString(truncateText(doc.Text, contextCharBudget))
		context.WriteString("\n")
	}

	template := c.loadPrompt(driven.PromptAskQuestion, defaultQuestionPrompt)
	return fmt.Sprintf(template, question, context.String())
}

// defaultQuestionPrompt frames the question with retrieved context.
const defaultQuestionPrompt = `Question: %s

Relevant sections from Oklahoma law:
%s
Please answer the question based on the provided legal text. Include citations to specific articles, titles, and sections.`

// loadPrompt loads a named template, falling back to the embedded default.
func (c *Composer) loadPrompt(name, fallback string) string {
	if c.prompts == nil {
		return fallback
	}
	prompt, err := c.prompts.Load(name)
	if err != nil || prompt == "" {
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("Failed to load prompt %q: %v", name, err)
		}
		return fallback
	}
	return prompt
}

// truncateText cuts text to at most budget characters. Text already
// within the budget is returned unchanged; otherwise the cut text plus
// the truncation marker together occupy exactly the budget.
func truncateText(text string, budget int) string {
	runes := []rune(text)
	if len(runes) <= budget {
		return text
	}
	cut := budget - len(truncationMarker)
	if cut < 0 {
		cut = 0
	}
	return string(runes[:cut]) + truncationMarker
}
