package cli

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
	"github.com/gavel-labs/oklaw-cli/internal/core/ports/driving"
)

// setupTestServices installs mock services and returns a cleanup func
// restoring the previous ones.
func setupTestServices() func() {
	oldSearch := searchService
	oldAsk := askService
	oldSession := sessionService
	oldDocument := documentService
	oldConfig := configStore

	searchService = &mockSearchService{}
	askService = &mockAskService{}
	sessionService = &mockSessionService{}
	documentService = &mockDocumentService{}
	configStore = &mockConfigStore{values: map[string]any{}}

	return func() {
		searchService = oldSearch
		askService = oldAsk
		sessionService = oldSession
		documentService = oldDocument
		configStore = oldConfig
	}
}

var testCreatedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func testResult() domain.SearchResult {
	return domain.SearchResult{
		Document: domain.Document{
			CiteID:        "okcn-2-7",
			Type:          domain.DocTypeConstitution,
			ArticleNumber: "II",
			SectionNumber: "7",
			SectionName:   "Due process of law",
			Text:          "No person shall be deprived of life, liberty, or property...",
		},
		Score:  0.92,
		Source: domain.SourceConstitution,
	}
}

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	response *domain.SearchResponse
	err      error
	lastOpts domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context, _ string, opts domain.SearchOptions,
) (*domain.SearchResponse, error) {
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.response != nil {
		return m.response, nil
	}
	return &domain.SearchResponse{
		Results:   []domain.SearchResult{testResult()},
		Breakdown: domain.SourceBreakdown{domain.SourceConstitution: 1, domain.SourceStatutes: 0},
	}, nil
}

// mockAskService is a mock implementation of driving.AskService.
type mockAskService struct {
	answer  *domain.Answer
	err     error
	lastReq driving.AskRequest
}

func (m *mockAskService) Ask(_ context.Context, req driving.AskRequest) (*domain.Answer, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	if m.answer != nil {
		return m.answer, nil
	}
	return &domain.Answer{
		Question:   req.Question,
		Text:       "According to Article II, Section 7, no person shall be deprived...",
		Sources:    []domain.SearchResult{testResult()},
		SessionID:  req.SessionID,
		Model:      domain.DefaultModel,
		TokensUsed: 120,
	}, nil
}

// mockSessionService is a mock implementation of driving.SessionService.
type mockSessionService struct {
	session  *domain.Session
	sessions []domain.Session
	messages []domain.Message
	err      error
}

func (m *mockSessionService) List(_ context.Context, _ int) ([]domain.Session, error) {
	return m.sessions, m.err
}

func (m *mockSessionService) Create(_ context.Context, _ map[string]any) (*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.session != nil {
		return m.session, nil
	}
	return &domain.Session{ID: "sess-1", CreatedAt: testCreatedAt, UpdatedAt: testCreatedAt}, nil
}

func (m *mockSessionService) Get(_ context.Context, id string) (*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.session != nil {
		return m.session, nil
	}
	return &domain.Session{ID: id, CreatedAt: testCreatedAt, UpdatedAt: testCreatedAt}, nil
}

func (m *mockSessionService) History(_ context.Context, _ string, _ int) ([]domain.Message, error) {
	return m.messages, m.err
}

func (m *mockSessionService) Delete(_ context.Context, _ string) error {
	return m.err
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	document *domain.Document
	stats    *driving.ImportStats
	count    int
	err      error
}

func (m *mockDocumentService) Get(_ context.Context, _ string) (*domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.document != nil {
		return m.document, nil
	}
	doc := testResult().Document
	return &doc, nil
}

func (m *mockDocumentService) Import(_ context.Context, _ io.Reader) (*driving.ImportStats, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.stats != nil {
		return m.stats, nil
	}
	return &driving.ImportStats{Imported: 2, Skipped: 1}, nil
}

func (m *mockDocumentService) Count(_ context.Context, _ domain.DocumentType) (int, error) {
	return m.count, m.err
}

// mockConfigStore is an in-memory driven.ConfigStore.
type mockConfigStore struct {
	values map[string]any
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if v, ok := m.values[key].(string); ok {
		return v
	}
	return ""
}

func (m *mockConfigStore) GetInt(key string) int {
	if v, ok := m.values[key].(int); ok {
		return v
	}
	return 0
}

func (m *mockConfigStore) GetFloat(key string) float64 {
	if v, ok := m.values[key].(float64); ok {
		return v
	}
	return 0
}

func (m *mockConfigStore) GetBool(key string) bool {
	if v, ok := m.values[key].(bool); ok {
		return v
	}
	return false
}

func (m *mockConfigStore) Set(key string, value any) error {
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Save() error { return nil }
func (m *mockConfigStore) Load() error { return nil }
func (m *mockConfigStore) Path() string {
	return "/tmp/oklaw-test/config.toml"
}

// mockSearchServiceError always fails.
type mockSearchServiceError struct{}

func (m *mockSearchServiceError) Search(
	_ context.Context, _ string, _ domain.SearchOptions,
) (*domain.SearchResponse, error) {
	return nil, errors.New("index exploded")
}
