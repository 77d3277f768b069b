package mcp

import (
	"context"
	"io"

	"github.com/gavel-labs/oklaw-cli/internal/core/domain"
	"github.com/gavel-labs/oklaw-cli/internal/core/ports/driving"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	response *domain.SearchResponse
	err      error
	lastOpts domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	_ string,
	opts domain.SearchOptions,
) (*domain.SearchResponse, error) {
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.response != nil {
		return m.response, nil
	}
	return &domain.SearchResponse{Breakdown: domain.SourceBreakdown{}}, nil
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
	return &domain.Answer{Text: "mock answer", Model: domain.DefaultModel}, nil
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
	return m.session, m.err
}

func (m *mockSessionService) Get(_ context.Context, _ string) (*domain.Session, error) {
	return m.session, m.err
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
	return m.document, m.err
}

func (m *mockDocumentService) Import(_ context.Context, _ io.Reader) (*driving.ImportStats, error) {
	return m.stats, m.err
}

func (m *mockDocumentService) Count(_ context.Context, _ domain.DocumentType) (int, error) {
	return m.count, m.err
}
