package services

import (
	"context"
	"sync"

	"github.com/leadline-labs/leadline-cli/internal/core/domain"
	"github.com/leadline-labs/leadline-cli/internal/core/ports/driven"
)

// mockBackend implements driven.Backend for testing. Each call is counted
// so tests can assert that validation failures never reach the backend.
type mockBackend struct {
	ListDomainsFunc         func(ctx context.Context) ([]domain.Domain, error)
	CreateDomainFunc        func(ctx context.Context, name string, questions []string) (int, error)
	DeleteDomainFunc        func(ctx context.Context, id string) error
	ListQuestionsFunc       func(ctx context.Context, domainID string) ([]domain.Question, error)
	AddQuestionFunc         func(ctx context.Context, domainID, text string) (string, *domain.Question, error)
	UpdateQuestionFunc      func(ctx context.Context, id, text string) (*domain.Question, error)
	DeleteQuestionFunc      func(ctx context.Context, id string) error
	GenerateLeadsFunc       func(ctx context.Context, domainID string) ([]string, error)
	ListConversationsFunc   func(ctx context.Context, domainID string) ([]domain.Conversation, error)
	UploadConversationFunc  func(ctx context.Context, domainID, filename string, content []byte) (string, error)
	ProcessConversationFunc func(ctx context.Context, conversationID string) (int, error)
	ConversationResultsFunc func(ctx context.Context, conversationID string) (*domain.ResultSet, error)

	mu    sync.Mutex
	calls map[string]int
}

var _ driven.Backend = (*mockBackend)(nil)

func newMockBackend() *mockBackend {
	return &mockBackend{calls: make(map[string]int)}
}

func (m *mockBackend) count(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[name]++
}

func (m *mockBackend) callCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

func (m *mockBackend) ListDomains(ctx context.Context) ([]domain.Domain, error) {
	m.count("ListDomains")
	if m.ListDomainsFunc != nil {
		return m.ListDomainsFunc(ctx)
	}
	return nil, nil
}

func (m *mockBackend) CreateDomain(ctx context.Context, name string, questions []string) (int, error) {
	m.count("CreateDomain")
	if m.CreateDomainFunc != nil {
		return m.CreateDomainFunc(ctx, name, questions)
	}
	return len(questions), nil
}

func (m *mockBackend) DeleteDomain(ctx context.Context, id string) error {
	m.count("DeleteDomain")
	if m.DeleteDomainFunc != nil {
		return m.DeleteDomainFunc(ctx, id)
	}
	return nil
}

func (m *mockBackend) ListQuestions(ctx context.Context, domainID string) ([]domain.Question, error) {
	m.count("ListQuestions")
	if m.ListQuestionsFunc != nil {
		return m.ListQuestionsFunc(ctx, domainID)
	}
	return nil, nil
}

func (m *mockBackend) AddQuestion(ctx context.Context, domainID, text string) (string, *domain.Question, error) {
	m.count("AddQuestion")
	if m.AddQuestionFunc != nil {
		return m.AddQuestionFunc(ctx, domainID, text)
	}
	return "Question added successfully", &domain.Question{Text: text}, nil
}

func (m *mockBackend) UpdateQuestion(ctx context.Context, id, text string) (*domain.Question, error) {
	m.count("UpdateQuestion")
	if m.UpdateQuestionFunc != nil {
		return m.UpdateQuestionFunc(ctx, id, text)
	}
	return &domain.Question{ID: id, Text: text}, nil
}

func (m *mockBackend) DeleteQuestion(ctx context.Context, id string) error {
	m.count("DeleteQuestion")
	if m.DeleteQuestionFunc != nil {
		return m.DeleteQuestionFunc(ctx, id)
	}
	return nil
}

func (m *mockBackend) GenerateLeads(ctx context.Context, domainID string) ([]string, error) {
	m.count("GenerateLeads")
	if m.GenerateLeadsFunc != nil {
		return m.GenerateLeadsFunc(ctx, domainID)
	}
	return nil, nil
}

func (m *mockBackend) ListConversations(ctx context.Context, domainID string) ([]domain.Conversation, error) {
	m.count("ListConversations")
	if m.ListConversationsFunc != nil {
		return m.ListConversationsFunc(ctx, domainID)
	}
	return nil, nil
}

func (m *mockBackend) UploadConversation(ctx context.Context, domainID, filename string, content []byte) (string, error) {
	m.count("UploadConversation")
	if m.UploadConversationFunc != nil {
		return m.UploadConversationFunc(ctx, domainID, filename, content)
	}
	return "File uploaded successfully", nil
}

func (m *mockBackend) ProcessConversation(ctx context.Context, conversationID string) (int, error) {
	m.count("ProcessConversation")
	if m.ProcessConversationFunc != nil {
		return m.ProcessConversationFunc(ctx, conversationID)
	}
	return 0, nil
}

func (m *mockBackend) ConversationResults(ctx context.Context, conversationID string) (*domain.ResultSet, error) {
	m.count("ConversationResults")
	if m.ConversationResultsFunc != nil {
		return m.ConversationResultsFunc(ctx, conversationID)
	}
	return &domain.ResultSet{}, nil
}
