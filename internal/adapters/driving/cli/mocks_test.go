package cli

import (
	"context"

	"github.com/leadline-labs/leadline-cli/internal/core/domain"
)

// mockDomainService records calls and returns canned data.
type mockDomainService struct {
	domains   []domain.Domain
	created   int
	leads     []string
	err       error
	deletedID string
}

func (m *mockDomainService) List(_ context.Context) ([]domain.Domain, error) {
	return m.domains, m.err
}

func (m *mockDomainService) Create(_ context.Context, name string, questions []string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.created, nil
}

func (m *mockDomainService) Delete(_ context.Context, id string) error {
	m.deletedID = id
	return m.err
}

func (m *mockDomainService) GenerateLeads(_ context.Context, _ string) ([]string, error) {
	return m.leads, m.err
}

type mockQuestionService struct {
	questions []domain.Question
	outcome   domain.QuestionOutcome
	updated   bool
	err       error

	lastCurrentText string
	lastNewText     string
}

func (m *mockQuestionService) List(_ context.Context, _ string) ([]domain.Question, error) {
	return m.questions, m.err
}

func (m *mockQuestionService) Add(_ context.Context, _, _ string) (domain.QuestionOutcome, error) {
	return m.outcome, m.err
}

func (m *mockQuestionService) Update(_ context.Context, _, currentText, newText string) (bool, error) {
	m.lastCurrentText = currentText
	m.lastNewText = newText
	return m.updated, m.err
}

func (m *mockQuestionService) Delete(_ context.Context, _ string) error {
	return m.err
}

type mockConversationService struct {
	conversations []domain.Conversation
	uploadMessage string
	processed     int
	err           error

	lastDomainID string
	lastPath     string
}

func (m *mockConversationService) List(_ context.Context, _ string) ([]domain.Conversation, error) {
	return m.conversations, m.err
}

func (m *mockConversationService) Upload(_ context.Context, domainID, path string) (string, error) {
	m.lastDomainID = domainID
	m.lastPath = path
	if m.err != nil {
		return "", m.err
	}
	return m.uploadMessage, nil
}

func (m *mockConversationService) Process(_ context.Context, _ string) (int, error) {
	return m.processed, m.err
}

type mockResultService struct {
	processed []domain.ProcessedConversation
	set       *domain.ResultSet
	err       error
}

func (m *mockResultService) ProcessedConversations(_ context.Context, _ []domain.Domain) []domain.ProcessedConversation {
	return m.processed
}

func (m *mockResultService) Results(_ context.Context, _ string) (*domain.ResultSet, error) {
	return m.set, m.err
}

type mockConfigStore struct {
	settings domain.Settings
	loadErr  error
	saveErr  error
	saved    *domain.Settings
}

func (m *mockConfigStore) Load() (domain.Settings, error) {
	return m.settings, m.loadErr
}

func (m *mockConfigStore) Save(settings domain.Settings) error {
	m.saved = &settings
	return m.saveErr
}

// testServices holds the mocks installed by setupTestServices so tests can
// inspect recorded calls.
type testServices struct {
	domains       *mockDomainService
	questions     *mockQuestionService
	conversations *mockConversationService
	results       *mockResultService
	config        *mockConfigStore
}

// setupTestServices swaps the package level services for mocks and returns
// them along with a cleanup restoring the originals.
func setupTestServices() (*testServices, func()) {
	mocks := &testServices{
		domains:       &mockDomainService{},
		questions:     &mockQuestionService{},
		conversations: &mockConversationService{},
		results:       &mockResultService{},
		config:        &mockConfigStore{settings: domain.DefaultSettings()},
	}

	oldDomain := domainService
	oldQuestion := questionService
	oldConversation := conversationService
	oldResult := resultService
	oldConfig := configStore

	domainService = mocks.domains
	questionService = mocks.questions
	conversationService = mocks.conversations
	resultService = mocks.results
	configStore = mocks.config

	return mocks, func() {
		domainService = oldDomain
		questionService = oldQuestion
		conversationService = oldConversation
		resultService = oldResult
		configStore = oldConfig
	}
}
