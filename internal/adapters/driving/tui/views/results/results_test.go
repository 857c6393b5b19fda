package results

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadline-labs/leadline-cli/internal/adapters/driving/tui/messages"
	"github.com/leadline-labs/leadline-cli/internal/core/domain"
)

// MockResultService implements driving.ResultService for testing.
type MockResultService struct {
	ProcessedConversationsFunc func(ctx context.Context, domains []domain.Domain) []domain.ProcessedConversation
	ResultsFunc                func(ctx context.Context, conversationID string) (*domain.ResultSet, error)
}

func (m *MockResultService) ProcessedConversations(ctx context.Context, domains []domain.Domain) []domain.ProcessedConversation {
	if m.ProcessedConversationsFunc != nil {
		return m.ProcessedConversationsFunc(ctx, domains)
	}
	return nil
}

func (m *MockResultService) Results(ctx context.Context, conversationID string) (*domain.ResultSet, error) {
	if m.ResultsFunc != nil {
		return m.ResultsFunc(ctx, conversationID)
	}
	return &domain.ResultSet{}, nil
}

func sampleProcessed() []domain.ProcessedConversation {
	return []domain.ProcessedConversation{
		{
			DomainID:   "dom-1",
			DomainName: "Billing",
			Conversation: domain.Conversation{
				ID: "c-1", Filename: "call.txt", Processed: true,
			},
		},
	}
}

func TestView_SetDomains_RunsFanOut(t *testing.T) {
	var gotDomains []domain.Domain
	view := NewView(nil, &MockResultService{
		ProcessedConversationsFunc: func(ctx context.Context, domains []domain.Domain) []domain.ProcessedConversation {
			gotDomains = domains
			return sampleProcessed()
		},
	})

	cmd := view.SetDomains([]domain.Domain{{ID: "dom-1", Name: "Billing"}})
	require.NotNil(t, cmd)
	view, _ = view.Update(cmd())

	require.Len(t, gotDomains, 1)
	require.Len(t, view.Processed(), 1)
	assert.Contains(t, view.View(), "Billing - call.txt")
}

func TestView_EmptySelector(t *testing.T) {
	view := NewView(nil, &MockResultService{})

	cmd := view.SetDomains(nil)
	view, _ = view.Update(cmd())

	assert.Contains(t, view.View(), "No processed conversations")
}

func TestView_EnterLoadsResults(t *testing.T) {
	view := NewView(nil, &MockResultService{
		ProcessedConversationsFunc: func(ctx context.Context, domains []domain.Domain) []domain.ProcessedConversation {
			return sampleProcessed()
		},
		ResultsFunc: func(ctx context.Context, conversationID string) (*domain.ResultSet, error) {
			return &domain.ResultSet{
				DomainName: "Billing",
				Filename:   "call.txt",
				Total:      1,
				Results: []domain.Result{
					{QuestionText: "What plan is the caller on?", Answer: "Pro", Confidence: 0.91},
				},
			}, nil
		},
	})

	cmd := view.SetDomains([]domain.Domain{{ID: "dom-1"}})
	view, _ = view.Update(cmd())

	view, cmd = view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	view, _ = view.Update(cmd())

	require.NotNil(t, view.Set())
	out := view.View()
	assert.Contains(t, out, "Billing / call.txt")
	assert.Contains(t, out, "What plan is the caller on?")
	assert.Contains(t, out, "91%")
}

func TestView_NotLoadedVersusEmpty(t *testing.T) {
	view := NewView(nil, &MockResultService{})
	view.mode = modeDetail

	assert.Contains(t, view.View(), "Results not loaded")

	view.set = &domain.ResultSet{DomainName: "Billing", Filename: "call.txt"}
	assert.Contains(t, view.View(), "No results were extracted")
}

func TestView_ResultsError(t *testing.T) {
	view := NewView(nil, &MockResultService{
		ResultsFunc: func(ctx context.Context, conversationID string) (*domain.ResultSet, error) {
			return nil, errors.New("not found")
		},
	})

	cmd := view.ShowConversation("c-404")
	view, _ = view.Update(cmd())

	assert.Error(t, view.Err())
	assert.Contains(t, view.View(), "not found")
}

func TestView_EscReturnsToSelector(t *testing.T) {
	view := NewView(nil, &MockResultService{})
	cmd := view.ShowConversation("c-1")
	view, _ = view.Update(cmd())
	require.Equal(t, modeDetail, view.mode)

	view, _ = view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, modeSelector, view.mode)
	assert.Nil(t, view.Set())
}

func TestView_StaleFanOutDiscarded(t *testing.T) {
	view := NewView(nil, &MockResultService{})

	first := view.SetDomains(nil)
	firstMsg := first().(messages.ProcessedConversationsLoaded)
	second := view.SetDomains(nil)
	secondMsg := second().(messages.ProcessedConversationsLoaded)
	secondMsg.Conversations = sampleProcessed()

	view, _ = view.Update(secondMsg)
	firstMsg.Conversations = nil
	view, _ = view.Update(firstMsg)

	assert.Len(t, view.Processed(), 1, "the stale empty response must not win")
}
