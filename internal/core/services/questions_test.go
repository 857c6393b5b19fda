package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadline-labs/leadline-cli/internal/core/domain"
)

func TestQuestionService_List(t *testing.T) {
	backend := newMockBackend()
	backend.ListQuestionsFunc = func(ctx context.Context, domainID string) ([]domain.Question, error) {
		return []domain.Question{
			{ID: "q-1", DomainID: domainID, Text: "How do I reset my password?"},
		}, nil
	}
	svc := NewQuestionService(backend)

	questions, err := svc.List(context.Background(), "dom-1")

	require.NoError(t, err)
	assert.Len(t, questions, 1)
}

func TestQuestionService_List_NoDomain(t *testing.T) {
	backend := newMockBackend()
	svc := NewQuestionService(backend)

	_, err := svc.List(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrNoDomainSelected)
	assert.Equal(t, 0, backend.calls["ListQuestions"])
}

func TestQuestionService_Add_Outcomes(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    domain.QuestionOutcome
	}{
		{"created", "Question added successfully", domain.OutcomeCreated},
		{"duplicate", "Same type of question already exists", domain.OutcomeDuplicate},
		{"rejected", "Provide a relevant Question", domain.OutcomeRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newMockBackend()
			backend.AddQuestionFunc = func(ctx context.Context, domainID, text string) (string, *domain.Question, error) {
				return tt.message, nil, nil
			}
			svc := NewQuestionService(backend)

			outcome, err := svc.Add(context.Background(), "dom-1", "What plan is the caller on?")

			require.NoError(t, err)
			assert.Equal(t, tt.want, outcome)
		})
	}
}

func TestQuestionService_Add_NoDomain(t *testing.T) {
	backend := newMockBackend()
	svc := NewQuestionService(backend)

	_, err := svc.Add(context.Background(), "", "anything")

	assert.ErrorIs(t, err, domain.ErrNoDomainSelected)
	assert.Equal(t, 0, backend.calls["AddQuestion"])
}

func TestQuestionService_Add_EmptyText(t *testing.T) {
	backend := newMockBackend()
	svc := NewQuestionService(backend)

	_, err := svc.Add(context.Background(), "dom-1", "   ")

	assert.ErrorIs(t, err, domain.ErrEmptyQuestionText)
	assert.Equal(t, 0, backend.calls["AddQuestion"])
}

func TestQuestionService_Add_BackendError(t *testing.T) {
	backend := newMockBackend()
	backend.AddQuestionFunc = func(ctx context.Context, domainID, text string) (string, *domain.Question, error) {
		return "", nil, errors.New("internal server error")
	}
	svc := NewQuestionService(backend)

	_, err := svc.Add(context.Background(), "dom-1", "Is this covered?")

	assert.ErrorContains(t, err, "internal server error")
}

func TestQuestionService_Update_NoOpOnIdenticalText(t *testing.T) {
	backend := newMockBackend()
	svc := NewQuestionService(backend)

	updated, err := svc.Update(context.Background(), "q-1",
		"How do I reset my password?", "  How do I reset my password?  ")

	require.NoError(t, err)
	assert.False(t, updated)
	assert.Equal(t, 0, backend.calls["UpdateQuestion"], "identical text must not issue an update call")
}

func TestQuestionService_Update_NoOpOnEmptyText(t *testing.T) {
	backend := newMockBackend()
	svc := NewQuestionService(backend)

	updated, err := svc.Update(context.Background(), "q-1", "old text", "   ")

	require.NoError(t, err)
	assert.False(t, updated)
	assert.Equal(t, 0, backend.calls["UpdateQuestion"])
}

func TestQuestionService_Update_ChangedText(t *testing.T) {
	var sentText string
	backend := newMockBackend()
	backend.UpdateQuestionFunc = func(ctx context.Context, id, text string) (*domain.Question, error) {
		sentText = text
		return &domain.Question{ID: id, Text: text}, nil
	}
	svc := NewQuestionService(backend)

	updated, err := svc.Update(context.Background(), "q-1", "old text", " new text ")

	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, "new text", sentText)
}

func TestQuestionService_Delete(t *testing.T) {
	deleted := ""
	backend := newMockBackend()
	backend.DeleteQuestionFunc = func(ctx context.Context, id string) error {
		deleted = id
		return nil
	}
	svc := NewQuestionService(backend)

	err := svc.Delete(context.Background(), "q-1")

	require.NoError(t, err)
	assert.Equal(t, "q-1", deleted)
}
