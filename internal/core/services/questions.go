package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/leadline-labs/leadline-cli/internal/core/domain"
	"github.com/leadline-labs/leadline-cli/internal/core/ports/driven"
	"github.com/leadline-labs/leadline-cli/internal/core/ports/driving"
	"github.com/leadline-labs/leadline-cli/internal/logger"
)

// Ensure QuestionService implements the interface.
var _ driving.QuestionService = (*QuestionService)(nil)

// QuestionService manages the question set of a domain through the backend.
type QuestionService struct {
	backend driven.Backend
}

// NewQuestionService creates a new question service.
func NewQuestionService(backend driven.Backend) *QuestionService {
	return &QuestionService{backend: backend}
}

// List returns the questions of a domain.
func (s *QuestionService) List(ctx context.Context, domainID string) ([]domain.Question, error) {
	if domainID == "" {
		return nil, domain.ErrNoDomainSelected
	}
	questions, err := s.backend.ListQuestions(ctx, domainID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

// Add submits a question and classifies the backend's response message into
// a discriminated outcome. Validation failures never reach the backend.
func (s *QuestionService) Add(ctx context.Context, domainID, text string) (domain.QuestionOutcome, error) {
	if domainID == "" {
		return 0, domain.ErrNoDomainSelected
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, domain.ErrEmptyQuestionText
	}

	message, _, err := s.backend.AddQuestion(ctx, domainID, text)
	if err != nil {
		return 0, fmt.Errorf("add question: %w", err)
	}

	outcome := domain.ClassifyQuestionMessage(message)
	logger.Debug("add question outcome: %s (%q)", outcome, message)
	return outcome, nil
}

// Update replaces a question's text. A blank new text or one identical to
// the current text is a no-op: no request is issued and false is returned.
func (s *QuestionService) Update(ctx context.Context, id, currentText, newText string) (bool, error) {
	newText = strings.TrimSpace(newText)
	if newText == "" || newText == currentText {
		return false, nil
	}

	if _, err := s.backend.UpdateQuestion(ctx, id, newText); err != nil {
		return false, fmt.Errorf("update question: %w", err)
	}
	return true, nil
}

// Delete deletes a question. Confirmation is the caller's responsibility.
func (s *QuestionService) Delete(ctx context.Context, id string) error {
	if err := s.backend.DeleteQuestion(ctx, id); err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	return nil
}
