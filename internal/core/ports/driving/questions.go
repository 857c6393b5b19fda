package driving

import (
	"context"

	"github.com/leadline-labs/leadline-cli/internal/core/domain"
)

// QuestionService manages the question set of a domain. Every mutating
// operation fails with ErrNoDomainSelected before any request when no
// domain id is given.
type QuestionService interface {
	// List returns the questions of a domain.
	List(ctx context.Context, domainID string) ([]domain.Question, error)

	// Add submits a question and classifies the backend's response into a
	// discriminated outcome. Fails with ErrEmptyQuestionText before any
	// request when the trimmed text is empty.
	Add(ctx context.Context, domainID, text string) (domain.QuestionOutcome, error)

	// Update replaces a question's text. It is a no-op returning false when
	// the trimmed new text is empty or identical to the current text.
	Update(ctx context.Context, id, currentText, newText string) (bool, error)

	// Delete deletes a question. Callers must confirm with the operator
	// before invoking Delete.
	Delete(ctx context.Context, id string) error
}
