package driving

import (
	"context"

	"github.com/leadline-labs/leadline-cli/internal/core/domain"
)

// DomainService manages the domain collection.
type DomainService interface {
	// List returns all domains from the backend.
	List(ctx context.Context) ([]domain.Domain, error)

	// Create creates a domain seeded with initial questions. Blank question
	// lines are dropped before submission. Fails with ErrEmptyDomainName
	// before any request when the name is blank. Returns the number of
	// questions the backend accepted.
	Create(ctx context.Context, name string, initialQuestions []string) (int, error)

	// Delete deletes a domain; the backend cascades to its questions,
	// conversations and results. Callers must confirm with the operator
	// before invoking Delete.
	Delete(ctx context.Context, id string) error

	// GenerateLeads produces an ephemeral lead set for a domain.
	GenerateLeads(ctx context.Context, domainID string) ([]string, error)
}
