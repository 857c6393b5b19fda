package driving

import (
	"context"

	"github.com/leadline-labs/leadline-cli/internal/core/domain"
)

// ResultService reads extraction results. Results are produced only by the
// backend's processing step and are read-only here.
type ResultService interface {
	// ProcessedConversations fetches the conversations of every given
	// domain and returns the processed ones paired with their domain name,
	// preserving domain order and the backend's order within each domain.
	// Domains whose fetch fails are skipped and logged.
	ProcessedConversations(ctx context.Context, domains []domain.Domain) []domain.ProcessedConversation

	// Results returns the result set of one conversation, in backend order.
	Results(ctx context.Context, conversationID string) (*domain.ResultSet, error)
}
