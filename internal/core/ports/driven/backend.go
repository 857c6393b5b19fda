package driven

import (
	"context"

	"github.com/leadline-labs/leadline-cli/internal/core/domain"
)

// Backend is the leadline REST backend, one method per capability.
// Every method performs exactly one round-trip: no retries, no caching,
// no request de-duplication. Failures carry the backend's detail message
// when one was provided.
type Backend interface {
	// ListDomains returns all domains.
	ListDomains(ctx context.Context) ([]domain.Domain, error)

	// CreateDomain creates a domain seeded with the given questions and
	// returns how many questions the backend accepted.
	CreateDomain(ctx context.Context, name string, questions []string) (int, error)

	// DeleteDomain deletes a domain. The backend cascades deletion to the
	// domain's questions, conversations and results.
	DeleteDomain(ctx context.Context, id string) error

	// ListQuestions returns the questions of a domain.
	ListQuestions(ctx context.Context, domainID string) ([]domain.Question, error)

	// AddQuestion submits a question to a domain. The returned message
	// encodes the business outcome (created, duplicate, rejected); the
	// question is non-nil only when a row was created.
	AddQuestion(ctx context.Context, domainID, text string) (string, *domain.Question, error)

	// UpdateQuestion replaces a question's text.
	UpdateQuestion(ctx context.Context, id, text string) (*domain.Question, error)

	// DeleteQuestion deletes a question.
	DeleteQuestion(ctx context.Context, id string) error

	// GenerateLeads produces an ephemeral lead set for a domain.
	// Leads are never persisted client-side.
	GenerateLeads(ctx context.Context, domainID string) ([]string, error)

	// ListConversations returns the conversations of a domain.
	ListConversations(ctx context.Context, domainID string) ([]domain.Conversation, error)

	// UploadConversation uploads a transcript into a domain as a multipart
	// file and returns the backend's confirmation message. Uploading never
	// triggers processing.
	UploadConversation(ctx context.Context, domainID, filename string, content []byte) (string, error)

	// ProcessConversation analyses every question of the owning domain
	// against the conversation and returns how many were processed.
	ProcessConversation(ctx context.Context, conversationID string) (int, error)

	// ConversationResults returns the result set of a processed
	// conversation, in the backend's order.
	ConversationResults(ctx context.Context, conversationID string) (*domain.ResultSet, error)
}
