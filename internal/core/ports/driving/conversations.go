package driving

import (
	"context"

	"github.com/leadline-labs/leadline-cli/internal/core/domain"
)

// ConversationService manages the conversations of a domain.
type ConversationService interface {
	// List returns the conversations of a domain.
	List(ctx context.Context, domainID string) ([]domain.Conversation, error)

	// Upload reads the file at path and uploads it into the domain as one
	// multipart request. Fails with ErrNoDomainSelected or ErrNoFile before
	// any request when either is missing. Uploading never triggers
	// processing; that is a separate explicit step. Returns the backend's
	// confirmation message, or a composed one when the backend sent none.
	Upload(ctx context.Context, domainID, path string) (string, error)

	// Process triggers backend analysis of every domain question against
	// the conversation and returns how many questions were analysed.
	Process(ctx context.Context, conversationID string) (int, error)
}
