package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/leadline-labs/leadline-cli/internal/core/domain"
	"github.com/leadline-labs/leadline-cli/internal/core/ports/driven"
	"github.com/leadline-labs/leadline-cli/internal/core/ports/driving"
	"github.com/leadline-labs/leadline-cli/internal/logger"
)

// Ensure ConversationService implements the interface.
var _ driving.ConversationService = (*ConversationService)(nil)

// ConversationService manages the conversations of a domain through the
// backend.
type ConversationService struct {
	backend driven.Backend
}

// NewConversationService creates a new conversation service.
func NewConversationService(backend driven.Backend) *ConversationService {
	return &ConversationService{backend: backend}
}

// List returns the conversations of a domain.
func (s *ConversationService) List(ctx context.Context, domainID string) ([]domain.Conversation, error) {
	if domainID == "" {
		return nil, domain.ErrNoDomainSelected
	}
	conversations, err := s.backend.ListConversations(ctx, domainID)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return conversations, nil
}

// Upload reads the transcript at path and uploads it into the domain as one
// multipart request. Validation failures never reach the backend, and an
// upload never triggers processing.
func (s *ConversationService) Upload(ctx context.Context, domainID, path string) (string, error) {
	if domainID == "" {
		return "", domain.ErrNoDomainSelected
	}
	if path == "" {
		return "", domain.ErrNoFile
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	filename := filepath.Base(path)
	message, err := s.backend.UploadConversation(ctx, domainID, filename, content)
	if err != nil {
		return "", fmt.Errorf("upload %q: %w", filename, err)
	}
	if message == "" {
		message = fmt.Sprintf("Uploaded %s", filename)
	}
	logger.Debug("uploaded %s: %s", filename, message)
	return message, nil
}

// Process triggers backend analysis of every domain question against the
// conversation.
func (s *ConversationService) Process(ctx context.Context, conversationID string) (int, error) {
	processed, err := s.backend.ProcessConversation(ctx, conversationID)
	if err != nil {
		return 0, fmt.Errorf("process conversation: %w", err)
	}
	return processed, nil
}
