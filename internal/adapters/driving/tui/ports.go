// Package tui provides the interactive terminal interface for leadline.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/leadline-labs/leadline-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Domains manages knowledge domains.
	Domains driving.DomainService

	// Questions manages the question set of a domain.
	Questions driving.QuestionService

	// Conversations manages uploaded transcripts.
	Conversations driving.ConversationService

	// Results reads extraction results.
	Results driving.ResultService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	domains driving.DomainService,
	questions driving.QuestionService,
	conversations driving.ConversationService,
	results driving.ResultService,
) *Ports {
	return &Ports{
		Domains:       domains,
		Questions:     questions,
		Conversations: conversations,
		Results:       results,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Domains == nil {
		return ErrMissingDomainService
	}
	if p.Questions == nil {
		return ErrMissingQuestionService
	}
	if p.Conversations == nil {
		return ErrMissingConversationService
	}
	if p.Results == nil {
		return ErrMissingResultService
	}
	return nil
}
