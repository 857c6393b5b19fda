package domain

import (
	"fmt"
	"time"
)

// Conversation is an uploaded transcript scoped to one domain.
// It moves from unprocessed to processed exactly once per processing
// trigger; until then no results exist for it.
type Conversation struct {
	// ID is the backend identifier for the conversation.
	ID string

	// DomainID is the owning domain.
	DomainID string

	// Filename is the name of the uploaded transcript file.
	Filename string

	// ContentPreview is a short excerpt of the transcript.
	ContentPreview string

	// Processed reports whether the backend has analysed this conversation.
	Processed bool

	// ResultCount is the number of results produced for this conversation.
	ResultCount int

	// CreatedAt is when the conversation was uploaded.
	CreatedAt time.Time
}

// StatusLabel returns the operator-facing processing status.
func (c *Conversation) StatusLabel() string {
	if c.Processed {
		return "Processed"
	}
	return "Pending"
}

// ProcessedConversation pairs a processed conversation with the name of its
// owning domain, for cross-domain selection lists.
type ProcessedConversation struct {
	DomainID     string
	DomainName   string
	Conversation Conversation
}

// Label returns the selector label for this conversation.
func (p *ProcessedConversation) Label() string {
	return fmt.Sprintf("%s - %s", p.DomainName, p.Conversation.Filename)
}
