// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/leadline-labs/leadline-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewDomains is the domain management view.
	ViewDomains
	// ViewQuestions manages the questions of the selected domain.
	ViewQuestions
	// ViewConversations lists the conversations of the selected domain.
	ViewConversations
	// ViewResults shows extraction results for processed conversations.
	ViewResults
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewDomains:
		return "domains"
	case ViewQuestions:
		return "questions"
	case ViewConversations:
		return "conversations"
	case ViewResults:
		return "results"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// Quit signals the application should exit.
type Quit struct{}

// DomainsLoaded carries the domain list from the service. Seq identifies
// which load request produced it; stale responses are discarded.
type DomainsLoaded struct {
	Seq     uint64
	Domains []domain.Domain
	Err     error
}

// DomainCreated signals a domain creation attempt finished.
type DomainCreated struct {
	Name           string
	QuestionsAdded int
	Err            error
}

// DomainDeleted signals a domain deletion attempt finished.
type DomainDeleted struct {
	ID  string
	Err error
}

// DomainSelected announces a change of the active domain.
type DomainSelected struct {
	Domain domain.Domain
}

// LeadsGenerated carries backend-proposed leads for a domain.
type LeadsGenerated struct {
	DomainID string
	Leads    []string
	Err      error
}

// ManageQuestions requests navigation to the questions view for a domain.
type ManageQuestions struct {
	Domain domain.Domain
}

// ViewConversationsOf requests navigation to the conversations view for a domain.
type ViewConversationsOf struct {
	Domain domain.Domain
}

// QuestionsLoaded carries the questions of a domain.
type QuestionsLoaded struct {
	Seq       uint64
	DomainID  string
	Questions []domain.Question
	Err       error
}

// QuestionAdded signals a question submission finished. Outcome is only
// meaningful when Err is nil.
type QuestionAdded struct {
	Outcome domain.QuestionOutcome
	Err     error
}

// QuestionUpdated signals a question edit finished. Updated is false when
// the edit was a no-op.
type QuestionUpdated struct {
	ID      string
	Updated bool
	Err     error
}

// QuestionDeleted signals a question deletion finished.
type QuestionDeleted struct {
	ID  string
	Err error
}

// ConversationsLoaded carries the conversations of a domain.
type ConversationsLoaded struct {
	Seq           uint64
	DomainID      string
	Conversations []domain.Conversation
	Err           error
}

// ConversationUploaded signals an upload attempt finished.
type ConversationUploaded struct {
	Message string
	Err     error
}

// ConversationProcessed signals extraction over a conversation finished.
type ConversationProcessed struct {
	ConversationID     string
	QuestionsProcessed int
	Err                error
}

// ProcessedConversationsLoaded carries the fan-out result for the results
// selector.
type ProcessedConversationsLoaded struct {
	Seq           uint64
	Conversations []domain.ProcessedConversation
}

// ShowResults requests navigation to the results view for one conversation.
type ShowResults struct {
	ConversationID string
}

// ResultsLoaded carries the extraction results of a conversation.
type ResultsLoaded struct {
	Seq            uint64
	ConversationID string
	Set            *domain.ResultSet
	Err            error
}
