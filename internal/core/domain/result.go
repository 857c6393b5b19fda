package domain

import "time"

// Result is the backend's answer to one question against one conversation.
// Results are immutable once created and are never produced client-side.
type Result struct {
	// ConversationID is the conversation this result was extracted from.
	ConversationID string

	// QuestionText is the question that was answered.
	QuestionText string

	// Answer is the generated answer text.
	Answer string

	// Confidence is the backend's confidence score in [0,1].
	Confidence float64

	// Leads are the lead tags detected while answering.
	Leads []string

	// CreatedAt is when the result was produced.
	CreatedAt time.Time
}

// ResultSet is the full result payload for one conversation, including the
// summary metadata shown alongside the results. Results keep the backend's
// order; the client never re-sorts them.
type ResultSet struct {
	DomainName string
	Filename   string
	Total      int
	Results    []Result
}
