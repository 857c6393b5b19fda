package domain

import "time"

// Question is a natural-language prompt answered against the conversations
// of its domain. A question belongs to exactly one domain for its lifetime.
type Question struct {
	// ID is the backend identifier for the question.
	ID string

	// DomainID is the owning domain.
	DomainID string

	// Text is the question text.
	Text string

	// Leads are short derived tags extracted by the backend. May be empty.
	Leads []string

	// CreatedAt is when the question was created.
	CreatedAt time.Time
}
