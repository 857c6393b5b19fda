package domain

import "time"

// Domain represents a named topical scope grouping a question set, the
// conversations uploaded into it, and their extraction results.
// The backend is the system of record; the client holds a read-through
// cache refreshed on navigation.
type Domain struct {
	// ID is the backend identifier for the domain.
	ID string

	// Name is the operator-facing display name.
	Name string

	// QuestionCount is the number of questions currently in the domain.
	QuestionCount int

	// CreatedAt is when the domain was created.
	CreatedAt time.Time
}
