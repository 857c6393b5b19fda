package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNoDomainSelected indicates a domain-scoped operation was attempted
	// without a selected domain. No request is sent in this case.
	ErrNoDomainSelected = errors.New("no domain selected")

	// ErrEmptyDomainName indicates a domain create with a blank name.
	ErrEmptyDomainName = errors.New("domain name is required")

	// ErrEmptyQuestionText indicates an add or edit with blank question text.
	ErrEmptyQuestionText = errors.New("question text is required")

	// ErrNoFile indicates an upload was attempted without a file.
	ErrNoFile = errors.New("no file provided")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)
