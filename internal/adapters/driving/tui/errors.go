package tui

import "errors"

// ErrMissingDomainService is returned when the domain service is not provided.
var ErrMissingDomainService = errors.New("tui: domain service is required")

// ErrMissingQuestionService is returned when the question service is not provided.
var ErrMissingQuestionService = errors.New("tui: question service is required")

// ErrMissingConversationService is returned when the conversation service is not provided.
var ErrMissingConversationService = errors.New("tui: conversation service is required")

// ErrMissingResultService is returned when the result service is not provided.
var ErrMissingResultService = errors.New("tui: result service is required")
