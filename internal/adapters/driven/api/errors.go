package api

import (
	"fmt"
	"net/http"

	"github.com/leadline-labs/leadline-cli/internal/core/domain"
)

// RequestError is a non-2xx response from the backend. Detail carries the
// backend's "detail" field, or a generic message when the body had none.
type RequestError struct {
	Status int
	Detail string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("backend error (status %d): %s", e.Status, e.Detail)
}

// Unwrap maps 404 responses onto domain.ErrNotFound so callers can test
// with errors.Is without knowing HTTP status codes.
func (e *RequestError) Unwrap() error {
	if e.Status == http.StatusNotFound {
		return domain.ErrNotFound
	}
	return nil
}

// errorBody is the FastAPI error envelope.
type errorBody struct {
	Detail string `json:"detail"`
}
