package domain

import (
	"errors"
	"fmt"
)

// APIError is the typed outcome of a failed backend call. It always wraps
// one of the sentinel errors above so callers can dispatch with errors.Is
// while still seeing the exact status and backend message.
type APIError struct {
	Status  int    // HTTP status, 0 when no response was received
	Message string // backend-supplied message or canonical fallback
	Kind    error  // sentinel this failure maps to
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("api: %s", e.Message)
	}
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error { return e.Kind }

// APIMessage extracts the backend message from an error chain, or "" when
// the error did not come from the pipeline.
func APIMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
