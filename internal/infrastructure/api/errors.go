package api

import (
	"encoding/json"

	"github.com/Green-Future-Society/incident-console/internal/core/domain"
)

// backendEnvelope is the loose error body shape used across the backend:
// some endpoints send {message}, others {error: "..."}. Accept either.
type backendEnvelope struct {
	Message  string          `json:"message"`
	RawError json.RawMessage `json:"error"`
}

// backendMessage extracts a human-readable message from an error response
// body, or "" when the body carries none.
func backendMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var env backendEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	if env.Message != "" {
		return env.Message
	}
	// {error: "text"}, but not the boolean from the RESTResponse shape.
	var s string
	if err := json.Unmarshal(env.RawError, &s); err == nil {
		return s
	}
	return ""
}

// sentinelFor maps an HTTP status to the domain failure taxonomy.
func sentinelFor(status int) error {
	switch {
	case status == 401:
		return domain.ErrSessionExpired
	case status == 403:
		return domain.ErrForbidden
	case status == 404:
		return domain.ErrNotFound
	case status >= 500:
		return domain.ErrServer
	default:
		return domain.ErrRequestFailed
	}
}
