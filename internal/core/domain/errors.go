package domain

import "errors"

// Failure taxonomy surfaced by the HTTP pipeline. Every failure is terminal
// for the call that hit it; there are no retries in this layer.
var (
	ErrSessionExpired = errors.New("session expired")
	ErrForbidden      = errors.New("access forbidden")
	ErrNotFound       = errors.New("resource not found")
	ErrServer         = errors.New("server error")
	ErrRequestFailed  = errors.New("request failed")
	ErrNetwork        = errors.New("network error")
	ErrCorruptSession = errors.New("corrupted session snapshot")
	ErrNavBlocked     = errors.New("navigation blocked")
)
