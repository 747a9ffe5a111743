// Package common defines sentinel errors and shared constants used across
// the clinicdesk client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Errors derived from API responses.
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")

	// Client-side state errors.
	ErrNoSession      = errors.New("no active session")
	ErrUnknownSection = errors.New("unknown section")
	ErrUnsupported    = errors.New("command not supported here")
)
