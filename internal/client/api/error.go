package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/clinicdesk/internal/common"
)

// Error is a non-2xx answer of the API. The server speaks plain text on
// failures, so Body is what the user should see.
type Error struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
	RequestID  string
}

// Error returns the body text, or the status line when the body is empty.
func (e *Error) Error() string {
	if b := strings.TrimSpace(e.Body); b != "" {
		return b
	}
	return fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap maps the status code onto the common sentinels so callers can use
// errors.Is without inspecting codes.
func (e *Error) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized, e.StatusCode == http.StatusForbidden:
		return common.ErrUnauthorized
	case e.StatusCode == http.StatusNotFound:
		return common.ErrNotFound
	case e.StatusCode == http.StatusBadRequest, e.StatusCode == http.StatusUnprocessableEntity:
		return common.ErrValidation
	case e.StatusCode >= 500:
		return common.ErrUnavailable
	}
	return nil
}
