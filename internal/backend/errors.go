package backend

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized = errors.New("backend: unauthorized")
	ErrForbidden    = errors.New("backend: forbidden")
	ErrNotFound     = errors.New("backend: not found")
)

// APIError carries the backend's error envelope ({"detail": "..."}) for
// responses that are not covered by a sentinel.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend: %s (status %d)", e.Detail, e.StatusCode)
}
