package api

import (
	"fmt"
	"net/http"

	"github.com/e-lobo/herogram-go/internal/common"
)

// Error is the one typed failure both client variants raise: the HTTP
// status code plus the server-provided message (or a generic one when the
// error envelope was absent or malformed).
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps status codes onto the shared sentinel errors so callers can
// match with errors.Is without inspecting codes themselves.
func (e *Error) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden:
		return common.ErrUnauthorized
	case e.StatusCode == http.StatusNotFound:
		return common.ErrNotFound
	case e.StatusCode >= http.StatusInternalServerError:
		return common.ErrUnavailable
	}
	return nil
}
