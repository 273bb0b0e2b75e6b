package webex

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an API response with a non-2xx status code. The status code is kept
// as a structured field so callers can branch on it instead of inspecting the
// error text.
type Error struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Status, e.Body)
}

// IsConflict reports whether err is an API error with status 409, the
// service's signal that the requested relationship already exists.
func IsConflict(err error) bool {
	var apiError *Error
	return errors.As(err, &apiError) && apiError.StatusCode == http.StatusConflict
}
