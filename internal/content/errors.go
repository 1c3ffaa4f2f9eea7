package content

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a slug resolves to no device record.
var ErrNotFound = errors.New("device not found")

// NetworkError covers transport and connectivity failures: connection
// errors, timeouts, and non-2xx HTTP responses.
type NetworkError struct {
	// Op is the logical operation that failed ("search", "detail").
	Op string
	// Err is the underlying transport error.
	Err error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("content %s: network error: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error { return e.Err }

// APIError covers a well-formed response carrying an error payload from the
// content API.
type APIError struct {
	// Op is the logical operation that failed ("search", "detail").
	Op string
	// Messages holds the error messages reported by the API.
	Messages []string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("content %s: api error: %s", e.Op, strings.Join(e.Messages, "; "))
}
