package errors

import (
	stdErrors "errors"
	"fmt"
)

// TransportError represents a failure to reach the remote catalog: the request
// could not be built or sent, the connection failed, or the context expired.
type TransportError struct {
	Op  string
	URL string // redacted, never carries the API key
	Err error
}

func (e *TransportError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("%s: request to %s failed: %v", e.Op, e.URL, e.Err)
	}
	return fmt.Sprintf("%s: request failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError creates a TransportError for the given operation
func NewTransportError(op, url string, err error) *TransportError {
	return &TransportError{Op: op, URL: url, Err: err}
}

// IsTransportError checks if err is a TransportError (even when wrapped)
func IsTransportError(err error) bool {
	var transportErr *TransportError
	return stdErrors.As(err, &transportErr)
}
