package errors

import (
	stdErrors "errors"
	"fmt"
)

// RemoteError represents a well-formed exchange with the remote catalog that
// nevertheless produced nothing usable: a non-2xx HTTP status, an envelope
// status other than OK, or an empty result list.
type RemoteError struct {
	Op         string
	StatusCode int // HTTP status, 0 when the failure came from the envelope itself
	Message    string
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (HTTP %d)", e.Op, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// NewRemoteError creates a RemoteError without an HTTP status
func NewRemoteError(op, message string) *RemoteError {
	return &RemoteError{Op: op, Message: message}
}

// NewRemoteStatusError creates a RemoteError for an unexpected HTTP status
func NewRemoteStatusError(op string, statusCode int, message string) *RemoteError {
	return &RemoteError{Op: op, StatusCode: statusCode, Message: message}
}

// IsRemoteError checks if err is a RemoteError (even when wrapped)
func IsRemoteError(err error) bool {
	var remoteErr *RemoteError
	return stdErrors.As(err, &remoteErr)
}
