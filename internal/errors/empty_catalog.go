package errors

import (
	stdErrors "errors"
	"fmt"
)

// EmptyCatalogError is returned when the remote reports no items to sample from.
type EmptyCatalogError struct {
	Total int64
}

func (e *EmptyCatalogError) Error() string {
	return fmt.Sprintf("catalog is empty: remote reported %d total results", e.Total)
}

// NewEmptyCatalogError creates an EmptyCatalogError for the reported total
func NewEmptyCatalogError(total int64) *EmptyCatalogError {
	return &EmptyCatalogError{Total: total}
}

// IsEmptyCatalogError checks if err is an EmptyCatalogError (even when wrapped)
func IsEmptyCatalogError(err error) bool {
	var emptyErr *EmptyCatalogError
	return stdErrors.As(err, &emptyErr)
}
