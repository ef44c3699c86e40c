package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrInvalidID is returned when an identifier cannot name a document in
	// the backing store (e.g. a non-hex string for MongoDB).
	ErrInvalidID = errors.New("invalid document ID")

	// ErrStoreFailure matches any *StoreError via errors.Is.
	ErrStoreFailure = errors.New("store operation failed")
)

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Collection string // The collection addressed (e.g., "foods")
	Operation  string // The operation that failed (e.g., "insert", "find")
	Message    string // Error message
	Err        error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Collection,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Collection, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is reports ErrStoreFailure as a match so callers need not know the type.
func (e *StoreError) Is(target error) bool {
	return target == ErrStoreFailure
}

// NewStoreError creates a new StoreError with the given collection, operation, message, and wrapped error.
func NewStoreError(collection, operation, message string, err error) *StoreError {
	return &StoreError{
		Collection: collection,
		Operation:  operation,
		Message:    message,
		Err:        err,
	}
}
