package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// Callers use errors.Is to check for them; the API layer maps them to
// HTTP status codes.
var (
	// ErrForbidden indicates the caller tried to act as a different user than
	// the one their token identifies. API layer should map this to HTTP 403.
	ErrForbidden = errors.New("caller does not own the resource")
)

// ServiceError is a custom error type for failures inside a service
// operation. It wraps the underlying store or validation error.
type ServiceError struct {
	Service   string
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewFoodServiceError creates a ServiceError for the food service.
func NewFoodServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{Service: "food", Operation: operation, Message: message, Err: err}
}

// NewRequestedFoodServiceError creates a ServiceError for the requested-food service.
func NewRequestedFoodServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{Service: "requested food", Operation: operation, Message: message, Err: err}
}
