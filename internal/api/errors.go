package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/foodshare-api/internal/api/middleware"
	"github.com/phrazzld/foodshare-api/internal/api/shared"
	"github.com/phrazzld/foodshare-api/internal/domain"
	"github.com/phrazzld/foodshare-api/internal/service"
	"github.com/phrazzld/foodshare-api/internal/service/auth"
	"github.com/phrazzld/foodshare-api/internal/store"
)

// Messages returned to clients. Nothing else about an error is exposed.
const (
	MsgUnauthorized   = middleware.UnauthorizedMessage
	MsgForbidden      = "Forbidden access"
	MsgInvalidID      = "Invalid food ID"
	MsgInvalidDate    = "Invalid date"
	MsgInvalidRequest = "Invalid request format"
	MsgInvalidQuery   = "Invalid query parameter"
	MsgBodyTooLarge   = "Request body too large"
	MsgInternal       = shared.InternalErrorMessage
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var maxBytes *http.MaxBytesError

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingEmail):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden

	// Bad request errors
	case errors.Is(err, store.ErrInvalidID),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	var maxBytes *http.MaxBytesError

	switch {
	case err == nil:
		return MsgInternal
	case MapErrorToStatusCode(err) == http.StatusUnauthorized:
		return MsgUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return MsgForbidden
	case errors.Is(err, store.ErrInvalidID):
		return MsgInvalidID
	case errors.Is(err, domain.ErrInvalidDate):
		return MsgInvalidDate
	case errors.Is(err, domain.ErrValidation):
		return MsgInvalidQuery
	case errors.As(err, &maxBytes):
		return MsgBodyTooLarge
	default:
		return MsgInternal
	}
}

// HandleAPIError writes the response for err: status from
// MapErrorToStatusCode and message from GetSafeErrorMessage. The full error
// is logged in redacted form. Authorization failures are logged at WARN.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)

	var opts []shared.ResponseOption
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		opts = append(opts, shared.WithElevatedLogLevel())
	}

	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err, opts...)
}
