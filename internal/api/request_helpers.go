package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/foodshare-api/internal/api/middleware"
	"github.com/phrazzld/foodshare-api/internal/api/shared"
	"github.com/phrazzld/foodshare-api/internal/domain"
	"github.com/phrazzld/foodshare-api/internal/service/auth"
)

// IdentityHandlerFunc is a handler for routes behind the auth middleware.
// It receives the verified caller explicitly.
type IdentityHandlerFunc func(w http.ResponseWriter, r *http.Request, caller auth.Identity)

// WithIdentity adapts h to http.HandlerFunc. Requests that reach it without
// an identity in context are rejected with 401.
func WithIdentity(h IdentityHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			HandleAPIError(w, r, auth.ErrMissingToken)
			return
		}
		h(w, r, caller)
	}
}

// pathID returns the {id} route parameter.
func pathID(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// optionalQuery returns the named query parameter, or nil when it is absent.
// A parameter present with an empty value yields a pointer to "".
func optionalQuery(r *http.Request, name string) *string {
	values, ok := r.URL.Query()[name]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

// parseLimit parses the limit parameter. Absent or empty means 0.
func parseLimit(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError("limit", "must be an integer", domain.ErrValidation)
	}

	q := ListFoodsQuery{Limit: n}
	if err := shared.ValidateRequest(&q); err != nil {
		return 0, domain.NewValidationError("limit", "must not be negative", errors.Join(domain.ErrValidation, err))
	}
	return n, nil
}

// decodeBody decodes a JSON request body, writing the error response itself
// when decoding fails.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	err := shared.DecodeJSON(w, r, v)
	if err == nil {
		return true
	}

	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		HandleAPIError(w, r, err)
		return false
	}
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
	return false
}
