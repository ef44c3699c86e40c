package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/phrazzld/foodshare-api/internal/api/shared"
	"github.com/phrazzld/foodshare-api/internal/service/auth"
)

// UnauthorizedMessage is the body message of every 401 response.
const UnauthorizedMessage = "Unauthorized access"

type identityKey struct{}

// AuthMiddleware provides bearer token authentication for routes.
type AuthMiddleware struct {
	verifier auth.Verifier
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(verifier auth.Verifier) *AuthMiddleware {
	if verifier == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("verifier cannot be nil")
	}
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate verifies the bearer token in the Authorization header and
// adds the caller's identity to the request context. Requests without a
// valid token are rejected with 401 before reaching next.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, UnauthorizedMessage,
				auth.ErrMissingToken, shared.WithElevatedLogLevel())
			return
		}

		id, err := m.verifier.Verify(r.Context(), token)
		if err != nil {
			if !isAuthError(err) {
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, shared.InternalErrorMessage, err)
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, UnauthorizedMessage,
				err, shared.WithElevatedLogLevel())
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
	})
}

// bearerToken extracts the token from a "Bearer <token>" header value.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}

func isAuthError(err error) bool {
	return errors.Is(err, auth.ErrMissingToken) ||
		errors.Is(err, auth.ErrInvalidToken) ||
		errors.Is(err, auth.ErrExpiredToken) ||
		errors.Is(err, auth.ErrTokenNotYetValid) ||
		errors.Is(err, auth.ErrMissingEmail)
}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity stored by Authenticate.
func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(auth.Identity)
	return id, ok && id.Email != ""
}
