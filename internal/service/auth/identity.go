package auth

import "context"

// Identity is the verified caller of a request.
type Identity struct {
	// Subject is the provider's stable identifier for the user.
	Subject string

	// Email is the address ownership checks compare against.
	Email string
}

// Verifier checks a bearer token with an identity provider.
type Verifier interface {
	// Verify returns the identity the token was issued for. Errors are one of
	// ErrInvalidToken, ErrExpiredToken, ErrTokenNotYetValid or ErrMissingEmail,
	// possibly wrapped.
	Verify(ctx context.Context, token string) (Identity, error)
}
