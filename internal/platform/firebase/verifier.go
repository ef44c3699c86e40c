package firebase

import (
	"context"
	"fmt"
	"log/slog"

	fb "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/phrazzld/foodshare-api/internal/platform/logger"
	"github.com/phrazzld/foodshare-api/internal/service/auth"
)

// idTokenVerifier is the part of *fbauth.Client the verifier depends on.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// Verifier implements auth.Verifier with Firebase ID tokens.
type Verifier struct {
	client idTokenVerifier
	logger *slog.Logger
}

var _ auth.Verifier = (*Verifier)(nil)

// NewVerifier creates a Verifier using app's auth client.
func NewVerifier(ctx context.Context, app *fb.App, logger *slog.Logger) (*Verifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}
	return newVerifier(client, logger), nil
}

func newVerifier(client idTokenVerifier, logger *slog.Logger) *Verifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Verifier{
		client: client,
		logger: logger.With(slog.String("component", "firebase_verifier")),
	}
}

// Verify implements auth.Verifier.
func (v *Verifier) Verify(ctx context.Context, token string) (auth.Identity, error) {
	log := logger.FromContextOrDefault(ctx, v.logger)
	if token == "" {
		return auth.Identity{}, auth.ErrMissingToken
	}

	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		log.Debug("firebase token verification failed", "error", err)
		if fbauth.IsIDTokenExpired(err) {
			return auth.Identity{}, auth.ErrExpiredToken
		}
		return auth.Identity{}, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}

	email, _ := decoded.Claims["email"].(string)
	if email == "" {
		log.Debug("firebase token has no email claim", "uid", decoded.UID)
		return auth.Identity{}, auth.ErrMissingEmail
	}

	return auth.Identity{Subject: decoded.UID, Email: email}, nil
}
