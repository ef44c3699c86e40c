package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/foodshare-api/internal/config"
	"github.com/phrazzld/foodshare-api/internal/platform/logger"
)

// JWTVerifier verifies HMAC-SHA256 tokens carrying an email claim. It is the
// identity provider for deployments that do not use Firebase.
type JWTVerifier struct {
	signingKey []byte
	timeFunc   func() time.Time // Injectable for testing
	clockSkew  time.Duration    // Allowed time difference for validation to handle clock drift
}

// emailClaims defines the structure of JWT claims we use
type emailClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Ensure JWTVerifier implements Verifier interface
var _ Verifier = (*JWTVerifier)(nil)

// NewJWTVerifier creates a verifier using HMAC-SHA signing.
func NewJWTVerifier(cfg config.AuthConfig) (*JWTVerifier, error) {
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}

	return &JWTVerifier{
		signingKey: []byte(cfg.JWTSecret),
		timeFunc:   time.Now,
		clockSkew:  2 * time.Minute,
	}, nil
}

// Sign issues a token for id that expires after lifetime.
func (v *JWTVerifier) Sign(ctx context.Context, id Identity, lifetime time.Duration) (string, error) {
	now := v.timeFunc()

	claims := emailClaims{
		Email: id.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
			ID:        uuid.New().String(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.signingKey)
	if err != nil {
		logger.FromContext(ctx).Error("failed to sign JWT",
			"error", err,
			"signing_method", jwt.SigningMethodHS256.Name)
		return "", fmt.Errorf("failed to sign token with HMAC-SHA256: %w", err)
	}
	return signed, nil
}

// Verify implements Verifier.
func (v *JWTVerifier) Verify(ctx context.Context, tokenString string) (Identity, error) {
	log := logger.FromContext(ctx)
	if tokenString == "" {
		return Identity{}, ErrMissingToken
	}

	now := v.timeFunc()
	token, err := jwt.ParseWithClaims(
		tokenString,
		&emailClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return v.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(v.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			log.Debug("token validation failed: token expired", "error", err)
			return Identity{}, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			log.Debug("token validation failed: token not yet valid", "error", err)
			return Identity{}, ErrTokenNotYetValid
		default:
			log.Debug("token validation failed",
				"error", err,
				"error_type", fmt.Sprintf("%T", err))
			return Identity{}, ErrInvalidToken
		}
	}

	claims, ok := token.Claims.(*emailClaims)
	if !ok || !token.Valid {
		log.Debug("token validation failed: invalid claims")
		return Identity{}, ErrInvalidToken
	}
	if claims.Email == "" {
		log.Debug("token validation failed: no email claim", "subject", claims.Subject)
		return Identity{}, ErrMissingEmail
	}

	return Identity{Subject: claims.Subject, Email: claims.Email}, nil
}
