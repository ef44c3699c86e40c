package mocks

import (
	"context"

	"github.com/phrazzld/foodshare-api/internal/service/auth"
)

// MockVerifier implements auth.Verifier for testing
type MockVerifier struct {
	// VerifyFn allows test cases to mock the Verify behavior
	VerifyFn func(ctx context.Context, token string) (auth.Identity, error)

	// Default values used when VerifyFn isn't defined
	Identity auth.Identity
	Err      error

	// Calls counts Verify invocations
	Calls int
}

var _ auth.Verifier = (*MockVerifier)(nil)

// Verify implements the auth.Verifier interface
func (m *MockVerifier) Verify(ctx context.Context, token string) (auth.Identity, error) {
	m.Calls++
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, token)
	}
	return m.Identity, m.Err
}
