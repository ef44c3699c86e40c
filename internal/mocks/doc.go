// Package mocks provides centralized mock implementations for testing.
//
// Store mocks embed testify's mock.Mock so tests can assert that a request
// never reached the store. MockVerifier follows the function-field style:
//
//	verifier := &mocks.MockVerifier{
//	    VerifyFn: func(ctx context.Context, token string) (auth.Identity, error) {
//	        return auth.Identity{Email: "alice@example.com"}, nil
//	    },
//	}
package mocks
