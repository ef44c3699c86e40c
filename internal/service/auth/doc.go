// Package auth defines the caller identity and the Verifier contract that
// identity providers implement, together with an HMAC JWT verifier.
//
// Handlers never inspect tokens themselves. The authentication middleware
// calls a Verifier and stores the resulting Identity on the request context.
package auth
