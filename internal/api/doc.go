// Package api handles incoming HTTP requests, request decoding, and response
// formatting. Handlers for authenticated routes take the verified caller as
// a parameter (see WithIdentity) and pass it to the services, which own the
// ownership rules.
package api
