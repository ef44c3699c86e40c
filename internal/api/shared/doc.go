// Package shared holds the request decoding, response writing and trace ID
// helpers used by both the handlers and the middleware.
package shared
