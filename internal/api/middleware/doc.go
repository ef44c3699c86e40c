// Package middleware contains the HTTP middleware that runs ahead of the
// handlers: bearer authentication, request tracing and CORS.
package middleware
