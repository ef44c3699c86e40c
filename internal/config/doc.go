// Package config handles configuration loading, parsing, and validation
// from various sources (a .env file, an optional config.yaml, and FOODSHARE_
// prefixed environment variables). It provides type-safe access to the
// settings needed by the server, the document store, and the identity
// provider while keeping configuration details separate from business logic.
package config
