// Package memstore provides in-process implementations of the store
// interfaces. It backs local development (database.driver=memory) and the
// handler and service tests, applying the same filter and sort rules as the
// MongoDB and Firestore backends.
package memstore
