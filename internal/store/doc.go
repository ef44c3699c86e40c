// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying document store from the
// application's core logic, allowing the authorization and query rules to
// remain independent of whether foods live in MongoDB, Firestore, or memory.
package store
