// Package firestoredb implements the store interfaces on Cloud Firestore.
//
// Documents keep the same shape they have in MongoDB: the Firestore document
// ID is surfaced as _id and every other attribute is stored as a field.
// Orderings Firestore cannot express together with the date filter are
// applied in memory after the query.
package firestoredb
