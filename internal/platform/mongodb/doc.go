// Package mongodb provides MongoDB implementations of the store interfaces
// defined in the internal/store package. It handles connecting with the
// Stable API, translating store.FoodQuery into filter and sort documents, and
// mapping BSON values (ObjectIDs, datetimes) to the plain Go values the rest
// of the service works with.
package mongodb
