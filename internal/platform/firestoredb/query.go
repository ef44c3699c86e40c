package firestoredb

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/phrazzld/foodshare-api/internal/domain"
	"github.com/phrazzld/foodshare-api/internal/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// checkID rejects identifiers Firestore cannot use as a document ID.
func checkID(id string) error {
	if id == "" || strings.Contains(id, "/") || id == "." || id == ".." ||
		(strings.HasPrefix(id, "__") && strings.HasSuffix(id, "__")) {
		return fmt.Errorf("%w: %q", store.ErrInvalidID, id)
	}
	return nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// foodQuery translates q into a Firestore query. The returned flag reports
// whether the caller still has to sort by quantity and apply the limit.
func foodQuery(coll *firestore.CollectionRef, q store.FoodQuery) (firestore.Query, bool) {
	query := coll.Query
	if q.Email != nil {
		query = query.Where(domain.FieldEmail, "==", *q.Email)
	}
	if !q.From.IsZero() {
		query = query.Where(domain.FieldDate, ">=", q.From)
	}

	switch q.Sort {
	case store.SortDateAsc:
		query = query.OrderBy(domain.FieldDate, firestore.Asc)
	case store.SortQuantityDesc:
		// An inequality on date forces date as the first ordering.
		return query, true
	}

	if q.Limit > 0 {
		query = query.Limit(int(q.Limit))
	}
	return query, false
}

// sortByQuantityDesc orders foods by foodQuantity, largest first. Foods
// without a numeric quantity sort last.
func sortByQuantityDesc(foods []domain.Food) {
	sort.SliceStable(foods, func(i, j int) bool {
		return quantity(foods[i]) > quantity(foods[j])
	})
}

func quantity(f domain.Food) float64 {
	if q, ok := f.Quantity(); ok {
		return q
	}
	return math.Inf(-1)
}

// toDocument converts a snapshot to a Document carrying its ID as _id.
func toDocument(snap *firestore.DocumentSnapshot) domain.Document {
	doc := domain.Document(snap.Data())
	if doc == nil {
		doc = domain.Document{}
	}
	doc[domain.FieldID] = snap.Ref.ID
	return doc
}

// updates builds one top-level field update per attribute of patch so nested
// values are replaced rather than merged.
func updates(patch domain.Document) []firestore.Update {
	keys := make([]string, 0, len(patch))
	for k := range patch {
		if k != domain.FieldID {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	out := make([]firestore.Update, 0, len(keys))
	for _, k := range keys {
		out = append(out, firestore.Update{FieldPath: firestore.FieldPath{k}, Value: patch[k]})
	}
	return out
}
