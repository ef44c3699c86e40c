package mongodb

import (
	"fmt"

	"github.com/phrazzld/foodshare-api/internal/domain"
	"github.com/phrazzld/foodshare-api/internal/store"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// parseID converts a hex identifier to an ObjectID.
func parseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("%w: %q", store.ErrInvalidID, id)
	}
	return oid, nil
}

// foodFilter builds the filter document for q.
func foodFilter(q store.FoodQuery) bson.D {
	filter := bson.D{}
	if q.Email != nil {
		filter = append(filter, bson.E{Key: domain.FieldEmail, Value: *q.Email})
	}
	if !q.From.IsZero() {
		filter = append(filter, bson.E{
			Key:   domain.FieldDate,
			Value: bson.D{{Key: "$gte", Value: q.From}},
		})
	}
	return filter
}

// foodSort builds the sort document for q, nil for natural order.
func foodSort(q store.FoodQuery) bson.D {
	switch q.Sort {
	case store.SortDateAsc:
		return bson.D{{Key: domain.FieldDate, Value: 1}}
	case store.SortQuantityDesc:
		return bson.D{{Key: domain.FieldFoodQuantity, Value: -1}}
	default:
		return nil
	}
}

func foodFindOptions(q store.FoodQuery) *options.FindOptionsBuilder {
	opts := options.Find()
	if s := foodSort(q); s != nil {
		opts.SetSort(s)
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	return opts
}

// setPatch builds a $set update from patch, never touching _id.
func setPatch(patch domain.Document) bson.D {
	return bson.D{{Key: "$set", Value: bson.M(patch.Without(domain.FieldID))}}
}
