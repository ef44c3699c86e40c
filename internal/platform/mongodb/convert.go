package mongodb

import (
	"github.com/phrazzld/foodshare-api/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// fromBSON converts a decoded document to plain Go values: ObjectIDs become
// hex strings and datetimes become UTC time.Time, recursively.
func fromBSON(m bson.M) domain.Document {
	out := make(domain.Document, len(m))
	for k, v := range m {
		out[k] = fromBSONValue(v)
	}
	return out
}

func fromBSONValue(v any) any {
	switch val := v.(type) {
	case bson.ObjectID:
		return val.Hex()
	case bson.DateTime:
		return val.Time().UTC()
	case bson.M:
		return map[string]any(fromBSON(val))
	case bson.D:
		m := make(bson.M, len(val))
		for _, e := range val {
			m[e.Key] = e.Value
		}
		return map[string]any(fromBSON(m))
	case bson.A:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = fromBSONValue(item)
		}
		return out
	default:
		return v
	}
}

// insertedID renders the identifier the driver reports for an insert.
func insertedID(id any) string {
	if oid, ok := id.(bson.ObjectID); ok {
		return oid.Hex()
	}
	if s, ok := id.(string); ok {
		return s
	}
	return ""
}
