package domain

import (
	"encoding/json"
	"maps"
	"math"
)

// Attribute names the service interprets. Every other attribute is passed
// through to the store unchanged.
const (
	FieldID                 = "_id"
	FieldEmail              = "email"
	FieldDate               = "date"
	FieldFoodQuantity       = "foodQuantity"
	FieldRequestedUserEmail = "requestedUserEmail"
)

// Document is a schema-flexible record as stored in a collection.
type Document map[string]any

// String returns the attribute as a string, or "" when absent or not a string.
func (d Document) String(key string) string {
	s, _ := d[key].(string)
	return s
}

// ID returns the store-assigned identifier rendered as a string.
func (d Document) ID() string {
	return d.String(FieldID)
}

// Clone returns a shallow copy of d.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	return maps.Clone(d)
}

// Without returns a shallow copy of d lacking keys.
func (d Document) Without(keys ...string) Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// Number converts the numeric representations produced by JSON decoding and
// the store drivers to float64.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n)
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
