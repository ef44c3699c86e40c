package store

import (
	"context"
	"time"

	"github.com/phrazzld/foodshare-api/internal/domain"
)

// Collection names shared by every backend.
const (
	FoodsCollection          = "foods"
	RequestedFoodsCollection = "requestedFoods"
)

// FoodSort selects the ordering of a food listing.
type FoodSort int

const (
	// SortNone keeps the store's natural order.
	SortNone FoodSort = iota
	// SortDateAsc orders by date, earliest first.
	SortDateAsc
	// SortQuantityDesc orders by foodQuantity, largest first.
	SortQuantityDesc
)

// FoodQuery describes a filtered, sorted listing of foods.
type FoodQuery struct {
	// Email, when non-nil, keeps only foods whose email equals it.
	Email *string
	// From, when non-zero, keeps only foods whose date is at or after it.
	// Foods without a date never match.
	From time.Time
	Sort FoodSort
	// Limit caps the number of results; 0 means unbounded.
	Limit int64
}

// FoodStore defines the interface for food data persistence.
type FoodStore interface {
	// Find returns the foods matching q, never nil.
	Find(ctx context.Context, q FoodQuery) ([]domain.Food, error)

	// FindByID returns the food with the given identifier, or nil with no
	// error when none exists. Returns ErrInvalidID for malformed identifiers.
	FindByID(ctx context.Context, id string) (domain.Food, error)

	// Insert stores a new food and reports the generated identifier.
	Insert(ctx context.Context, food domain.Food) (*InsertResult, error)

	// UpdateByID sets every attribute of patch on the identified food.
	// A missing document yields MatchedCount 0, not an error.
	UpdateByID(ctx context.Context, id string, patch domain.Food) (*UpdateResult, error)

	// DeleteOwned removes the identified food only if its email equals
	// ownerEmail. Anything else yields DeletedCount 0, not an error.
	DeleteOwned(ctx context.Context, id, ownerEmail string) (*DeleteResult, error)
}

// RequestedFoodStore defines the interface for requested-food persistence.
type RequestedFoodStore interface {
	// FindByRequester returns every claim whose requestedUserEmail equals email.
	FindByRequester(ctx context.Context, email string) ([]domain.RequestedFood, error)

	// Insert stores a new claim and reports the generated identifier.
	Insert(ctx context.Context, rf domain.RequestedFood) (*InsertResult, error)
}
