package mongodb

import (
	"context"
	"log/slog"

	"github.com/phrazzld/foodshare-api/internal/domain"
	"github.com/phrazzld/foodshare-api/internal/store"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// MongoRequestedFoodStore implements store.RequestedFoodStore over the
// requestedFoods collection.
type MongoRequestedFoodStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

var _ store.RequestedFoodStore = (*MongoRequestedFoodStore)(nil)

// NewMongoRequestedFoodStore creates a RequestedFoodStore over db.
func NewMongoRequestedFoodStore(db *mongo.Database, logger *slog.Logger) *MongoRequestedFoodStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &MongoRequestedFoodStore{
		coll:   db.Collection(store.RequestedFoodsCollection),
		logger: logger.With(slog.String("component", "requested_food_store")),
	}
}

// FindByRequester implements store.RequestedFoodStore.FindByRequester
func (s *MongoRequestedFoodStore) FindByRequester(ctx context.Context, email string) ([]domain.RequestedFood, error) {
	cursor, err := s.coll.Find(ctx, bson.D{{Key: domain.FieldRequestedUserEmail, Value: email}})
	if err != nil {
		return nil, store.NewStoreError(store.RequestedFoodsCollection, "find", "failed to query requested foods", err)
	}

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, store.NewStoreError(store.RequestedFoodsCollection, "find", "failed to read cursor", err)
	}

	out := make([]domain.RequestedFood, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.RequestedFood(fromBSON(d)))
	}
	return out, nil
}

// Insert implements store.RequestedFoodStore.Insert
func (s *MongoRequestedFoodStore) Insert(ctx context.Context, rf domain.RequestedFood) (*store.InsertResult, error) {
	res, err := s.coll.InsertOne(ctx, bson.M(domain.Document(rf).Without(domain.FieldID)))
	if err != nil {
		return nil, store.NewStoreError(store.RequestedFoodsCollection, "insert", "failed to insert requested food", err)
	}

	return &store.InsertResult{Acknowledged: res.Acknowledged, InsertedID: insertedID(res.InsertedID)}, nil
}
