package mongodb

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/foodshare-api/internal/domain"
	"github.com/phrazzld/foodshare-api/internal/platform/logger"
	"github.com/phrazzld/foodshare-api/internal/store"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// MongoFoodStore implements the store.FoodStore interface
// using the foods collection of a MongoDB database.
type MongoFoodStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// Ensure MongoFoodStore implements store.FoodStore interface
var _ store.FoodStore = (*MongoFoodStore)(nil)

// NewMongoFoodStore creates a FoodStore over db's foods collection.
// If logger is nil, a default logger will be used.
func NewMongoFoodStore(db *mongo.Database, logger *slog.Logger) *MongoFoodStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &MongoFoodStore{
		coll:   db.Collection(store.FoodsCollection),
		logger: logger.With(slog.String("component", "food_store")),
	}
}

// Find implements store.FoodStore.Find
func (s *MongoFoodStore) Find(ctx context.Context, q store.FoodQuery) ([]domain.Food, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cursor, err := s.coll.Find(ctx, foodFilter(q), foodFindOptions(q))
	if err != nil {
		return nil, store.NewStoreError(store.FoodsCollection, "find", "failed to query foods", err)
	}

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, store.NewStoreError(store.FoodsCollection, "find", "failed to read cursor", err)
	}

	foods := make([]domain.Food, 0, len(docs))
	for _, d := range docs {
		foods = append(foods, domain.Food(fromBSON(d)))
	}

	log.Debug("foods listed", slog.Int("count", len(foods)), slog.Int("sort", int(q.Sort)))
	return foods, nil
}

// FindByID implements store.FoodStore.FindByID
func (s *MongoFoodStore) FindByID(ctx context.Context, id string) (domain.Food, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var doc bson.M
	err = s.coll.FindOne(ctx, bson.D{{Key: domain.FieldID, Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, store.NewStoreError(store.FoodsCollection, "findOne", "failed to fetch food", err)
	}

	return domain.Food(fromBSON(doc)), nil
}

// Insert implements store.FoodStore.Insert
func (s *MongoFoodStore) Insert(ctx context.Context, food domain.Food) (*store.InsertResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	res, err := s.coll.InsertOne(ctx, bson.M(domain.Document(food).Without(domain.FieldID)))
	if err != nil {
		return nil, store.NewStoreError(store.FoodsCollection, "insert", "failed to insert food", err)
	}

	id := insertedID(res.InsertedID)
	log.Debug("food inserted", slog.String("food_id", id))
	return &store.InsertResult{Acknowledged: res.Acknowledged, InsertedID: id}, nil
}

// UpdateByID implements store.FoodStore.UpdateByID
func (s *MongoFoodStore) UpdateByID(ctx context.Context, id string, patch domain.Food) (*store.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	filter := bson.D{{Key: domain.FieldID, Value: oid}}

	fields := domain.Document(patch).Without(domain.FieldID)
	if len(fields) == 0 {
		// An empty $set is rejected by the server; report the match only.
		n, err := s.coll.CountDocuments(ctx, filter)
		if err != nil {
			return nil, store.NewStoreError(store.FoodsCollection, "update", "failed to count food", err)
		}
		return &store.UpdateResult{Acknowledged: true, MatchedCount: n}, nil
	}

	res, err := s.coll.UpdateOne(ctx, filter, setPatch(fields))
	if err != nil {
		return nil, store.NewStoreError(store.FoodsCollection, "update", "failed to update food", err)
	}

	out := &store.UpdateResult{
		Acknowledged:  res.Acknowledged,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if res.UpsertedID != nil {
		upserted := insertedID(res.UpsertedID)
		out.UpsertedID = &upserted
	}
	return out, nil
}

// DeleteOwned implements store.FoodStore.DeleteOwned
func (s *MongoFoodStore) DeleteOwned(ctx context.Context, id, ownerEmail string) (*store.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	res, err := s.coll.DeleteOne(ctx, bson.D{
		{Key: domain.FieldID, Value: oid},
		{Key: domain.FieldEmail, Value: ownerEmail},
	})
	if err != nil {
		return nil, store.NewStoreError(store.FoodsCollection, "delete", "failed to delete food", err)
	}

	return &store.DeleteResult{Acknowledged: res.Acknowledged, DeletedCount: res.DeletedCount}, nil
}
