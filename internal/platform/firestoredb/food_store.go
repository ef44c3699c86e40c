package firestoredb

import (
	"context"
	"errors"
	"log/slog"
	"reflect"

	"cloud.google.com/go/firestore"
	"github.com/phrazzld/foodshare-api/internal/domain"
	"github.com/phrazzld/foodshare-api/internal/platform/logger"
	"github.com/phrazzld/foodshare-api/internal/store"
)

// errNoMatch ends a transaction that found nothing to change.
var errNoMatch = errors.New("no matching document")

// FirestoreFoodStore implements store.FoodStore over the foods collection.
type FirestoreFoodStore struct {
	coll   *firestore.CollectionRef
	client *firestore.Client
	logger *slog.Logger
}

var _ store.FoodStore = (*FirestoreFoodStore)(nil)

// NewFirestoreFoodStore creates a FoodStore backed by client.
// If logger is nil, a default logger will be used.
func NewFirestoreFoodStore(client *firestore.Client, logger *slog.Logger) *FirestoreFoodStore {
	if client == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("client cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &FirestoreFoodStore{
		coll:   client.Collection(store.FoodsCollection),
		client: client,
		logger: logger.With(slog.String("component", "food_store")),
	}
}

// Find implements store.FoodStore.Find
func (s *FirestoreFoodStore) Find(ctx context.Context, q store.FoodQuery) ([]domain.Food, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, sortLocally := foodQuery(s.coll, q)
	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, store.NewStoreError(store.FoodsCollection, "find", "failed to query foods", err)
	}

	foods := make([]domain.Food, 0, len(snaps))
	for _, snap := range snaps {
		foods = append(foods, domain.Food(toDocument(snap)))
	}

	if sortLocally {
		sortByQuantityDesc(foods)
		if q.Limit > 0 && int64(len(foods)) > q.Limit {
			foods = foods[:q.Limit]
		}
	}

	log.Debug("foods listed", slog.Int("count", len(foods)), slog.Bool("sorted_locally", sortLocally))
	return foods, nil
}

// FindByID implements store.FoodStore.FindByID
func (s *FirestoreFoodStore) FindByID(ctx context.Context, id string) (domain.Food, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	snap, err := s.coll.Doc(id).Get(ctx)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, store.NewStoreError(store.FoodsCollection, "get", "failed to fetch food", err)
	}

	return domain.Food(toDocument(snap)), nil
}

// Insert implements store.FoodStore.Insert
func (s *FirestoreFoodStore) Insert(ctx context.Context, food domain.Food) (*store.InsertResult, error) {
	ref, _, err := s.coll.Add(ctx, map[string]any(domain.Document(food).Without(domain.FieldID)))
	if err != nil {
		return nil, store.NewStoreError(store.FoodsCollection, "insert", "failed to insert food", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("food inserted", slog.String("food_id", ref.ID))
	return &store.InsertResult{Acknowledged: true, InsertedID: ref.ID}, nil
}

// UpdateByID implements store.FoodStore.UpdateByID
func (s *FirestoreFoodStore) UpdateByID(ctx context.Context, id string, patch domain.Food) (*store.UpdateResult, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	ref := s.coll.Doc(id)
	changes := updates(domain.Document(patch))

	result := &store.UpdateResult{Acknowledged: true}
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		*result = store.UpdateResult{Acknowledged: true}

		snap, err := tx.Get(ref)
		if isNotFound(err) {
			return errNoMatch
		}
		if err != nil {
			return err
		}
		result.MatchedCount = 1

		current := snap.Data()
		changed := false
		for _, u := range changes {
			if old, ok := current[u.FieldPath[0]]; !ok || !reflect.DeepEqual(old, u.Value) {
				changed = true
				break
			}
		}
		if !changed {
			return nil
		}

		result.ModifiedCount = 1
		return tx.Update(ref, changes)
	})
	if err != nil && !errors.Is(err, errNoMatch) {
		return nil, store.NewStoreError(store.FoodsCollection, "update", "failed to update food", err)
	}

	return result, nil
}

// DeleteOwned implements store.FoodStore.DeleteOwned
func (s *FirestoreFoodStore) DeleteOwned(ctx context.Context, id, ownerEmail string) (*store.DeleteResult, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	ref := s.coll.Doc(id)

	result := &store.DeleteResult{Acknowledged: true}
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		result.DeletedCount = 0

		snap, err := tx.Get(ref)
		if isNotFound(err) {
			return errNoMatch
		}
		if err != nil {
			return err
		}
		if domain.Document(snap.Data()).String(domain.FieldEmail) != ownerEmail {
			return errNoMatch
		}

		result.DeletedCount = 1
		return tx.Delete(ref, firestore.Exists)
	})
	if errors.Is(err, errNoMatch) {
		return &store.DeleteResult{Acknowledged: true}, nil
	}
	if err != nil {
		return nil, store.NewStoreError(store.FoodsCollection, "delete", "failed to delete food", err)
	}

	return result, nil
}
