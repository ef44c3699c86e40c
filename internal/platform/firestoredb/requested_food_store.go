package firestoredb

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	"github.com/phrazzld/foodshare-api/internal/domain"
	"github.com/phrazzld/foodshare-api/internal/store"
)

// FirestoreRequestedFoodStore implements store.RequestedFoodStore over the
// requestedFoods collection.
type FirestoreRequestedFoodStore struct {
	coll   *firestore.CollectionRef
	logger *slog.Logger
}

var _ store.RequestedFoodStore = (*FirestoreRequestedFoodStore)(nil)

// NewFirestoreRequestedFoodStore creates a RequestedFoodStore backed by client.
func NewFirestoreRequestedFoodStore(client *firestore.Client, logger *slog.Logger) *FirestoreRequestedFoodStore {
	if client == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("client cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &FirestoreRequestedFoodStore{
		coll:   client.Collection(store.RequestedFoodsCollection),
		logger: logger.With(slog.String("component", "requested_food_store")),
	}
}

// FindByRequester implements store.RequestedFoodStore.FindByRequester
func (s *FirestoreRequestedFoodStore) FindByRequester(ctx context.Context, email string) ([]domain.RequestedFood, error) {
	snaps, err := s.coll.Where(domain.FieldRequestedUserEmail, "==", email).Documents(ctx).GetAll()
	if err != nil {
		return nil, store.NewStoreError(store.RequestedFoodsCollection, "find", "failed to query requested foods", err)
	}

	out := make([]domain.RequestedFood, 0, len(snaps))
	for _, snap := range snaps {
		out = append(out, domain.RequestedFood(toDocument(snap)))
	}
	return out, nil
}

// Insert implements store.RequestedFoodStore.Insert
func (s *FirestoreRequestedFoodStore) Insert(ctx context.Context, rf domain.RequestedFood) (*store.InsertResult, error) {
	ref, _, err := s.coll.Add(ctx, map[string]any(domain.Document(rf).Without(domain.FieldID)))
	if err != nil {
		return nil, store.NewStoreError(store.RequestedFoodsCollection, "insert", "failed to insert requested food", err)
	}

	return &store.InsertResult{Acknowledged: true, InsertedID: ref.ID}, nil
}
