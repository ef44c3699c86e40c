package memstore

import (
	"context"
	"math"
	"reflect"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/foodshare-api/internal/domain"
	"github.com/phrazzld/foodshare-api/internal/store"
)

// collection is an insertion-ordered set of documents guarded by a mutex.
type collection struct {
	mu    sync.RWMutex
	order []string
	docs  map[string]domain.Document
}

func newCollection() *collection {
	return &collection{docs: make(map[string]domain.Document)}
}

func (c *collection) insert(doc domain.Document) string {
	id := uuid.NewString()
	stored := doc.Without(domain.FieldID)
	stored[domain.FieldID] = id

	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs[id] = stored
	c.order = append(c.order, id)
	return id
}

// snapshot returns copies of every document in insertion order.
func (c *collection) snapshot() []domain.Document {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Document, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.docs[id].Clone())
	}
	return out
}

func (c *collection) get(id string) domain.Document {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.docs[id].Clone()
}

func (c *collection) remove(id string) {
	delete(c.docs, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// FoodStore is a store.FoodStore kept in memory.
type FoodStore struct {
	foods *collection
}

var _ store.FoodStore = (*FoodStore)(nil)

// NewFoodStore returns an empty FoodStore.
func NewFoodStore() *FoodStore {
	return &FoodStore{foods: newCollection()}
}

// Find implements store.FoodStore.
func (s *FoodStore) Find(ctx context.Context, q store.FoodQuery) ([]domain.Food, error) {
	if err := ctx.Err(); err != nil {
		return nil, store.NewStoreError(store.FoodsCollection, "find", "context done", err)
	}

	out := make([]domain.Food, 0)
	for _, doc := range s.foods.snapshot() {
		f := domain.Food(doc)
		if q.Email != nil {
			if email, ok := f[domain.FieldEmail].(string); !ok || email != *q.Email {
				continue
			}
		}
		if !q.From.IsZero() {
			if d, ok := f.Date(); !ok || d.Before(q.From) {
				continue
			}
		}
		out = append(out, f)
	}

	switch q.Sort {
	case store.SortDateAsc:
		sort.SliceStable(out, func(i, j int) bool {
			di, _ := out[i].Date()
			dj, _ := out[j].Date()
			return di.Before(dj)
		})
	case store.SortQuantityDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return quantityOrMin(out[i]) > quantityOrMin(out[j])
		})
	}

	if q.Limit > 0 && int64(len(out)) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

// Documents without a numeric quantity sort last in descending order, as
// missing fields do in MongoDB.
func quantityOrMin(f domain.Food) float64 {
	if q, ok := f.Quantity(); ok {
		return q
	}
	return math.Inf(-1)
}

// FindByID implements store.FoodStore.
func (s *FoodStore) FindByID(ctx context.Context, id string) (domain.Food, error) {
	doc := s.foods.get(id)
	if doc == nil {
		return nil, nil
	}
	return domain.Food(doc), nil
}

// Insert implements store.FoodStore.
func (s *FoodStore) Insert(ctx context.Context, food domain.Food) (*store.InsertResult, error) {
	id := s.foods.insert(domain.Document(food))
	return &store.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// UpdateByID implements store.FoodStore.
func (s *FoodStore) UpdateByID(ctx context.Context, id string, patch domain.Food) (*store.UpdateResult, error) {
	s.foods.mu.Lock()
	defer s.foods.mu.Unlock()

	res := &store.UpdateResult{Acknowledged: true}
	doc, ok := s.foods.docs[id]
	if !ok {
		return res, nil
	}
	res.MatchedCount = 1

	for k, v := range patch {
		if k == domain.FieldID {
			continue
		}
		if old, exists := doc[k]; !exists || !reflect.DeepEqual(old, v) {
			doc[k] = v
			res.ModifiedCount = 1
		}
	}
	return res, nil
}

// DeleteOwned implements store.FoodStore.
func (s *FoodStore) DeleteOwned(ctx context.Context, id, ownerEmail string) (*store.DeleteResult, error) {
	s.foods.mu.Lock()
	defer s.foods.mu.Unlock()

	res := &store.DeleteResult{Acknowledged: true}
	doc, ok := s.foods.docs[id]
	if !ok || doc.String(domain.FieldEmail) != ownerEmail {
		return res, nil
	}
	s.foods.remove(id)
	res.DeletedCount = 1
	return res, nil
}

// RequestedFoodStore is a store.RequestedFoodStore kept in memory.
type RequestedFoodStore struct {
	requests *collection
}

var _ store.RequestedFoodStore = (*RequestedFoodStore)(nil)

// NewRequestedFoodStore returns an empty RequestedFoodStore.
func NewRequestedFoodStore() *RequestedFoodStore {
	return &RequestedFoodStore{requests: newCollection()}
}

// FindByRequester implements store.RequestedFoodStore.
func (s *RequestedFoodStore) FindByRequester(ctx context.Context, email string) ([]domain.RequestedFood, error) {
	out := make([]domain.RequestedFood, 0)
	for _, doc := range s.requests.snapshot() {
		if v, ok := doc[domain.FieldRequestedUserEmail].(string); ok && v == email {
			out = append(out, domain.RequestedFood(doc))
		}
	}
	return out, nil
}

// Insert implements store.RequestedFoodStore.
func (s *RequestedFoodStore) Insert(ctx context.Context, rf domain.RequestedFood) (*store.InsertResult, error) {
	id := s.requests.insert(domain.Document(rf))
	return &store.InsertResult{Acknowledged: true, InsertedID: id}, nil
}
