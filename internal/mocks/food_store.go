package mocks

import (
	"context"

	"github.com/phrazzld/foodshare-api/internal/domain"
	"github.com/phrazzld/foodshare-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockFoodStore is a mock of store.FoodStore for use with testify/mock
type TestifyMockFoodStore struct {
	mock.Mock
}

var _ store.FoodStore = (*TestifyMockFoodStore)(nil)

// Find is a mock implementation of store.FoodStore.Find
func (m *TestifyMockFoodStore) Find(ctx context.Context, q store.FoodQuery) ([]domain.Food, error) {
	args := m.Called(ctx, q)
	if foods, ok := args.Get(0).([]domain.Food); ok {
		return foods, args.Error(1)
	}
	return nil, args.Error(1)
}

// FindByID is a mock implementation of store.FoodStore.FindByID
func (m *TestifyMockFoodStore) FindByID(ctx context.Context, id string) (domain.Food, error) {
	args := m.Called(ctx, id)
	if food, ok := args.Get(0).(domain.Food); ok {
		return food, args.Error(1)
	}
	return nil, args.Error(1)
}

// Insert is a mock implementation of store.FoodStore.Insert
func (m *TestifyMockFoodStore) Insert(ctx context.Context, food domain.Food) (*store.InsertResult, error) {
	args := m.Called(ctx, food)
	if res, ok := args.Get(0).(*store.InsertResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

// UpdateByID is a mock implementation of store.FoodStore.UpdateByID
func (m *TestifyMockFoodStore) UpdateByID(
	ctx context.Context,
	id string,
	patch domain.Food,
) (*store.UpdateResult, error) {
	args := m.Called(ctx, id, patch)
	if res, ok := args.Get(0).(*store.UpdateResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

// DeleteOwned is a mock implementation of store.FoodStore.DeleteOwned
func (m *TestifyMockFoodStore) DeleteOwned(
	ctx context.Context,
	id, ownerEmail string,
) (*store.DeleteResult, error) {
	args := m.Called(ctx, id, ownerEmail)
	if res, ok := args.Get(0).(*store.DeleteResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}
