package mocks

import (
	"context"

	"github.com/phrazzld/foodshare-api/internal/domain"
	"github.com/phrazzld/foodshare-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockRequestedFoodStore is a mock of store.RequestedFoodStore for use with testify/mock
type TestifyMockRequestedFoodStore struct {
	mock.Mock
}

var _ store.RequestedFoodStore = (*TestifyMockRequestedFoodStore)(nil)

// FindByRequester is a mock implementation of store.RequestedFoodStore.FindByRequester
func (m *TestifyMockRequestedFoodStore) FindByRequester(
	ctx context.Context,
	email string,
) ([]domain.RequestedFood, error) {
	args := m.Called(ctx, email)
	if out, ok := args.Get(0).([]domain.RequestedFood); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

// Insert is a mock implementation of store.RequestedFoodStore.Insert
func (m *TestifyMockRequestedFoodStore) Insert(
	ctx context.Context,
	rf domain.RequestedFood,
) (*store.InsertResult, error) {
	args := m.Called(ctx, rf)
	if res, ok := args.Get(0).(*store.InsertResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}
