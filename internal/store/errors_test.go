package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreError(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name     string
		err      *StoreError
		expected string
	}{
		{
			name:     "with cause",
			err:      NewStoreError(FoodsCollection, "insert", "failed to insert food", cause),
			expected: "insert operation on foods failed: failed to insert food: connection reset",
		},
		{
			name:     "without cause",
			err:      NewStoreError(RequestedFoodsCollection, "find", "cursor closed", nil),
			expected: "find operation on requestedFoods failed: cursor closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.ErrorIs(t, tt.err, ErrStoreFailure)
		})
	}
}

func TestStoreErrorUnwrap(t *testing.T) {
	cause := errors.New("timeout")
	wrapped := fmt.Errorf("list foods: %w", NewStoreError(FoodsCollection, "find", "query failed", cause))

	assert.ErrorIs(t, wrapped, cause)
	assert.ErrorIs(t, wrapped, ErrStoreFailure)
	assert.NotErrorIs(t, wrapped, ErrInvalidID)

	var storeErr *StoreError
	assert.ErrorAs(t, wrapped, &storeErr)
	assert.Equal(t, "find", storeErr.Operation)
}
