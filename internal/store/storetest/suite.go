// Package storetest holds the behavioral contract every store backend must
// satisfy, written once and run against each implementation.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/phrazzld/foodshare-api/internal/domain"
	"github.com/phrazzld/foodshare-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns empty stores for a single subtest.
type Factory func(t *testing.T) (store.FoodStore, store.RequestedFoodStore)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func insertFood(t *testing.T, s store.FoodStore, f domain.Food) string {
	t.Helper()

	res, err := s.Insert(context.Background(), f)
	require.NoError(t, err)
	require.True(t, res.Acknowledged)
	require.NotEmpty(t, res.InsertedID)
	return res.InsertedID
}

func quantities(foods []domain.Food) []float64 {
	out := make([]float64, 0, len(foods))
	for _, f := range foods {
		q, _ := f.Quantity()
		out = append(out, q)
	}
	return out
}

// Run executes the contract against stores produced by newStores.
func Run(t *testing.T, newStores Factory) {
	ctx := context.Background()

	t.Run("insert then find by id", func(t *testing.T) {
		foods, _ := newStores(t)

		id := insertFood(t, foods, domain.Food{
			"email":        "alice@example.com",
			"date":         date(2024, time.June, 1),
			"foodQuantity": float64(4),
			"foodName":     "Bread",
		})

		got, err := foods.FindByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, id, got.ID())
		assert.Equal(t, "alice@example.com", got.Email())
		assert.Equal(t, "Bread", got["foodName"])
		d, ok := got.Date()
		require.True(t, ok, "date should come back as a time.Time")
		assert.True(t, d.Equal(date(2024, time.June, 1)))
		q, _ := got.Quantity()
		assert.Equal(t, float64(4), q)
	})

	t.Run("find by id of deleted document is nil", func(t *testing.T) {
		foods, _ := newStores(t)

		id := insertFood(t, foods, domain.Food{"email": "alice@example.com"})
		_, err := foods.DeleteOwned(ctx, id, "alice@example.com")
		require.NoError(t, err)

		got, err := foods.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("find filters by email", func(t *testing.T) {
		foods, _ := newStores(t)

		insertFood(t, foods, domain.Food{"email": "alice@example.com", "foodName": "a"})
		insertFood(t, foods, domain.Food{"email": "bob@example.com", "foodName": "b"})
		insertFood(t, foods, domain.Food{"email": "alice@example.com", "foodName": "c"})

		alice := "alice@example.com"
		got, err := foods.Find(ctx, store.FoodQuery{Email: &alice})
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, f := range got {
			assert.Equal(t, alice, f.Email())
		}

		nobody := "nobody@example.com"
		got, err = foods.Find(ctx, store.FoodQuery{Email: &nobody})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("date sort keeps today or later ascending", func(t *testing.T) {
		foods, _ := newStores(t)

		insertFood(t, foods, domain.Food{"foodName": "late", "date": date(2024, time.September, 1)})
		insertFood(t, foods, domain.Food{"foodName": "old", "date": date(2024, time.January, 1)})
		insertFood(t, foods, domain.Food{"foodName": "soon", "date": date(2024, time.June, 1)})
		insertFood(t, foods, domain.Food{"foodName": "undated"})

		got, err := foods.Find(ctx, store.FoodQuery{From: date(2024, time.March, 1), Sort: store.SortDateAsc})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "soon", got[0]["foodName"])
		assert.Equal(t, "late", got[1]["foodName"])
	})

	t.Run("quantity sort descending with limit", func(t *testing.T) {
		foods, _ := newStores(t)

		for _, q := range []float64{5, 20, 1} {
			insertFood(t, foods, domain.Food{"foodQuantity": q, "date": date(2024, time.June, 1)})
		}

		got, err := foods.Find(ctx, store.FoodQuery{
			From:  date(2024, time.March, 1),
			Sort:  store.SortQuantityDesc,
			Limit: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, []float64{20, 5}, quantities(got))

		got, err = foods.Find(ctx, store.FoodQuery{From: date(2024, time.March, 1), Sort: store.SortQuantityDesc})
		require.NoError(t, err)
		assert.Equal(t, []float64{20, 5, 1}, quantities(got), "limit 0 is unbounded")
	})

	t.Run("update merges provided fields", func(t *testing.T) {
		foods, _ := newStores(t)

		id := insertFood(t, foods, domain.Food{"email": "alice@example.com", "foodName": "Soup", "foodQuantity": float64(2)})

		res, err := foods.UpdateByID(ctx, id, domain.Food{"email": "alice@example.com", "foodQuantity": float64(9)})
		require.NoError(t, err)
		assert.True(t, res.Acknowledged)
		assert.Equal(t, int64(1), res.MatchedCount)
		assert.Equal(t, int64(1), res.ModifiedCount)

		got, err := foods.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Soup", got["foodName"], "untouched fields survive")
		q, _ := got.Quantity()
		assert.Equal(t, float64(9), q)
	})

	t.Run("update of missing document matches nothing", func(t *testing.T) {
		foods, _ := newStores(t)

		id := insertFood(t, foods, domain.Food{"email": "alice@example.com"})
		_, err := foods.DeleteOwned(ctx, id, "alice@example.com")
		require.NoError(t, err)

		res, err := foods.UpdateByID(ctx, id, domain.Food{"foodName": "ghost"})
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.MatchedCount)
		assert.Equal(t, int64(0), res.UpsertedCount)

		got, err := foods.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, got, "update must not upsert")
	})

	t.Run("delete is owner scoped and idempotent", func(t *testing.T) {
		foods, _ := newStores(t)

		id := insertFood(t, foods, domain.Food{"email": "alice@example.com"})

		res, err := foods.DeleteOwned(ctx, id, "mallory@example.com")
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.DeletedCount)

		res, err = foods.DeleteOwned(ctx, id, "alice@example.com")
		require.NoError(t, err)
		assert.True(t, res.Acknowledged)
		assert.Equal(t, int64(1), res.DeletedCount)

		res, err = foods.DeleteOwned(ctx, id, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.DeletedCount)
	})

	t.Run("requested foods by requester", func(t *testing.T) {
		_, requests := newStores(t)

		for _, email := range []string{"bob@example.com", "carol@example.com", "bob@example.com"} {
			res, err := requests.Insert(ctx, domain.RequestedFood{"requestedUserEmail": email, "foodId": "f1"})
			require.NoError(t, err)
			require.True(t, res.Acknowledged)
			require.NotEmpty(t, res.InsertedID)
		}

		got, err := requests.FindByRequester(ctx, "bob@example.com")
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, rf := range got {
			assert.Equal(t, "bob@example.com", rf.RequesterEmail())
			assert.NotEmpty(t, rf.ID())
			assert.Equal(t, "f1", rf["foodId"])
		}

		got, err = requests.FindByRequester(ctx, "dave@example.com")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
