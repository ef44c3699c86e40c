package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/foodshare-api/internal/api"
	"github.com/phrazzld/foodshare-api/internal/api/middleware"
	"github.com/phrazzld/foodshare-api/internal/platform/memstore"
	"github.com/phrazzld/foodshare-api/internal/service"
	"github.com/phrazzld/foodshare-api/internal/service/auth"
	"github.com/phrazzld/foodshare-api/internal/store"
	"github.com/stretchr/testify/require"
)

var (
	alice = auth.Identity{Subject: "u-alice", Email: "alice@example.com"}
	bob   = auth.Identity{Subject: "u-bob", Email: "bob@example.com"}
)

// testClock is 2024-03-01 10:00 UTC.
var testClock = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	foods     store.FoodStore
	requests  store.RequestedFoodStore
	foodH     *api.FoodHandler
	requestsH *api.RequestedFoodHandler
}

func newFixture(t *testing.T, foods store.FoodStore, requests store.RequestedFoodStore) *fixture {
	t.Helper()

	if foods == nil {
		foods = memstore.NewFoodStore()
	}
	if requests == nil {
		requests = memstore.NewRequestedFoodStore()
	}

	foodSvc, err := service.NewFoodService(foods, nil, service.WithClock(func() time.Time { return testClock }))
	require.NoError(t, err)
	reqSvc, err := service.NewRequestedFoodService(requests, nil)
	require.NoError(t, err)

	log := discardLogger()
	return &fixture{
		foods:     foods,
		requests:  requests,
		foodH:     api.NewFoodHandler(foodSvc, log),
		requestsH: api.NewRequestedFoodHandler(reqSvc, log),
	}
}

// request builds a request carrying caller (if non-nil) and the chi {id}
// parameter (if non-empty).
func request(method, target, body string, caller *auth.Identity, id string) *http.Request {
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)

	ctx := req.Context()
	if caller != nil {
		ctx = middleware.WithIdentity(ctx, *caller)
	}
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}
