package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/phrazzld/foodshare-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	aliceEmail = "alice@example.com"
	bobEmail   = "bob@example.com"
)

type errorBody struct {
	Message string `json:"message"`
	TraceID string `json:"trace_id"`
}

func (ts *testServer) addFood(t *testing.T, owner, body string) string {
	t.Helper()
	resp := ts.do(t, http.MethodPost, "/addFood", body, ts.bearer(t, owner))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	res := decodeBody[store.InsertResult](t, resp)
	require.True(t, res.Acknowledged)
	require.NotEmpty(t, res.InsertedID)
	return res.InsertedID
}

func (ts *testServer) foodCount(t *testing.T) int {
	t.Helper()
	foods, err := ts.app.foodStore.Find(context.Background(), store.FoodQuery{})
	require.NoError(t, err)
	return len(foods)
}

func TestLiveness(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := ts.do(t, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Server is running", string(body))
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	ts := newTestServer(t, nil)
	id := ts.addFood(t, aliceEmail, `{"foodName":"Bread","email":"alice@example.com"}`)

	routes := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/foods/" + id, ""},
		{http.MethodPut, "/foods/" + id, `{"foodName":"Stolen","email":"alice@example.com"}`},
		{http.MethodDelete, "/foods/" + id, ""},
		{http.MethodPost, "/addFood", `{"foodName":"Cake","email":"alice@example.com"}`},
		{http.MethodGet, "/myRequestedFoods?email=alice@example.com", ""},
		{http.MethodPost, "/myRequestedFoods", `{"requestedUserEmail":"alice@example.com"}`},
	}

	for _, authz := range []string{"", "Bearer not-a-token", "Basic abc"} {
		for _, rt := range routes {
			t.Run(fmt.Sprintf("%s %s auth=%q", rt.method, rt.path, authz), func(t *testing.T) {
				resp := ts.do(t, rt.method, rt.path, rt.body, authz)
				assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

				body := decodeBody[errorBody](t, resp)
				assert.Equal(t, "Unauthorized access", body.Message)
			})
		}
	}

	assert.Equal(t, 1, ts.foodCount(t), "rejected requests must not touch the store")

	resp := ts.do(t, http.MethodGet, "/foods/"+id, "", ts.bearer(t, aliceEmail))
	food := decodeBody[map[string]interface{}](t, resp)
	assert.Equal(t, "Bread", food["foodName"])
}

func TestOwnershipEnforced(t *testing.T) {
	ts := newTestServer(t, nil)
	id := ts.addFood(t, aliceEmail, `{"foodName":"Soup","email":"alice@example.com"}`)
	bob := ts.bearer(t, bobEmail)

	t.Run("create for someone else", func(t *testing.T) {
		resp := ts.do(t, http.MethodPost, "/addFood", `{"foodName":"Fake","email":"alice@example.com"}`, bob)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "Forbidden access", decodeBody[errorBody](t, resp).Message)
	})

	t.Run("update with someone else's email", func(t *testing.T) {
		resp := ts.do(t, http.MethodPut, "/foods/"+id, `{"foodName":"Mine now","email":"alice@example.com"}`, bob)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("request on someone else's behalf", func(t *testing.T) {
		resp := ts.do(t, http.MethodPost, "/myRequestedFoods", `{"requestedUserEmail":"alice@example.com"}`, bob)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("list someone else's requests", func(t *testing.T) {
		resp := ts.do(t, http.MethodGet, "/myRequestedFoods?email=alice@example.com", "", bob)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("delete someone else's food", func(t *testing.T) {
		resp := ts.do(t, http.MethodDelete, "/foods/"+id, "", bob)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Zero(t, decodeBody[store.DeleteResult](t, resp).DeletedCount)
	})

	assert.Equal(t, 1, ts.foodCount(t))

	resp := ts.do(t, http.MethodGet, "/foods/"+id, "", bob)
	assert.Equal(t, "Soup", decodeBody[map[string]interface{}](t, resp)["foodName"])
}

func TestCreateUpdateDeleteLifecycle(t *testing.T) {
	ts := newTestServer(t, nil)
	alice := ts.bearer(t, aliceEmail)

	id := ts.addFood(t, aliceEmail,
		`{"foodName":"Rice","email":"alice@example.com","foodQuantity":4,"pickupLocation":"Dhaka"}`)

	resp := ts.do(t, http.MethodGet, "/foods/"+id, "", alice)
	food := decodeBody[map[string]interface{}](t, resp)
	assert.Equal(t, id, food["_id"])
	assert.Equal(t, "Rice", food["foodName"])
	assert.EqualValues(t, 4, food["foodQuantity"])
	assert.Equal(t, "Dhaka", food["pickupLocation"])

	resp = ts.do(t, http.MethodPut, "/foods/"+id, `{"foodQuantity":2,"email":"alice@example.com"}`, alice)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	upd := decodeBody[store.UpdateResult](t, resp)
	assert.EqualValues(t, 1, upd.MatchedCount)
	assert.EqualValues(t, 1, upd.ModifiedCount)

	resp = ts.do(t, http.MethodGet, "/foods/"+id, "", alice)
	food = decodeBody[map[string]interface{}](t, resp)
	assert.EqualValues(t, 2, food["foodQuantity"])
	assert.Equal(t, "Rice", food["foodName"], "update only sets supplied attributes")

	resp = ts.do(t, http.MethodDelete, "/foods/"+id, "", alice)
	assert.EqualValues(t, 1, decodeBody[store.DeleteResult](t, resp).DeletedCount)

	resp = ts.do(t, http.MethodDelete, "/foods/"+id, "", alice)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, decodeBody[store.DeleteResult](t, resp).DeletedCount)

	resp = ts.do(t, http.MethodGet, "/foods/"+id, "", alice)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "null", string(body))
}

func TestListFoodsOverHTTP(t *testing.T) {
	ts := newTestServer(t, nil)

	ts.addFood(t, aliceEmail, `{"foodName":"late","email":"alice@example.com","date":"2099-06-01","foodQuantity":1}`)
	ts.addFood(t, aliceEmail, `{"foodName":"early","email":"alice@example.com","date":"2099-01-01","foodQuantity":9}`)
	ts.addFood(t, bobEmail, `{"foodName":"middle","email":"bob@example.com","date":"2099-03-01","foodQuantity":5}`)
	ts.addFood(t, bobEmail, `{"foodName":"past","email":"bob@example.com","date":"2000-01-01","foodQuantity":100}`)

	names := func(foods []map[string]interface{}) []string {
		out := make([]string, 0, len(foods))
		for _, f := range foods {
			out = append(out, f["foodName"].(string))
		}
		return out
	}

	t.Run("by date", func(t *testing.T) {
		resp := ts.do(t, http.MethodGet, "/foods?sortBy=date", "", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, []string{"early", "middle", "late"}, names(decodeBody[[]map[string]interface{}](t, resp)))
	})

	t.Run("by quantity with limit", func(t *testing.T) {
		resp := ts.do(t, http.MethodGet, "/foods?sortBy=quantity&limit=2", "", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, []string{"early", "middle"}, names(decodeBody[[]map[string]interface{}](t, resp)))
	})

	t.Run("by email", func(t *testing.T) {
		resp := ts.do(t, http.MethodGet, "/foods?email=bob@example.com", "", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.ElementsMatch(t, []string{"middle", "past"}, names(decodeBody[[]map[string]interface{}](t, resp)))
	})

	t.Run("no email", func(t *testing.T) {
		resp := ts.do(t, http.MethodGet, "/foods", "", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, decodeBody[[]map[string]interface{}](t, resp))
	})

	t.Run("by email ignores limit", func(t *testing.T) {
		for _, limit := range []string{"abc", "-1", "1"} {
			resp := ts.do(t, http.MethodGet, "/foods?email=bob@example.com&limit="+limit, "", "")
			require.Equal(t, http.StatusOK, resp.StatusCode, "limit=%s", limit)
			assert.ElementsMatch(t, []string{"middle", "past"}, names(decodeBody[[]map[string]interface{}](t, resp)))
		}
	})

	t.Run("bad limit", func(t *testing.T) {
		resp := ts.do(t, http.MethodGet, "/foods?sortBy=date&limit=abc", "", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid query parameter", decodeBody[errorBody](t, resp).Message)
	})
}

func TestRequestedFoodsOverHTTP(t *testing.T) {
	ts := newTestServer(t, nil)
	bob := ts.bearer(t, bobEmail)
	foodID := ts.addFood(t, aliceEmail, `{"foodName":"Milk","email":"alice@example.com"}`)

	body := fmt.Sprintf(`{"foodId":%q,"requestedUserEmail":"bob@example.com","note":"after 5pm"}`, foodID)
	resp := ts.do(t, http.MethodPost, "/myRequestedFoods", body, bob)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decodeBody[store.InsertResult](t, resp).Acknowledged)

	resp = ts.do(t, http.MethodGet, "/myRequestedFoods?email=bob@example.com", "", bob)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	claims := decodeBody[[]map[string]interface{}](t, resp)
	require.Len(t, claims, 1)
	assert.Equal(t, foodID, claims[0]["foodId"])
	assert.Equal(t, "after 5pm", claims[0]["note"])
}

func TestMalformedRequests(t *testing.T) {
	ts := newTestServer(t, nil)
	alice := ts.bearer(t, aliceEmail)

	resp := ts.do(t, http.MethodPost, "/addFood", `{"foodName":`, alice)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody[errorBody](t, resp)
	assert.Equal(t, "Invalid request format", body.Message)
	assert.NotEmpty(t, body.TraceID)

	resp = ts.do(t, http.MethodPost, "/addFood", `{"email":"alice@example.com","date":"not a date"}`, alice)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid date", decodeBody[errorBody](t, resp).Message)

	for _, date := range []string{"1e15", "-1e15", `"10000-01-01"`} {
		resp = ts.do(t, http.MethodPost, "/addFood", `{"email":"alice@example.com","date":`+date+`}`, alice)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, date)
		assert.Equal(t, "Invalid date", decodeBody[errorBody](t, resp).Message)
	}
	assert.Zero(t, ts.foodCount(t))

	resp = ts.do(t, http.MethodGet, "/foods?sortBy=date", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[[]map[string]interface{}](t, resp))

	resp = ts.do(t, http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCORS(t *testing.T) {
	t.Run("any origin", func(t *testing.T) {
		ts := newTestServer(t, nil)

		req, err := http.NewRequest(http.MethodOptions, ts.srv.URL+"/foods/abc", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodDelete)

		resp, err := ts.srv.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
		assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), http.MethodDelete)
	})

	t.Run("allow list", func(t *testing.T) {
		cfg := testConfig()
		cfg.Server.AllowedOrigins = "https://app.example.com, https://admin.example.com"
		ts := newTestServer(t, cfg)

		for origin, want := range map[string]string{
			"https://admin.example.com": "https://admin.example.com",
			"https://evil.example.com":  "",
		} {
			req, err := http.NewRequest(http.MethodGet, ts.srv.URL+"/", nil)
			require.NoError(t, err)
			req.Header.Set("Origin", origin)

			resp, err := ts.srv.Client().Do(req)
			require.NoError(t, err)
			_ = resp.Body.Close()

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, want, resp.Header.Get("Access-Control-Allow-Origin"), origin)
		}
	})
}
