package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/foodshare-api/internal/config"
	"github.com/phrazzld/foodshare-api/internal/service/auth"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   0,
			LogLevel:               "debug",
			AllowedOrigins:         "*",
			ShutdownTimeoutSeconds: 1,
		},
		Database: config.DatabaseConfig{
			Driver: config.DriverMemory,
			Name:   "foodShare",
		},
		Auth: auth.DefaultJWTConfig(),
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// testServer is a running router backed by the in-memory store.
type testServer struct {
	app *application
	srv *httptest.Server
	jwt *auth.JWTVerifier
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}

	app, err := newApplication(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { app.cleanup(context.Background()) })

	jwt, ok := app.verifier.(*auth.JWTVerifier)
	require.True(t, ok, "jwt provider should yield a *auth.JWTVerifier")

	srv := httptest.NewServer(app.setupRouter())
	t.Cleanup(srv.Close)

	return &testServer{app: app, srv: srv, jwt: jwt}
}

func (ts *testServer) bearer(t *testing.T, email string) string {
	t.Helper()
	return auth.BearerForTestingT(t, ts.jwt, email)
}

// do sends a request; an empty authorization sends none.
func (ts *testServer) do(t *testing.T, method, path, body, authorization string) *http.Response {
	t.Helper()

	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, ts.srv.URL+path, rdr)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := ts.srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}
