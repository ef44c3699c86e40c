package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiveness(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	Liveness(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Server is running", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}
