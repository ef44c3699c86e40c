package api

import "net/http"

// Liveness handles GET / with a plain-text confirmation that the process is up.
func Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(LivenessMessage))
}
