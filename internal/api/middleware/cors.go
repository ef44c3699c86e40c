package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS answers cross-origin requests from origins. A "*" entry allows any
// origin. Preflight requests are answered here and never reach next.
func CORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization",
		},
		MaxAge: 300,
	})
}
