package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/foodshare-api/internal/api/shared"
	"github.com/phrazzld/foodshare-api/internal/platform/logger"
)

// TraceMiddleware adds a trace ID to the request context along with a
// logger carrying it. Apply it early so every later handler can log with
// the trace ID.
func TraceMiddleware(next http.Handler) http.Handler {
	return NewTraceMiddleware(nil)(next)
}

// NewTraceMiddleware is TraceMiddleware deriving request loggers from base.
// A nil base falls back to any logger already in the context, then slog.Default.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			parent := base
			if parent == nil {
				parent = logger.FromContextOrDefault(ctx, slog.Default())
			}
			log := parent.With(slog.String("trace_id", traceID))

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(logger.WithLogger(ctx, log)))
		})
	}
}
