// Package middleware contains the HTTP middleware applied in front of the
// API handlers.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/ankigen/internal/api/shared"
	"github.com/phrazzld/ankigen/internal/platform/logger"
)

// Trace assigns each request a trace ID and stores a logger scoped to that
// ID in the request context. Handlers and responders pick the logger up with
// logger.FromContextOrDefault, so every line they emit carries the trace ID
// without threading it through call signatures. Apply before any handler
// that logs.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())

		log := slog.Default().With(slog.String("trace_id", shared.GetTraceID(ctx)))
		ctx = logger.WithContext(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
