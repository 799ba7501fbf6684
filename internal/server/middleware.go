package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/lepinkainen/gbrandom/internal/logging"
)

// TraceHeader carries the request trace ID in both directions.
const TraceHeader = "X-Trace-ID"

// LoggerMiddleware logs each request and stores a trace-scoped logger in the
// request context. A valid UUID in X-Trace-ID is reused, otherwise a new one
// is generated.
func LoggerMiddleware(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(TraceHeader)
			if _, err := uuid.Parse(traceID); err != nil {
				traceID = uuid.New().String()
			}
			w.Header().Set(TraceHeader, traceID)

			coreLogger := logger.With("trace_id", traceID)
			httpLogger := coreLogger.With(
				"http_method", r.Method,
				"http_path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			ctx := logging.WithLogger(r.Context(), coreLogger)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			httpLogger.Debug("Request started")

			next.ServeHTTP(ww, r.WithContext(ctx))

			httpLogger.Info("Request finished",
				"status_code", ww.Status(),
				"bytes_written", ww.BytesWritten(),
				"duration", time.Since(start),
			)
		})
	}
}
