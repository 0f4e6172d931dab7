package dispatchhandlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/vitalvas/prefixmux/dispatch"
)

// AccessLogConfig configures the Access Log middleware behaviour.
type AccessLogConfig struct {
	// Logger receives one entry per request. When nil, a no-op logger is
	// used and the middleware is effectively disabled.
	Logger *zap.Logger

	// SkipPaths lists exact request paths that are served without
	// logging, typically health check endpoints.
	SkipPaths []string
}

// statusRecorder captures the status code and body size written by the
// downstream handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n

	return n, err
}

// Flush implements http.Flusher by flushing the underlying ResponseWriter
// if it supports flushing, so streaming handlers keep working behind the
// middleware.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap returns the underlying ResponseWriter for middleware chaining
// and http.NewResponseController.
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// AccessLogMiddleware returns a middleware that logs one structured entry
// per dispatched request. The level follows the response status class:
// error for 5xx, warn for 4xx, info otherwise.
func AccessLogMiddleware(cfg AccessLogConfig) dispatch.MiddlewareFunc {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, path := range cfg.SkipPaths {
		skip[path] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skip[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("matched", dispatch.Matched(r)),
				zap.Int("status", rec.status),
				zap.Duration("latency", time.Since(start)),
				zap.Int("bodySize", rec.bytes),
				zap.String("remoteAddr", r.RemoteAddr),
				zap.String("userAgent", r.UserAgent()),
			}

			if id := RequestIDFromContext(r.Context()); id != "" {
				fields = append(fields, zap.String("requestID", id))
			}

			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error("request completed", fields...)
			case rec.status >= http.StatusBadRequest:
				logger.Warn("request completed", fields...)
			default:
				logger.Info("request completed", fields...)
			}
		})
	}
}
