package dispatchhandlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/vitalvas/prefixmux/dispatch"
)

// RecoveryConfig configures the Recovery middleware behaviour.
type RecoveryConfig struct {
	// Logger, when set, receives one error entry per recovered panic
	// with the request method, path, matched dispatch prefix, and the
	// panic value.
	Logger *zap.Logger

	// LogFunc is an optional callback invoked with the request and the
	// recovered value when a panic occurs, in addition to Logger.
	LogFunc func(r *http.Request, err any)
}

// RecoveryMiddleware returns a middleware that recovers from panics in
// downstream handlers. When a panic occurs it returns 500 Internal Server
// Error to the client, logs the panic through Logger, and invokes LogFunc.
func RecoveryMiddleware(cfg RecoveryConfig) dispatch.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if cfg.Logger != nil {
						fields := []zap.Field{
							zap.String("method", r.Method),
							zap.String("path", r.URL.Path),
							zap.String("matched", dispatch.Matched(r)),
							zap.Any("panic", err),
						}

						if id := RequestIDFromContext(r.Context()); id != "" {
							fields = append(fields, zap.String("requestID", id))
						}

						cfg.Logger.Error("panic recovered", fields...)
					}

					if cfg.LogFunc != nil {
						cfg.LogFunc(r, err)
					}

					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
