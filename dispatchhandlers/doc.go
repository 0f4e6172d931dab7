// Package dispatchhandlers provides HTTP middleware and serving helpers for
// the dispatch prefix router.
//
// # Request ID Middleware
//
// RequestIDMiddleware generates or propagates a request ID header, making
// it available to downstream handlers through the request context:
//
//	h.Use(dispatchhandlers.RequestIDMiddleware(dispatchhandlers.RequestIDConfig{}))
//
// When TrustIncoming is set, an incoming ID is reused only if it passes
// ValidateFunc (by default, it must parse as a UUID), so arbitrary client
// strings never reach responses or log entries.
//
// # Access Log Middleware
//
// AccessLogMiddleware logs one structured entry per request with the
// matched prefix, status code, and latency. The log level follows the
// status class: 5xx at error, 4xx at warn, everything else at info:
//
//	logger, _ := zap.NewProduction()
//	h.Use(dispatchhandlers.AccessLogMiddleware(dispatchhandlers.AccessLogConfig{
//	    Logger: logger,
//	}))
//
// # Metrics Middleware
//
// NewMetricsMiddleware records Prometheus metrics per dispatched request:
// a request counter and a latency histogram labeled by matched prefix and
// status code, an in-flight gauge, and a counter of requests served by the
// default handler:
//
//	mw, err := dispatchhandlers.NewMetricsMiddleware(dispatchhandlers.MetricsConfig{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	h.Use(mw)
//
// # Recovery Middleware
//
// RecoveryMiddleware recovers from panics in downstream handlers and
// returns 500 Internal Server Error. With a Logger configured, each
// recovered panic is logged with the request method, path, matched
// prefix, and request ID:
//
//	h.Use(dispatchhandlers.RecoveryMiddleware(dispatchhandlers.RecoveryConfig{
//	    Logger: logger,
//	}))
//
// # Server Middleware
//
// ServerMiddleware sets server identification response headers: the
// hostname (resolved from configuration, environment variables, or
// os.Hostname) and, when MatchedPrefixHeader is set, the dispatch prefix
// that served the request.
//
// # Serving
//
// ListenAndServe runs an HTTP server for a handler with an optional cap on
// concurrent connections, enforced at the listener:
//
//	err := dispatchhandlers.ListenAndServe(":8080", h, dispatchhandlers.ServeConfig{
//	    MaxConnections: 1024,
//	})
package dispatchhandlers
