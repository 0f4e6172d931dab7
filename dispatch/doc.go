// Package dispatch exposes the pathmatch longest-prefix matcher as an
// http.Handler, so it can serve as the top-level dispatcher of an HTTP
// server.
//
// # Handler
//
// Create a new handler and register prefixes:
//
//	h := dispatch.NewHandler()
//	h.HandleFunc("/api", apiHandler)
//	h.Handle("/static", http.FileServer(http.Dir("static")))
//	http.ListenAndServe(":8080", h)
//
// Each request is resolved to the handler bound to the longest registered
// prefix of its URL path. Registering the root path "/" installs the
// default handler used when no prefix matches.
//
// # Not Found
//
// When no prefix matches and no default handler is registered, the
// NotFoundHandler field is invoked. If nil, http.NotFoundHandler() is used.
//
// # Match Context
//
// Handlers can recover the matched prefix and the remaining path suffix
// from the request context:
//
//	func apiHandler(w http.ResponseWriter, r *http.Request) {
//	    prefix := dispatch.Matched(r)     // e.g. "/api"
//	    rest := dispatch.Remaining(r)     // e.g. "/users/42"
//	    ...
//	}
//
// SetMatch injects match information into a request, intended for testing
// handlers in isolation.
//
// # Middleware
//
// Middleware wraps dispatched handlers, including the default handler:
//
//	h.Use(dispatchhandlers.RecoveryMiddleware(dispatchhandlers.RecoveryConfig{}))
//
// The wrapped handler for each prefix is cached after the first dispatch
// and invalidated when the prefix is registered again.
package dispatch
