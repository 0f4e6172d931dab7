package dispatch

import (
	"net/http"
	"sync"

	"github.com/vitalvas/prefixmux/pathmatch"
)

// Handler dispatches requests to the handler registered under the longest
// matching path prefix.
//
// It implements the http.Handler interface, so it can be registered to
// serve requests:
//
//	h := dispatch.NewHandler()
//	h.HandleFunc("/api", apiHandler)
//	http.ListenAndServe(":8080", h)
type Handler struct {
	// NotFoundHandler is called when no prefix matches and no default
	// handler is registered. If nil, http.NotFoundHandler() is used.
	NotFoundHandler http.Handler

	matcher     *pathmatch.Matcher[http.Handler]
	middlewares []MiddlewareFunc

	// handlerCache caches the middleware-wrapped handler per matched
	// prefix to avoid re-wrapping on every request. Entries are dropped
	// when their prefix is registered again.
	handlerCache sync.Map // map[string]http.Handler
}

// NewHandler returns a new dispatch handler with no registered prefixes.
func NewHandler() *Handler {
	return &Handler{
		matcher: pathmatch.New[http.Handler](),
	}
}

// Handle registers handler under the given path prefix. Registering "/"
// installs the default handler. Registration rules and errors are those of
// pathmatch.Matcher.AddPrefix.
func (h *Handler) Handle(prefix string, handler http.Handler) error {
	if err := h.matcher.AddPrefix(prefix, handler); err != nil {
		return err
	}

	h.handlerCache.Delete(prefix)

	return nil
}

// HandleFunc registers a handler function under the given path prefix.
func (h *Handler) HandleFunc(prefix string, f func(http.ResponseWriter, *http.Request)) error {
	return h.Handle(prefix, http.HandlerFunc(f))
}

// Matcher returns the underlying prefix matcher, for diagnostics and
// direct resolution without dispatching.
func (h *Handler) Matcher() *pathmatch.Matcher[http.Handler] {
	return h.matcher
}

// Use appends middleware to the chain. Middleware is applied to dispatched
// handlers only, in registration order, and must be added before the first
// request is served.
func (h *Handler) Use(mwf ...MiddlewareFunc) {
	h.middlewares = append(h.middlewares, mwf...)
}

// ServeHTTP resolves the request path and dispatches to the bound handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	match := h.matcher.Match(r.URL.Path)

	if !match.Found {
		notFound := h.NotFoundHandler
		if notFound == nil {
			notFound = http.NotFoundHandler()
		}

		notFound.ServeHTTP(w, r)

		return
	}

	handler := match.Value

	if len(h.middlewares) > 0 {
		if cached, ok := h.handlerCache.Load(match.Matched); ok {
			handler = cached.(http.Handler)
		} else {
			handler = h.applyMiddleware(handler)
			h.handlerCache.Store(match.Matched, handler)
		}
	}

	handler.ServeHTTP(w, setMatchContext(r, match.Matched, match.Remaining))
}

// applyMiddleware wraps the handler with all registered middleware.
func (h *Handler) applyMiddleware(handler http.Handler) http.Handler {
	for i := len(h.middlewares) - 1; i >= 0; i-- {
		handler = h.middlewares[i].Middleware(handler)
	}

	return handler
}
