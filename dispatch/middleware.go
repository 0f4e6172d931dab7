package dispatch

import "net/http"

// MiddlewareFunc is a function which receives an http.Handler and returns
// another http.Handler. Typically the returned handler is a closure which
// does something with the request before or after calling the handler
// passed to it.
type MiddlewareFunc func(http.Handler) http.Handler

// Middleware allows MiddlewareFunc to be used where a named middleware
// interface is expected.
func (mw MiddlewareFunc) Middleware(handler http.Handler) http.Handler {
	return mw(handler)
}
