package dispatch

import (
	"context"
	"net/http"
)

// matchContextKey is an unexported type for the single context key.
type matchContextKey struct{}

// ctxKey is the single context key used to store the match information.
var ctxKey = matchContextKey{}

// matchContext holds the matched prefix and the remaining path suffix.
type matchContext struct {
	matched   string
	remaining string
}

// Matched returns the registered prefix that matched the current request,
// or "/" when the default handler served it. It returns an empty string
// when the request was not dispatched through a Handler.
func Matched(r *http.Request) string {
	if mc, ok := r.Context().Value(ctxKey).(*matchContext); ok {
		return mc.matched
	}

	return ""
}

// Remaining returns the path suffix after the matched prefix for the
// current request. It returns an empty string when the request was not
// dispatched through a Handler.
func Remaining(r *http.Request) string {
	if mc, ok := r.Context().Value(ctxKey).(*matchContext); ok {
		return mc.remaining
	}

	return ""
}

// SetMatch sets the match information for the given request, returning the
// modified request. This is intended for testing handlers in isolation.
func SetMatch(r *http.Request, matched, remaining string) *http.Request {
	return setMatchContext(r, matched, remaining)
}

// setMatchContext stores the match information in the request context.
func setMatchContext(r *http.Request, matched, remaining string) *http.Request {
	ctx := context.WithValue(r.Context(), ctxKey, &matchContext{
		matched:   matched,
		remaining: remaining,
	})

	return r.WithContext(ctx)
}
