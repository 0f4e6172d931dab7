// Package pathmatch implements a single-segment longest-prefix path router:
// it resolves a request path to the most specific registered prefix and the
// handler bound to it.
//
// # Matcher
//
// Create an empty matcher and register prefixes with their handlers:
//
//	m := pathmatch.New[string]()
//	if err := m.AddPrefix("/api", "api-backend"); err != nil {
//	    log.Fatal(err)
//	}
//
// For startup wiring, MustAddPrefix supports fluent chaining and panics on
// a registration error:
//
//	m := pathmatch.New[string]().
//	    MustAddPrefix("/api", "api-backend").
//	    MustAddPrefix("/api/admin", "admin-backend").
//	    MustAddPrefix("/static", "file-server")
//
// # Matching
//
// Match resolves a path against the registered prefixes, longest first:
//
//	res := m.Match("/api/admin/users")
//	// res.Matched == "/api/admin", res.Remaining == "/users"
//
// Among all registered prefixes that are a prefix of the path, the longest
// one wins; an exact match always beats a shorter prefix. Match never fails:
// when nothing matches, it returns the default handler with Matched set to
// "/" and Remaining set to the whole path. Found reports whether any handler
// (registered or default) was resolved.
//
// # Default Handler
//
// Registering the root path sets the default handler instead of creating a
// route:
//
//	m.AddPrefix("/", "fallback-backend")
//
// # Registration Rules
//
// The empty prefix is rejected with ErrPrefixEmpty. A prefix ending in the
// path separator is rejected with ErrPrefixTrailingSlash, so the prefix
// length is always unambiguous. Registering the same prefix twice overwrites
// the previous handler. There is no deregistration.
//
// # Concurrency
//
// Match is safe for unlimited concurrent callers and never takes a lock.
// AddPrefix and MustAddPrefix serialize against each other; a concurrent
// Match observes either the state before or after a registration, never a
// partial one. Registration is expected to be rare relative to matching, so
// the write path rebuilds its internal length index in full on every call
// rather than maintaining it incrementally.
package pathmatch
