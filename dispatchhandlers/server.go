package dispatchhandlers

import (
	"net/http"
	"os"

	"github.com/vitalvas/prefixmux/dispatch"
)

// ServerConfig configures the Server middleware behaviour.
type ServerConfig struct {
	// Hostname is the value written to the X-Server-Hostname response
	// header. Resolution order: Hostname field, then HostnameEnv
	// environment variable, then os.Hostname.
	Hostname string

	// HostnameEnv is a list of environment variable names checked in
	// order (e.g. ["POD_NAME", "HOSTNAME"]). The first non-empty
	// value is used. Only consulted when Hostname is empty. When all
	// variables are unset or empty, os.Hostname is used as a fallback.
	HostnameEnv []string

	// MatchedPrefixHeader, when set, names a response header that
	// receives the dispatch prefix that matched the request (as
	// reported by dispatch.Matched). The header is omitted for
	// requests that were not dispatched through a dispatch.Handler.
	MatchedPrefixHeader string
}

// ServerMiddleware returns a middleware that sets server identification
// response headers: the resolved hostname, and optionally the dispatch
// prefix that served the request. The hostname is resolved once when the
// middleware is created. It returns an error if the hostname cannot be
// determined.
func ServerMiddleware(cfg ServerConfig) (dispatch.MiddlewareFunc, error) {
	hostname := cfg.Hostname

	if hostname == "" {
		for _, env := range cfg.HostnameEnv {
			if v, ok := os.LookupEnv(env); ok && v != "" {
				hostname = v
				break
			}
		}
	}

	if hostname == "" {
		h, err := os.Hostname()
		if err != nil {
			return nil, err
		}

		hostname = h
	}

	matchedHeader := cfg.MatchedPrefixHeader

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Server-Hostname", hostname)

			if matchedHeader != "" {
				if matched := dispatch.Matched(r); matched != "" {
					w.Header().Set(matchedHeader, matched)
				}
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}
