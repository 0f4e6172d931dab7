package dispatch

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/prefixmux/pathmatch"
)

func TestNewHandler(t *testing.T) {
	t.Run("creates handler with an empty matcher", func(t *testing.T) {
		h := NewHandler()
		require.NotNil(t, h)
		assert.Zero(t, h.Matcher().Len())
	})
}

func TestHandlerServeHTTP(t *testing.T) {
	t.Run("dispatches to the longest matching prefix", func(t *testing.T) {
		h := NewHandler()
		require.NoError(t, h.HandleFunc("/api", func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "api")
		}))
		require.NoError(t, h.HandleFunc("/api/admin", func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "admin")
		}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "admin", w.Body.String())
	})

	t.Run("exposes match information to the handler", func(t *testing.T) {
		h := NewHandler()
		require.NoError(t, h.HandleFunc("/api", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "%s|%s", Matched(r), Remaining(r))
		}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/users/42", nil)
		h.ServeHTTP(w, req)

		assert.Equal(t, "/api|/users/42", w.Body.String())
	})

	t.Run("root registration serves unmatched paths", func(t *testing.T) {
		h := NewHandler()
		require.NoError(t, h.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "fallback:%s", Remaining(r))
		}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/anything", nil)
		h.ServeHTTP(w, req)

		assert.Equal(t, "fallback:/anything", w.Body.String())
		assert.Zero(t, h.Matcher().Len())
	})

	t.Run("returns 404 when nothing matches", func(t *testing.T) {
		h := NewHandler()
		require.NoError(t, h.HandleFunc("/api", func(_ http.ResponseWriter, _ *http.Request) {}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/other", nil)
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("uses custom NotFoundHandler", func(t *testing.T) {
		h := NewHandler()
		h.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, "custom 404")
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "custom 404", w.Body.String())
	})

	t.Run("propagates registration errors", func(t *testing.T) {
		h := NewHandler()

		err := h.HandleFunc("/bad/", func(_ http.ResponseWriter, _ *http.Request) {})
		assert.ErrorIs(t, err, pathmatch.ErrPrefixTrailingSlash)
	})
}

func TestHandlerMiddleware(t *testing.T) {
	t.Run("applies middleware in registration order", func(t *testing.T) {
		h := NewHandler()
		require.NoError(t, h.HandleFunc("/api", func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "handler")
		}))

		mw := func(name string) MiddlewareFunc {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					fmt.Fprintf(w, "%s>", name)
					next.ServeHTTP(w, r)
				})
			}
		}

		h.Use(mw("first"), mw("second"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/x", nil)
		h.ServeHTTP(w, req)

		assert.Equal(t, "first>second>handler", w.Body.String())
	})

	t.Run("reuses the wrapped handler across requests", func(t *testing.T) {
		h := NewHandler()
		require.NoError(t, h.HandleFunc("/api", func(_ http.ResponseWriter, _ *http.Request) {}))

		var wrapped int

		h.Use(func(next http.Handler) http.Handler {
			wrapped++
			return next
		})

		for iter := 0; iter < 3; iter++ {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/x", nil))
		}

		assert.Equal(t, 1, wrapped)
	})

	t.Run("re-registration invalidates the cached handler", func(t *testing.T) {
		h := NewHandler()
		require.NoError(t, h.HandleFunc("/api", func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "old")
		}))

		h.Use(func(next http.Handler) http.Handler { return next })

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api", nil))
		assert.Equal(t, "old", w.Body.String())

		require.NoError(t, h.HandleFunc("/api", func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "new")
		}))

		w = httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api", nil))
		assert.Equal(t, "new", w.Body.String())
	})

	t.Run("middleware wraps the default handler", func(t *testing.T) {
		h := NewHandler()
		require.NoError(t, h.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "fallback")
		}))

		h.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-Wrapped", "yes")
				next.ServeHTTP(w, r)
			})
		})

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/anything", nil))

		assert.Equal(t, "yes", w.Header().Get("X-Wrapped"))
		assert.Equal(t, "fallback", w.Body.String())
	})
}
