package dispatch

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchContext(t *testing.T) {
	t.Run("returns empty values without a dispatch", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)

		assert.Empty(t, Matched(req))
		assert.Empty(t, Remaining(req))
	})

	t.Run("SetMatch injects match information", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		req = SetMatch(req, "/api", "/users")

		assert.Equal(t, "/api", Matched(req))
		assert.Equal(t, "/users", Remaining(req))
	})

	t.Run("SetMatch overwrites previous match information", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		req = SetMatch(req, "/api", "/users")
		req = SetMatch(req, "/api/users", "")

		assert.Equal(t, "/api/users", Matched(req))
		assert.Empty(t, Remaining(req))
	})
}
