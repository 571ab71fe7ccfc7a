package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// newGateRouter wires the auth middleware with a nil pool: any request that
// reaches the user lookup or the handler would panic, so a clean 401 proves
// the gate short-circuited before touching storage.
func newGateRouter(handlerCalled *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(nil), func(c *gin.Context) {
		*handlerCalled = true
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAuthMissingHeader(t *testing.T) {
	var called bool
	r := newGateRouter(&called)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	assert.False(t, called)
}

func TestAuthMalformedHeader(t *testing.T) {
	cases := []string{
		"Bearer",
		"Basic dXNlcjpwYXNz",
		"bearer-token-without-space",
	}

	for _, header := range cases {
		var called bool
		r := newGateRouter(&called)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
		assert.False(t, called)
	}
}

func TestAuthBadToken(t *testing.T) {
	var called bool
	r := newGateRouter(&called)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}
