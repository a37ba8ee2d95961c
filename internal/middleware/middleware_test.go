package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/marqueai/internal/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokens("secret", time.Hour)
	id := uuid.New()

	r := gin.New()
	r.GET("/me", AuthMiddleware(tokens), func(c *gin.Context) {
		c.String(http.StatusOK, ProfileID(c).String())
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing_authorization_header")

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	raw, err := tokens.Issue(id)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id.String(), w.Body.String())
}

func rateLimitedRouter(t *testing.T, perMinute int, trusted []string) *gin.Engine {
	t.Helper()

	r := gin.New()
	require.NoError(t, r.SetTrustedProxies(trusted))
	r.Use(RequestLogger(zap.NewNop()), NewRateLimiter(perMinute).Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func ping(r http.Handler, remoteAddr, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
		req.Header.Set("X-Real-IP", forwardedFor)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterPerIP(t *testing.T) {
	r := rateLimitedRouter(t, 6, nil)

	assert.Equal(t, http.StatusNoContent, ping(r, "10.0.0.1:4000", ""))
	assert.Equal(t, http.StatusTooManyRequests, ping(r, "10.0.0.1:4001", ""))
	assert.Equal(t, http.StatusNoContent, ping(r, "10.0.0.2:4000", ""))
}

func TestRateLimiterIgnoresForwardedHeadersFromUntrustedPeers(t *testing.T) {
	r := rateLimitedRouter(t, 6, nil)

	assert.Equal(t, http.StatusNoContent, ping(r, "203.0.113.7:5000", "1.1.1.1"))
	for i := 2; i < 20; i++ {
		spoofed := fmt.Sprintf("1.1.1.%d", i)
		assert.Equal(t, http.StatusTooManyRequests, ping(r, "203.0.113.7:5000", spoofed), spoofed)
	}
}

func TestRateLimiterHonoursTrustedProxy(t *testing.T) {
	r := rateLimitedRouter(t, 6, []string{"10.1.1.1"})

	assert.Equal(t, http.StatusNoContent, ping(r, "10.1.1.1:443", "198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, ping(r, "10.1.1.1:443", "198.51.100.1"))
	assert.Equal(t, http.StatusNoContent, ping(r, "10.1.1.1:443", "198.51.100.2"))
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/", func(c *gin.Context) {
		assert.NotNil(t, Logger(c))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(HeaderRequestID))
}
