package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nmaffly/portfolio-assistant/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_AllowsUpToMax(t *testing.T) {
	rl := NewRateLimiter(10, 15*time.Minute)

	for i := 0; i < 10; i++ {
		assert.True(t, rl.Allow("1.2.3.4"), "request %d should be admitted", i+1)
	}
	assert.False(t, rl.Allow("1.2.3.4"), "11th request should be rejected")
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(2, 15*time.Minute)

	assert.True(t, rl.Allow("1.1.1.1"))
	assert.True(t, rl.Allow("1.1.1.1"))
	assert.False(t, rl.Allow("1.1.1.1"))

	// A different client is unaffected by the first client's count
	assert.True(t, rl.Allow("2.2.2.2"))
}

func TestRateLimiter_WindowResets(t *testing.T) {
	rl := NewRateLimiter(1, 30*time.Millisecond)

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))

	time.Sleep(40 * time.Millisecond)
	assert.True(t, rl.Allow("1.2.3.4"))
}

func TestRateLimiter_Defaults(t *testing.T) {
	rl := NewRateLimiter(0, 0)

	assert.Equal(t, DefaultRateLimitMax, rl.max)
	assert.Equal(t, DefaultRateLimitWindow, rl.window)
	assert.Equal(t, "15 minutes", rl.RetryAfter())
}

func TestRateLimit_Middleware(t *testing.T) {
	rl := NewRateLimiter(1, 15*time.Minute)

	handlerCalls := 0
	handler := RateLimit(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalls++
		w.WriteHeader(http.StatusOK)
	}))

	newReq := func(addr string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
		req.RemoteAddr = addr
		return req
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, newReq("9.9.9.9:1234"))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, newReq("9.9.9.9:1234"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "Too many requests")
	assert.Equal(t, "15 minutes", resp.RetryAfter)

	// Throttled requests never reach the handler
	assert.Equal(t, 1, handlerCalls)

	// Another client address is still admitted
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, newReq("8.8.8.8:1234"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", ClientIP(req))

	req.Header.Set("X-Real-IP", "4.4.4.4")
	assert.Equal(t, "4.4.4.4", ClientIP(req))

	req.Header.Set("X-Forwarded-For", "3.3.3.3, 10.0.0.1")
	assert.Equal(t, "3.3.3.3", ClientIP(req))
}
