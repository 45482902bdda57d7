package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/nmaffly/portfolio-assistant/internal/api"
	"github.com/nmaffly/portfolio-assistant/internal/domain"
)

const (
	// DefaultRateLimitMax is the accepted requests per window per client
	DefaultRateLimitMax = 10
	// DefaultRateLimitWindow is the fixed window length
	DefaultRateLimitWindow = 15 * time.Minute
)

// RateLimiter implements fixed-window admission control keyed by client
// IP: at most Max accepted requests per Window, with the window reset
// on wall clock rather than a sliding log. Edge behavior at window
// boundaries is an accepted approximation.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*countWindow
	max     int
	window  time.Duration
}

type countWindow struct {
	start time.Time
	count int
}

// NewRateLimiter creates a RateLimiter. Non-positive arguments fall
// back to the defaults.
func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	if max <= 0 {
		max = DefaultRateLimitMax
	}
	if window <= 0 {
		window = DefaultRateLimitWindow
	}
	return &RateLimiter{
		clients: make(map[string]*countWindow),
		max:     max,
		window:  window,
	}
}

// Allow records an admission attempt for key and reports whether it is
// within the window quota. Updates are serialized per limiter, which
// covers the per-key requirement.
func (rl *RateLimiter) Allow(key string) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Expired windows double as stale entries; drop them inline
	for k, w := range rl.clients {
		if now.Sub(w.start) >= rl.window {
			delete(rl.clients, k)
		}
	}

	w, exists := rl.clients[key]
	if !exists {
		rl.clients[key] = &countWindow{start: now, count: 1}
		return true
	}

	w.count++
	return w.count <= rl.max
}

// RetryAfter returns the human-readable back-off hint for rejections.
func (rl *RateLimiter) RetryAfter() string {
	return fmt.Sprintf("%d minutes", int(rl.window.Minutes()))
}

// RateLimit rejects over-quota requests with 429 before any handler
// work runs, so throttled requests cost no embedding or model calls.
func RateLimit(rl *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.Allow(ClientIP(r)) {
				w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
				api.JSON(w, http.StatusTooManyRequests, api.ErrorResponse{
					Error:      domain.ErrTooManyRequests.Message,
					RetryAfter: rl.RetryAfter(),
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
