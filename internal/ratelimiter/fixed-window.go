package ratelimiter

import (
	"sync"
	"time"
)

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type Limiter interface {
	Allow(ip string) (bool, time.Duration)
}

// FixedWindowRateLimiter counts requests per client IP inside a fixed
// window; the whole table resets when the window rolls over.
type FixedWindowRateLimiter struct {
	mu          sync.Mutex
	clients     map[string]int
	limit       int
	window      time.Duration
	windowStart time.Time
}

func NewFixedWindowLimiter(limit int, window time.Duration) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients:     make(map[string]int),
		limit:       limit,
		window:      window,
		windowStart: time.Now(),
	}
}

// Allow reports whether the request fits in the current window; when
// it does not, the second return value says how long to back off.
func (rl *FixedWindowRateLimiter) Allow(ip string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if elapsed := now.Sub(rl.windowStart); elapsed >= rl.window {
		rl.clients = make(map[string]int)
		rl.windowStart = now
	}

	if rl.clients[ip] >= rl.limit {
		return false, rl.window - now.Sub(rl.windowStart)
	}

	rl.clients[ip]++
	return true, 0
}
