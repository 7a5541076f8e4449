// Package ratelimit provides per-client token bucket rate limiting for the
// contracts API.
package ratelimit

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds rate limiter settings.
type Config struct {
	Enabled    bool
	Burst      int     // bucket capacity
	RefillRate float64 // tokens per second
}

// LoadConfig reads RATE_LIMIT_ENABLED (default true), RATE_LIMIT_BURST
// (default 60), and RATE_LIMIT_PER_SECOND (default 10) from the environment.
func LoadConfig() Config {
	cfg := Config{Enabled: true, Burst: 60, RefillRate: 10}

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = enabled
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if burst, err := strconv.Atoi(v); err == nil && burst > 0 {
			cfg.Burst = burst
		}
	}
	if v := os.Getenv("RATE_LIMIT_PER_SECOND"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil && rate > 0 {
			cfg.RefillRate = rate
		}
	}
	return cfg
}

// bucket is a token bucket refilled at a steady rate.
type bucket struct {
	tokens     float64
	lastRefill time.Time
}

// Limiter tracks one bucket per client key.
type Limiter struct {
	cfg     Config
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time
}

// NewLimiter creates a limiter with the given configuration.
func NewLimiter(cfg Config) *Limiter {
	return &Limiter{
		cfg:     cfg,
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Allow reports whether the client identified by key may proceed, consuming
// one token if so.
func (l *Limiter) Allow(key string) bool {
	if !l.cfg.Enabled {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	now := l.now()
	if !ok {
		b = &bucket{tokens: float64(l.cfg.Burst), lastRefill: now}
		l.buckets[key] = b
	}

	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens = min(float64(l.cfg.Burst), b.tokens+elapsed*l.cfg.RefillRate)
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// ClientKey derives the limiter key for a request: the remote IP.
func ClientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
