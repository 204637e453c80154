package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Global-Manu-Man/cnk-ceneka/internal/error/code"
	"github.com/Global-Manu-Man/cnk-ceneka/internal/error/response"
)

// TokenBucket is a simple token bucket limiter
type TokenBucket struct {
	rate       float64
	capacity   int
	tokens     float64
	lastRefill time.Time
	lastSeen   time.Time
	mu         sync.Mutex
}

// NewTokenBucket creates a bucket that refills rate tokens per second up
// to capacity
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	now := time.Now()
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: now,
		lastSeen:   now,
	}
}

// Allow consumes one token if available
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now
	tb.lastSeen = now

	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}
	return false
}

var (
	ipLimiters   = make(map[string]*TokenBucket)
	ipLimitersMu sync.Mutex
)

// limiter expiry: buckets idle longer than this are dropped by the sweeper
const limiterIdleExpiry = 1 * time.Hour

func getIPLimiter(ip string, rate float64, burst int) *TokenBucket {
	ipLimitersMu.Lock()
	defer ipLimitersMu.Unlock()

	limiter, exists := ipLimiters[ip]
	if !exists {
		limiter = NewTokenBucket(rate, burst)
		ipLimiters[ip] = limiter
	}
	return limiter
}

// IPRateLimiter limits each client IP to rate requests per second with
// the given burst allowance
func IPRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := getIPLimiter(c.ClientIP(), rate, burst)
		if !limiter.Allow() {
			response.FailWithMessage(c, code.ErrTooManyRequests, "Demasiadas solicitudes, intente de nuevo más tarde")
			c.Abort()
			return
		}
		c.Next()
	}
}

func init() {
	go func() {
		ticker := time.NewTicker(limiterIdleExpiry)
		defer ticker.Stop()
		for range ticker.C {
			sweepIdleLimiters()
		}
	}()
}

func sweepIdleLimiters() {
	cutoff := time.Now().Add(-limiterIdleExpiry)
	ipLimitersMu.Lock()
	defer ipLimitersMu.Unlock()
	for ip, limiter := range ipLimiters {
		limiter.mu.Lock()
		idle := limiter.lastSeen.Before(cutoff)
		limiter.mu.Unlock()
		if idle {
			delete(ipLimiters, ip)
		}
	}
}
