package fakeapi

import (
	"crypto/subtle"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"ekey-bionyx/pkg/response"
)

const (
	limiterCacheSize = 1000
	limiterTTL       = 5 * time.Minute
)

// authenticate rejects requests without a valid bearer token and throttles
// each token separately.
func (srv *Server) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok || !srv.tokenAccepted(token) {
			srv.l.Debugf(c.Request.Context(), "fakeapi: rejected token on %s %s", c.Request.Method, c.Request.URL.Path)
			response.Unauthorized(c)
			return
		}

		if err := srv.limiter.Allow(token); err != nil {
			response.TooManyRequests(c, srv.limiter.retryAfter())
			return
		}

		c.Next()
	}
}

func (srv *Server) tokenAccepted(token string) bool {
	if srv.token == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(srv.token)) == 1
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// rateLimiter keeps one token bucket per key; idle keys expire from the cache.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// newRateLimiter returns nil when requestsPerMin is not positive, which disables limiting.
func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		return nil
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	if rl == nil {
		return nil
	}

	if !rl.limiter(key).Allow() {
		return ErrRateLimited
	}
	return nil
}

// limiter returns the bucket for key, creating it under the lock so concurrent
// first requests share one bucket.
func (rl *rateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter
}

func (rl *rateLimiter) retryAfter() time.Duration {
	if rl == nil || rl.rate <= 0 {
		return time.Second
	}
	return time.Duration(float64(time.Second) / float64(rl.rate))
}
