package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/rangeroper/healthcare-scheduler/internal/httperr"
)

// limiterIdleTTL is how long an IP's bucket survives without requests. A
// bucket idle that long has refilled completely, so dropping it loses nothing.
const limiterIdleTTL = 10 * time.Minute

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiterStore holds one token bucket per client IP. Idle buckets are
// swept at most once per limiterIdleTTL, on the request path.
type rateLimiterStore struct {
	mu        sync.Mutex
	limiters  map[string]*ipLimiter
	perMin    int
	now       func() time.Time
	lastSweep time.Time
}

func newRateLimiterStore(perMin int, now func() time.Time) *rateLimiterStore {
	return &rateLimiterStore{
		limiters:  map[string]*ipLimiter{},
		perMin:    perMin,
		now:       now,
		lastSweep: now(),
	}
}

func (s *rateLimiterStore) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= limiterIdleTTL {
		s.sweep(now)
	}

	l, ok := s.limiters[ip]
	if !ok {
		l = &ipLimiter{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.perMin)), s.perMin),
		}
		s.limiters[ip] = l
	}
	l.lastSeen = now
	return l.limiter
}

func (s *rateLimiterStore) sweep(now time.Time) {
	for ip, l := range s.limiters {
		if now.Sub(l.lastSeen) >= limiterIdleTTL {
			delete(s.limiters, ip)
		}
	}
	s.lastSweep = now
}

func (s *rateLimiterStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limiters)
}

// RateLimit allows perMin requests per minute per client IP, with a burst
// of the same size.
func RateLimit(perMin int, log *zap.Logger) gin.HandlerFunc {
	store := newRateLimiterStore(perMin, time.Now)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !store.get(ip).Allow() {
			log.Warn("rate limit exceeded", zap.String("ip", ip))
			httperr.Abort(c, http.StatusTooManyRequests, "rate_limited", "Too many requests. Try again later.")
			return
		}
		c.Next()
	}
}
