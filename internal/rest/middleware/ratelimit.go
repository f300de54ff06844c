package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/pointsclub/clubadmin/internal/config"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/logger"
	"golang.org/x/time/rate"
)

// limiters idle longer than this are dropped
const limiterIdleTTL = 15 * time.Minute

// ErrTooManyRequests is returned once a client exhausts its login attempts
var ErrTooManyRequests = ierr.NewError("too many login attempts").
	WithHint("Too many login attempts, try again in a minute").
	Mark(ierr.ErrRateLimited)

// LoginRateLimiter throttles login attempts per client IP with a token bucket
type LoginRateLimiter struct {
	limit    rate.Limit
	burst    int
	limiters *cache.Cache
	logger   *logger.Logger
}

func NewLoginRateLimiter(cfg *config.Configuration, logger *logger.Logger) *LoginRateLimiter {
	rl := cfg.Auth.LoginRateLimit
	l := &LoginRateLimiter{
		limit:    rate.Limit(float64(rl.RequestsPerMinute) / 60),
		burst:    rl.Burst,
		limiters: cache.New(limiterIdleTTL, limiterIdleTTL),
		logger:   logger,
	}
	if l.burst <= 0 {
		l.burst = 1
	}
	if rl.RequestsPerMinute <= 0 {
		l.limit = rate.Inf
	}
	return l
}

// Allow reports whether key may make another attempt now
func (l *LoginRateLimiter) Allow(key string) bool {
	if l.limit == rate.Inf {
		return true
	}

	var limiter *rate.Limiter
	if v, found := l.limiters.Get(key); found {
		limiter = v.(*rate.Limiter)
	} else {
		limiter = rate.NewLimiter(l.limit, l.burst)
		// another request may have stored one meanwhile
		if err := l.limiters.Add(key, limiter, cache.DefaultExpiration); err != nil {
			if v, found := l.limiters.Get(key); found {
				limiter = v.(*rate.Limiter)
			}
		}
	}
	// sliding expiry for active clients
	l.limiters.Set(key, limiter, cache.DefaultExpiration)
	return limiter.Allow()
}

func (l *LoginRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !l.Allow(ip) {
			l.logger.Warnw("login rate limited", "client_ip", ip)
			c.Header("Retry-After", "60")
			_ = c.Error(ErrTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}
