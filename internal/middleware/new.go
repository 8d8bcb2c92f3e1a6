package middleware

import (
	"jarvis-assistant/pkg/log"
)

// Config holds the middleware settings.
type Config struct {
	AllowedOrigins  []string
	RateLimitPerMin int
}

type Middleware struct {
	l              log.Logger
	allowedOrigins []string
	limiter        *rateLimiter // nil when rate limiting is disabled
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:              l,
		allowedOrigins: cfg.AllowedOrigins,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
