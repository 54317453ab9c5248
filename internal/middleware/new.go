package middleware

import (
	"agent-router/config"
	"agent-router/pkg/log"
)

type Middleware struct {
	l       log.Logger
	cors    config.CORSConfig
	limiter *rateLimiter
}

// New builds the middleware set. A non-positive rate limit disables limiting.
func New(l log.Logger, cfg config.HTTPServerConfig) Middleware {
	mw := Middleware{
		l:    l,
		cors: cfg.CORS,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
