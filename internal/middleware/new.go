package middleware

import (
	"voice-task-management/config"
	"voice-task-management/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the shared middleware set. Rate limiting is skipped when
// cfg.Enabled is false.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if cfg.Enabled {
		mw.limiter = newRateLimiter(cfg)
	}
	return mw
}
