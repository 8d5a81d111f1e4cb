package middleware

import (
	"voice-task-extractor/internal/metrics"
	"voice-task-extractor/pkg/log"
)

// Config configures the middleware chain.
type Config struct {
	RequestsPerMin int // per client IP; 0 disables rate limiting
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
	metrics *metrics.Metrics
}

// New creates the middleware set. m may be nil.
func New(l log.Logger, cfg Config, m *metrics.Metrics) Middleware {
	mw := Middleware{
		l:       l,
		metrics: m,
	}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
