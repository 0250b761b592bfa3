package middleware

import (
	"sync"

	"daily-task-agent/internal/metrics"
	"daily-task-agent/pkg/log"
)

// Middleware bundles the gin middlewares shared by every API route.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
	metrics *metrics.Metrics

	// mu serializes handlers that touch the task store.
	mu *sync.Mutex
}

// New creates the middleware set. A non-positive requestsPerMin disables rate limiting;
// m may be nil.
func New(l log.Logger, requestsPerMin int, m *metrics.Metrics) Middleware {
	mw := Middleware{
		l:       l,
		metrics: m,
		mu:      &sync.Mutex{},
	}
	if requestsPerMin > 0 {
		mw.limiter = newRateLimiter(requestsPerMin)
	}
	return mw
}
