package middleware

import (
	"calendar-assistant/pkg/log"

	"github.com/prometheus/client_golang/prometheus"
)

// Config configures the shared gin middlewares.
type Config struct {
	RateLimitEnabled bool
	RequestsPerMin   int
	// Registerer receives the request duration histogram. Nil uses the default registerer.
	Registerer prometheus.Registerer
}

type Middleware struct {
	l        log.Logger
	limiter  *rateLimiter
	duration *prometheus.HistogramVec
}

func New(l log.Logger, cfg Config) (Middleware, error) {
	duration, err := newDurationHistogram(cfg.Registerer)
	if err != nil {
		return Middleware{}, err
	}

	mw := Middleware{
		l:        l,
		duration: duration,
	}
	if cfg.RateLimitEnabled && cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw, nil
}
