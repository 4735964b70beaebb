package usecase

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	sourceQuery = "query"
	sourceEvent = "event"

	outcomeCreated      = "created"
	outcomeRejected     = "rejected"
	outcomeInvalid      = "invalid"
	outcomeParseFailed  = "parse_failed"
	outcomeCreateFailed = "create_failed"
)

type metrics struct {
	outcomes *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "schedule_requests_total",
			Help: "Scheduling requests by input source and outcome.",
		}, []string{"source", "outcome"}),
	}
	if reg == nil {
		return m, nil
	}
	if err := reg.Register(m.outcomes); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			m.outcomes = already.ExistingCollector.(*prometheus.CounterVec)
			return m, nil
		}
		return nil, fmt.Errorf("register schedule metrics: %w", err)
	}
	return m, nil
}

func (m *metrics) observe(source, outcome string) {
	m.outcomes.WithLabelValues(source, outcome).Inc()
}
