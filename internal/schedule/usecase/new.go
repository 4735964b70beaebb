package usecase

import (
	"time"

	"calendar-assistant/internal/queryparser"
	"calendar-assistant/internal/schedule"
	"calendar-assistant/internal/schedule/repository"
	"calendar-assistant/pkg/log"

	"github.com/prometheus/client_golang/prometheus"
)

// Options configures the schedule use case.
type Options struct {
	Location      *time.Location
	UpcomingLimit int
	// Registerer receives the outcome counter. Nil disables metrics.
	Registerer prometheus.Registerer
}

// implUseCase is the private implementation of schedule.UseCase.
type implUseCase struct {
	l             log.Logger
	parser        queryparser.Parser
	repo          repository.Repository
	loc           *time.Location
	upcomingLimit int
	metrics       *metrics
	now           func() time.Time
}

// New creates a new schedule UseCase implementation.
func New(l log.Logger, parser queryparser.Parser, repo repository.Repository, opts Options) (schedule.UseCase, error) {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	limit := opts.UpcomingLimit
	if limit <= 0 {
		limit = schedule.DefaultUpcomingLimit
	}
	if limit > schedule.MaxUpcomingLimit {
		limit = schedule.MaxUpcomingLimit
	}

	m, err := newMetrics(opts.Registerer)
	if err != nil {
		return nil, err
	}

	return &implUseCase{
		l:             l,
		parser:        parser,
		repo:          repo,
		loc:           loc,
		upcomingLimit: limit,
		metrics:       m,
		now:           time.Now,
	}, nil
}
