package gcalendar

import (
	"context"
	"fmt"
	"sync"
	"time"

	"calendar-assistant/internal/schedule/repository"
	"calendar-assistant/pkg/gcalendar"
	"calendar-assistant/pkg/log"
)

// calendarClient is the subset of *gcalendar.Client the repository needs.
type calendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// ClientFactory builds the calendar client on first use.
type ClientFactory func(ctx context.Context) (calendarClient, error)

// Config holds the gateway settings.
type Config struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	Timeout         time.Duration
}

type implRepository struct {
	l       log.Logger
	cfg     Config
	factory ClientFactory

	mu     sync.Mutex
	client calendarClient
}

// New creates a Google Calendar backed Repository. The client is built lazily
// from the credential files on the first call and then reused.
func New(l log.Logger, cfg Config) repository.Repository {
	return newRepository(l, cfg, func(ctx context.Context) (calendarClient, error) {
		return gcalendar.NewClientFromCredentialsFile(ctx, cfg.CredentialsPath, cfg.TokenPath)
	})
}

func newRepository(l log.Logger, cfg Config, factory ClientFactory) *implRepository {
	if cfg.CalendarID == "" {
		cfg.CalendarID = gcalendar.DefaultCalendarID
	}
	return &implRepository{l: l, cfg: cfg, factory: factory}
}

// getClient returns the shared client, building it if needed. A failed build is
// not cached, so the next request tries again.
func (r *implRepository) getClient(ctx context.Context) (calendarClient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.client != nil {
		return r.client, nil
	}

	client, err := r.factory(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToInit, err)
	}
	r.client = client
	r.l.Infof(ctx, "%s: calendar client initialized for calendar %q", r.dsn("getClient"), r.cfg.CalendarID)
	return client, nil
}

// withTimeout bounds a single provider call.
func (r *implRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.cfg.Timeout)
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("schedule/repository/gcalendar.%s", method)
}
