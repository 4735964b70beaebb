package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"calendar-assistant/internal/middleware"
	"calendar-assistant/internal/schedule"
	"calendar-assistant/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Middleware & metrics
	mw       middleware.Middleware
	registry *prometheus.Registry

	// Schedule domain
	scheduleUC schedule.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// RateLimit
	RateLimitEnabled bool
	RequestsPerMin   int

	// Registry backs /metrics. Nil creates a private registry.
	Registry *prometheus.Registry

	// Schedule domain
	ScheduleUseCase schedule.UseCase
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: shutdownTimeout,
		registry:        registry,
		scheduleUC:      cfg.ScheduleUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	mw, err := middleware.New(logger, middleware.Config{
		RateLimitEnabled: cfg.RateLimitEnabled,
		RequestsPerMin:   cfg.RequestsPerMin,
		Registerer:       registry,
	})
	if err != nil {
		return nil, err
	}
	srv.mw = mw

	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.scheduleUC == nil {
		return errors.New("schedule use case is required")
	}
	return nil
}
