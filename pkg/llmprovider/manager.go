package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"calendar-assistant/pkg/log"
)

// Manager performs exactly one bounded call to the configured provider and
// logs the outcome. It never retries.
type Manager struct {
	provider Provider
	config   *Config
	logger   log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	Timeout time.Duration
}

// NewManager creates a new Provider Manager with the given provider, config, and logger
func NewManager(provider Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	return &Manager{
		provider: provider,
		config:   config,
		logger:   logger,
	}
}

// Name returns the underlying provider name
func (m *Manager) Name() string {
	if m.provider == nil {
		return ""
	}
	return m.provider.Name()
}

// Model returns the underlying model name
func (m *Manager) Model() string {
	if m.provider == nil {
		return ""
	}
	return m.provider.Model()
}

// GenerateContent calls the provider once within the configured timeout.
// Failures are returned as *ProviderError; an expired deadline also matches ErrProviderTimeout.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if m.provider == nil {
		return nil, ErrNoProviderConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	if m.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := m.provider.GenerateContent(ctx, req)
	latency := time.Since(start)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%w after %s: %v", ErrProviderTimeout, latency.Round(time.Millisecond), err)
		}
		m.logFailure(ctx, latency, err)
		return nil, &ProviderError{Provider: m.provider.Name(), Err: err}
	}

	m.logSuccess(ctx, latency, resp)
	return resp, nil
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, latency time.Duration, resp *Response) {
	inputTokens, outputTokens := 0, 0
	if resp.Usage != nil {
		inputTokens, outputTokens = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Infof(ctx, "LLM generation successful: provider=%s model=%s latency_ms=%d input_tokens=%d output_tokens=%d",
		m.provider.Name(), m.provider.Model(), latency.Milliseconds(), inputTokens, outputTokens)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, latency time.Duration, err error) {
	m.logger.Warnf(ctx, "LLM generation failed: provider=%s model=%s latency_ms=%d error=%v",
		m.provider.Name(), m.provider.Model(), latency.Milliseconds(), err)
}
