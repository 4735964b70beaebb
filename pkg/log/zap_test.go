package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"calendar-assistant/pkg/log"
)

func TestRequestID(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", log.RequestID(ctx))
	assert.Empty(t, log.RequestID(context.Background()))
}

func TestInit(t *testing.T) {
	configs := []log.ZapConfig{
		{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
		{Level: "not-a-level", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
	}

	for _, cfg := range configs {
		l := log.Init(cfg)
		assert.NotNil(t, l)
		l.Infof(log.WithRequestID(context.Background(), "abc"), "hello %s", "world")
	}
}
