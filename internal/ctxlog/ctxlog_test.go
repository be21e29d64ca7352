package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(NewPrettyHandler(buf, slog.LevelDebug))

	ctx := New(context.Background(), logger)
	require.Same(t, logger, Logger(ctx))

	Info(ctx, "hello", "key", "value")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "key=")
	assert.Contains(t, buf.String(), "value")
}

func TestLoggerFallsBackToDefault(t *testing.T) {
	assert.Same(t, DefaultLogger, Logger(context.Background()))
	assert.Same(t, DefaultLogger, Logger(New(context.Background(), nil)))
}

func TestPrettyHandlerLevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	h := NewPrettyHandler(buf, slog.LevelWarn)

	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestPrettyHandlerWithAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(NewPrettyHandler(buf, slog.LevelDebug)).With("doc", "paper")

	logger.Warn("step failed")
	assert.Contains(t, buf.String(), "doc=")
	assert.Contains(t, buf.String(), "paper")
	assert.Contains(t, buf.String(), "step failed")
}
