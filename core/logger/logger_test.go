package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shellserve/core/logger"
)

func TestNewTextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Info("server started", logger.Port(53472))

	out := buf.String()
	assert.Contains(t, out, "server started")
	assert.Contains(t, out, "port=53472")
}

func TestNewJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithJSONFormatter(),
		logger.WithAttr(slog.String("app", "shellserve")),
	)

	log.Info("ready")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ready", record["msg"])
	assert.Equal(t, "shellserve", record["app"])
}

func TestLevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))

	log.Info("hidden")
	log.Warn("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	log := logger.Discard()
	assert.NotPanics(t, func() {
		log.Error("dropped", logger.Error(errors.New("boom")))
	})
}

func TestErrorAttr(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestRequestIDAttr(t *testing.T) {
	t.Parallel()

	attr := logger.RequestID("req-123")
	require.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "req-123", attr.Value.String())

	empty := logger.RequestID("")
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestDurationAttr(t *testing.T) {
	t.Parallel()

	d := 5 * time.Second
	attr := logger.Duration(d)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, d, attr.Value.Duration())
}

func TestElapsedAttr(t *testing.T) {
	t.Parallel()

	start := time.Now().Add(-500 * time.Millisecond)
	attr := logger.Elapsed(start)
	require.Equal(t, "elapsed", attr.Key)
	assert.GreaterOrEqual(t, attr.Value.Duration(), 500*time.Millisecond)
}
