package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/obfuscation/core/logger"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestNew_Production(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithProduction("obfuscation"), logger.WithOutput(&buf))

	log.Debug("hidden")
	assert.Zero(t, buf.Len())

	log.Info("started", logger.Component("server"))
	m := decodeLine(t, &buf)
	assert.Equal(t, "started", m["msg"])
	assert.Equal(t, "obfuscation", m["service"])
	assert.Equal(t, "production", m["env"])
	assert.Equal(t, "server", m["component"])
}

func TestNew_Development(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithDevelopment("obfuscation"), logger.WithOutput(&buf))

	log.Debug("visible")
	assert.Contains(t, buf.String(), "msg=visible")
	assert.Contains(t, buf.String(), "env=development")
}

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	for env, isJSON := range map[string]bool{"production": true, " PROD ": true, "development": false, "": false, "staging": false} {
		var buf bytes.Buffer
		logger.New(logger.WithEnvironment(env, "svc"), logger.WithOutput(&buf)).Info("x")
		assert.Equal(t, isJSON, bytes.HasPrefix(buf.Bytes(), []byte("{")), env)
	}
}

func TestWithLevelAndAttr(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithJSONFormatter(),
		logger.WithLevel(slog.LevelWarn),
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("region", "eu")),
	)

	log.Info("dropped")
	assert.Zero(t, buf.Len())

	log.Warn("kept")
	assert.Equal(t, "eu", decodeLine(t, &buf)["region"])
}

func TestContextExtractors(t *testing.T) {
	t.Parallel()

	type key struct{}
	extract := func(ctx context.Context) (slog.Attr, bool) {
		id, ok := ctx.Value(key{}).(string)
		if !ok {
			return slog.Attr{}, false
		}
		return logger.RequestID(id), true
	}

	var buf bytes.Buffer
	log := logger.New(
		logger.WithJSONFormatter(),
		logger.WithOutput(&buf),
		logger.WithContextExtractors(extract),
	).With("component", "test")

	log.InfoContext(context.WithValue(context.Background(), key{}, "req-1"), "with id")
	m := decodeLine(t, &buf)
	assert.Equal(t, "req-1", m["request_id"])
	assert.Equal(t, "test", m["component"])

	buf.Reset()
	log.InfoContext(context.Background(), "without id")
	assert.NotContains(t, decodeLine(t, &buf), "request_id")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		level, err := logger.ParseLevel(tt.in)
		if tt.ok {
			require.NoError(t, err, tt.in)
		} else {
			require.Error(t, err, tt.in)
		}
		assert.Equal(t, tt.want, level, tt.in)
	}
}

func TestAttrHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
	assert.True(t, logger.Query("").Equal(slog.Attr{}))
	assert.True(t, logger.ClientIP("").Equal(slog.Attr{}))

	err := errors.New("boom")
	assert.Equal(t, "error", logger.Error(err).Key)
	assert.Equal(t, err, logger.Error(err).Value.Any())
	assert.Equal(t, int64(200), logger.StatusCode(200).Value.Int64())
	assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Duration())
	assert.Equal(t, "status", logger.Group("status", slog.Int("code", 1)).Key)
}
