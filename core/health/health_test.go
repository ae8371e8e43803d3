package health_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/obfuscation/core/health"
	"github.com/dmitrymomot/obfuscation/core/response"
	"github.com/dmitrymomot/obfuscation/core/router"
)

func newRouter(register func(r router.Router[*router.Context])) http.Handler {
	r := router.New(router.WithErrorHandler[*router.Context](response.JSONErrorHandler[*router.Context]))
	register(r)
	return r
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestLiveness(t *testing.T) {
	t.Parallel()

	h := newRouter(func(r router.Router[*router.Context]) {
		r.Get("/health/live", health.Liveness[*router.Context])
	})

	w := get(h, "/health/live")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ALIVE", w.Body.String())
}

func TestStatus(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))
	h := newRouter(func(r router.Router[*router.Context]) {
		r.Get("/health", health.Status[*router.Context]("obfuscation", func() time.Time { return fixed }))
	})

	w := get(h, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var report health.StatusReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "healthy", report.Status)
	assert.Equal(t, "obfuscation", report.Service)
	assert.True(t, fixed.Equal(report.Timestamp))
	assert.Contains(t, w.Body.String(), `"timestamp":"2024-05-01T11:00:00Z"`)
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	t.Run("all checks pass", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		ok := func(context.Context) error { calls.Add(1); return nil }

		h := newRouter(func(r router.Router[*router.Context]) {
			r.Get("/ready", health.Readiness[*router.Context](slog.Default(),
				health.Check{Name: "a", Fn: ok},
				health.Check{Name: "b", Fn: ok},
			))
		})

		w := get(h, "/ready")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "READY", w.Body.String())
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("no checks", func(t *testing.T) {
		t.Parallel()

		h := newRouter(func(r router.Router[*router.Context]) {
			r.Get("/ready", health.Readiness[*router.Context](slog.Default()))
		})
		assert.Equal(t, http.StatusOK, get(h, "/ready").Code)
	})

	t.Run("failing check is logged and returns 503", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		h := newRouter(func(r router.Router[*router.Context]) {
			r.Get("/ready", health.Readiness[*router.Context](log,
				health.Check{Name: "ok", Fn: func(context.Context) error { return nil }},
				health.Check{Name: "codec", Fn: func(context.Context) error { return errors.New("round trip mismatch") }},
			))
		})

		w := get(h, "/ready")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"service_unavailable"`)
		assert.Contains(t, buf.String(), "codec: round trip mismatch")
	})
}
