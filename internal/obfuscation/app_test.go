package obfuscation_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/obfuscation/core/server"
	"github.com/dmitrymomot/obfuscation/internal/obfuscation"
	"github.com/dmitrymomot/obfuscation/pkg/encid"
)

const (
	testSecret = "test-secret"
	// token for id 12345 under testSecret, without prefix
	referenceToken = "MzuJ5jXFBnxiLSZ-xD9uuCemFl4hChwoPrMqoWPZZEA"
)

func testConfig() obfuscation.Config {
	return obfuscation.Config{
		Server:   server.DefaultConfig(),
		Codec:    obfuscation.CodecConfig{Secret: testSecret, Prefix: "obf_"},
		AppName:  "obfuscation",
		Env:      "development",
		LogLevel: "info",
	}
}

func newTestApp(t *testing.T, cfg obfuscation.Config) *obfuscation.App {
	t.Helper()
	app, err := obfuscation.NewApp(cfg, obfuscation.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)
	return app
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

type errorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

func TestEncrypt(t *testing.T) {
	t.Parallel()

	h := newTestApp(t, testConfig()).Handler()

	w := get(t, h, "/api/obfuscation/encrypt/12345")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"value": "obf_" + referenceToken}, body)
}

func TestEncrypt_InvalidID(t *testing.T) {
	t.Parallel()

	h := newTestApp(t, testConfig()).Handler()

	for _, id := range []string{"abc", "1.5", "9223372036854775808", "0x10"} {
		w := get(t, h, "/api/obfuscation/encrypt/"+id)
		assert.Equal(t, http.StatusBadRequest, w.Code, id)

		var body errorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), id)
		assert.Equal(t, "bad_request", body.Code, id)
	}
}

func TestDecrypt(t *testing.T) {
	t.Parallel()

	h := newTestApp(t, testConfig()).Handler()

	t.Run("prefixed token", func(t *testing.T) {
		t.Parallel()

		w := get(t, h, "/api/obfuscation/decrypt/obf_"+referenceToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "12345\n", w.Body.String())
	})

	t.Run("bare token", func(t *testing.T) {
		t.Parallel()

		w := get(t, h, "/api/obfuscation/decrypt/"+referenceToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "12345\n", w.Body.String())
	})
}

func TestDecrypt_FailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	h := newTestApp(t, testConfig()).Handler()
	other := encid.MustNew("other-secret").Encode(12345).String()

	tampered := []byte(referenceToken)
	tampered[5] = 'A'
	if tampered[5] == referenceToken[5] {
		tampered[5] = 'B'
	}

	inputs := map[string]string{
		"malformed":    "not*base64",
		"short":        "AAAA",
		"too long":     referenceToken + "AAAA",
		"tampered":     string(tampered),
		"other secret": other,
		"prefix only":  "obf_",
	}

	var bodies []string
	for name, value := range inputs {
		w := get(t, h, "/api/obfuscation/decrypt/"+value)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)

		var body errorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), name)
		assert.Equal(t, "invalid_token", body.Code, name)
		assert.Equal(t, "invalid or corrupted token", body.Message, name)
		assert.Nil(t, body.Details, name)
		bodies = append(bodies, w.Body.String())
	}

	for _, b := range bodies[1:] {
		assert.Equal(t, bodies[0], b)
	}
}

func TestRoundTripOverHTTP(t *testing.T) {
	t.Parallel()

	h := newTestApp(t, testConfig()).Handler()

	for _, id := range []int64{0, -1, 1, 42, 9223372036854775807, -9223372036854775808} {
		w := get(t, h, "/api/obfuscation/encrypt/"+strconv.FormatInt(id, 10))
		require.Equal(t, http.StatusOK, w.Code)

		var enc obfuscation.EncryptResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &enc))
		assert.True(t, strings.HasPrefix(enc.Value.String(), "obf_"))

		w = get(t, h, "/api/obfuscation/decrypt/"+enc.Value.String())
		require.Equal(t, http.StatusOK, w.Code)

		var got int64
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, id, got)
	}
}

func TestDisablePrefix(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Codec.DisablePrefix = true
	h := newTestApp(t, cfg).Handler()

	w := get(t, h, "/api/obfuscation/encrypt/12345")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"value":"`+referenceToken+`"}`, w.Body.String())
}

func TestIndexAndHealth(t *testing.T) {
	t.Parallel()

	h := newTestApp(t, testConfig()).Handler()

	w := get(t, h, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, obfuscation.Banner, w.Body.String())

	w = get(t, h, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	var status struct {
		Status    string    `json:"status"`
		Service   string    `json:"service"`
		Timestamp time.Time `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "obfuscation", status.Service)
	assert.WithinDuration(t, time.Now(), status.Timestamp, time.Minute)

	assert.Equal(t, "ALIVE", get(t, h, "/health/live").Body.String())
	assert.Equal(t, "READY", get(t, h, "/health/ready").Body.String())
}

func TestCrossCutting(t *testing.T) {
	t.Parallel()

	h := newTestApp(t, testConfig()).Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/obfuscation/decrypt/bad", nil)
	req.Header.Set("Origin", "https://peer.example.com")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = get(t, h, "/api/obfuscation/unknown")
	assert.Equal(t, http.StatusNotFound, w.Code)
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "not_found", body.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/obfuscation/encrypt/1", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestNewApp_Errors(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Codec.Secret = ""
	_, err := obfuscation.NewApp(cfg)
	assert.ErrorIs(t, err, encid.ErrEmptySecret)

	cfg = testConfig()
	cfg.Server.Addr = ""
	_, err = obfuscation.NewApp(cfg)
	assert.ErrorIs(t, err, server.ErrMissingAddress)

	_, err = obfuscation.NewApp(testConfig(), obfuscation.WithCodec(nil))
	assert.ErrorIs(t, err, obfuscation.ErrNilCodec)
	_, err = obfuscation.NewApp(testConfig(), obfuscation.WithLogger(nil))
	assert.ErrorIs(t, err, obfuscation.ErrNilLogger)
	_, err = obfuscation.NewApp(testConfig(), obfuscation.WithRouter(nil))
	assert.ErrorIs(t, err, obfuscation.ErrNilRouter)
	_, err = obfuscation.NewApp(testConfig(), obfuscation.WithServer(nil))
	assert.ErrorIs(t, err, obfuscation.ErrNilServer)
}

func TestNewApp_WithCodec(t *testing.T) {
	t.Parallel()

	codec := encid.MustNew("other-secret")
	cfg := testConfig()
	cfg.Codec.Secret = ""

	app, err := obfuscation.NewApp(cfg, obfuscation.WithCodec(codec))
	require.NoError(t, err)
	assert.Same(t, codec, app.Codec())
}

func TestConfigLogValueHidesSecret(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	log.Info("config", slog.Any("config", testConfig()))

	assert.NotContains(t, buf.String(), testSecret)
	assert.Contains(t, buf.String(), `"secret_set":true`)
	assert.Contains(t, buf.String(), `"token_prefix":"obf_"`)
}

func TestSelfCheck(t *testing.T) {
	t.Parallel()

	check := obfuscation.SelfCheck(encid.MustNew(testSecret))
	require.NoError(t, check(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, check(ctx), context.Canceled)
}

func TestRun(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Server.Addr = "127.0.0.1:0"
	app := newTestApp(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	var addr string
	require.Eventually(t, func() bool {
		addr = app.Server().Addr()
		_, port, err := net.SplitHostPort(addr)
		return err == nil && port != "0"
	}, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Get("http://" + addr + "/api/obfuscation/encrypt/12345")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":"obf_`+referenceToken+`"}`, string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}
