package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/chestmenus/internal/metrics"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	guard := NewClientGuard(GuardConfig{FailedAuthAlert: 5})
	handler := AuthMiddleware(apiKey, guard)(okHandler())
	before := testutil.ToFloat64(metrics.AdminRejectionsTotal.WithLabelValues(metrics.ReasonUnauthorized))

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{"Valid API Key", apiKey, "/api/v1/menus", http.StatusOK},
		{"Invalid API Key", "wrong-key", "/api/v1/menus", http.StatusUnauthorized},
		{"Missing API Key", "", "/api/v1/admin/reload", http.StatusUnauthorized},
		{"Public Path - Healthz", "", "/healthz", http.StatusOK},
		{"Public Path - Metrics", "", "/metrics", http.StatusOK},
		{"Public Path - Version", "", "/version", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}

	assert.Equal(t, before+2, testutil.ToFloat64(metrics.AdminRejectionsTotal.WithLabelValues(metrics.ReasonUnauthorized)))
	guard.mu.Lock()
	defer guard.mu.Unlock()
	assert.Equal(t, 2, guard.failures["192.0.2.1"], "httptest requests come from 192.0.2.1")
}

func TestAuthMiddleware_AlertsAtThreshold(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	handler := AuthMiddleware("k", NewClientGuard(GuardConfig{FailedAuthAlert: 3}))(okHandler())
	fail := func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/v1/menus", nil))
	}

	fail()
	fail()
	assert.NotContains(t, buf.String(), SecurityAlertFailedAuth)
	fail()
	assert.Equal(t, 1, strings.Count(buf.String(), SecurityAlertFailedAuth))
	fail()
	assert.Equal(t, 1, strings.Count(buf.String(), SecurityAlertFailedAuth))
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	expectedHeaders := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "SAMEORIGIN",
		"X-XSS-Protection":       "1; mode=block",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for header, expected := range expectedHeaders {
		assert.Equal(t, expected, rec.Header().Get(header), header)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	const limit = 20
	guard := NewClientGuard(GuardConfig{MaxRequests: limit, Window: time.Minute})
	clock := time.Now()
	guard.now = func() time.Time { return clock }
	guard.resetLocked()
	handler := RateLimitMiddleware(guard)(okHandler())
	before := testutil.ToFloat64(metrics.AdminRejectionsTotal.WithLabelValues(metrics.ReasonRateLimited))

	serve := func(ip string) int {
		req := httptest.NewRequest("GET", "/api/v1/menus", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < limit; i++ {
		require.Equal(t, http.StatusOK, serve("192.168.1.100"), "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, serve("192.168.1.100"))
	assert.Equal(t, http.StatusOK, serve("192.168.1.101"), "limits are per client")
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.AdminRejectionsTotal.WithLabelValues(metrics.ReasonRateLimited)))

	clock = clock.Add(time.Minute)
	assert.Equal(t, http.StatusOK, serve("192.168.1.100"), "a new window starts from zero")
}

func TestRateLimitMiddleware_ZeroDisablesLimit(t *testing.T) {
	handler := RateLimitMiddleware(NewClientGuard(GuardConfig{}))(okHandler())
	for i := 0; i < 3*HighRateLogEvery; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/menus", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestNewClientGuard_DefaultWindow(t *testing.T) {
	assert.Equal(t, DefaultGuardWindow, NewClientGuard(GuardConfig{}).cfg.Window)
	assert.Equal(t, time.Second, NewClientGuard(GuardConfig{Window: time.Second}).cfg.Window)
}

func TestClientGuard_ClientIP(t *testing.T) {
	tests := []struct {
		name      string
		remote    string
		forwarded string
		trusted   []string
		want      string
	}{
		{"direct", "10.0.0.5:4000", "", nil, "10.0.0.5"},
		{"untrusted forwarder ignored", "10.0.0.5:4000", "1.2.3.4", nil, "10.0.0.5"},
		{"trusted proxy", "10.0.0.1:4000", "1.2.3.4, 5.6.7.8", []string{"10.0.0.1"}, "5.6.7.8"},
		{"trusted proxy without header", "10.0.0.1:4000", "", []string{"10.0.0.1"}, "10.0.0.1"},
		{"unparsable remote", "garbage", "", nil, "garbage"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			guard := NewClientGuard(GuardConfig{TrustedProxies: tt.trusted})
			assert.Equal(t, tt.want, guard.ClientIP(req))
		})
	}
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(previous) })

	req := httptest.NewRequest("GET", "/api/v1/menus", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")

	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "Bearer mytoken")
	assert.Contains(t, out, "TestAgent")
	assert.Contains(t, out, "request_id")
}

func TestLoggingMiddleware_SkipsProbes(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(previous) })

	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/healthz", nil))

	assert.Empty(t, buf.String())
}
