package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/osse101/chestmenus/internal/logger"
	"github.com/osse101/chestmenus/internal/metrics"
)

// GuardConfig sets the per-client limits of the admin API.
type GuardConfig struct {
	// MaxRequests per Window for one client address. 0 disables the limit.
	MaxRequests int
	Window      time.Duration
	// FailedAuthAlert is the failure count at which a client is reported.
	FailedAuthAlert int
	// TrustedProxies may set X-Forwarded-For.
	TrustedProxies []string
}

// ClientGuard tracks request and failed key counts per client address. All
// counters restart together when the window elapses.
type ClientGuard struct {
	cfg GuardConfig
	now func() time.Time

	mu          sync.Mutex
	windowStart time.Time
	requests    map[string]int
	failures    map[string]int
}

// NewClientGuard creates a guard. A non-positive window falls back to
// DefaultGuardWindow.
func NewClientGuard(cfg GuardConfig) *ClientGuard {
	if cfg.Window <= 0 {
		cfg.Window = DefaultGuardWindow
	}
	g := &ClientGuard{cfg: cfg, now: time.Now}
	g.resetLocked()
	return g
}

// ClientIP returns the address a request is counted against. X-Forwarded-For
// is honoured only from a trusted proxy, and then its rightmost entry.
func (g *ClientGuard) ClientIP(r *http.Request) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}
	if !slices.Contains(g.cfg.TrustedProxies, remoteIP) {
		return remoteIP
	}
	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

// failedAuth counts a rejected key and returns the client's failures so far.
func (g *ClientGuard) failedAuth(ip string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.rollLocked()
	g.failures[ip]++
	return g.failures[ip]
}

// allow counts a request and reports whether the client is within its limit.
func (g *ClientGuard) allow(ip string) (bool, int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.rollLocked()
	g.requests[ip]++
	n := g.requests[ip]
	return g.cfg.MaxRequests == 0 || n <= g.cfg.MaxRequests, n
}

func (g *ClientGuard) rollLocked() {
	if g.now().Sub(g.windowStart) >= g.cfg.Window {
		g.resetLocked()
	}
}

func (g *ClientGuard) resetLocked() {
	g.windowStart = g.now()
	g.requests = make(map[string]int)
	g.failures = make(map[string]int)
}

func isPublicPath(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// AuthMiddleware requires the API key on every non-public path. Clients that
// reach the alert threshold are logged once per threshold multiple.
func AuthMiddleware(apiKey string, guard *ClientGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			// constant time to avoid leaking the key through timing
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			ip := guard.ClientIP(r)
			failures := guard.failedAuth(ip)
			metrics.AdminRejectionsTotal.WithLabelValues(metrics.ReasonUnauthorized).Inc()

			logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
				"path", r.URL.Path,
				"has_key", providedKey != "",
				"ip", ip)
			if threshold := guard.cfg.FailedAuthAlert; threshold > 0 && failures%threshold == 0 {
				slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", failures, "window", guard.cfg.Window)
			}

			http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
		})
	}
}

// RateLimitMiddleware rejects clients over their request limit for the
// current window.
func RateLimitMiddleware(guard *ClientGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := guard.ClientIP(r)
			ok, count := guard.allow(ip)
			if !ok {
				metrics.AdminRejectionsTotal.WithLabelValues(metrics.ReasonRateLimited).Inc()
				// the first rejection and every HighRateLogEvery after it
				if (count-guard.cfg.MaxRequests-1)%HighRateLogEvery == 0 {
					slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", count)
				}
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
