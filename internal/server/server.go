package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/chestmenus/internal/handler"
	"github.com/osse101/chestmenus/internal/logger"
	"github.com/osse101/chestmenus/internal/metrics"
	"github.com/osse101/chestmenus/internal/sse"
)

// Options carries what the router needs besides the services.
type Options struct {
	Port        int
	APIKey      string
	Guard       GuardConfig
	ServiceName string
	Version     string
	// Events, when set, is streamed at /api/v1/events.
	Events *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, registry handler.MenuRegistry, reloads handler.ReloadService) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, registry, reloads),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// NewRouter builds the HTTP routes. Middleware executes in the order it is
// added, outermost first.
func NewRouter(opts Options, registry handler.MenuRegistry, reloads handler.ReloadService) http.Handler {
	r := chi.NewRouter()

	guard := NewClientGuard(opts.Guard)

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, guard))
	r.Use(RateLimitMiddleware(guard))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(reloads))
	r.Get("/version", handler.HandleVersion(opts.ServiceName, opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	menuHandler := handler.NewMenuHandler(registry)
	reloadHandler := handler.NewReloadHandler(reloads)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/menus", menuHandler.HandleListMenus)
		r.Get("/menus/{file}", menuHandler.HandleGetMenu)
		r.Get("/commands/{command}", menuHandler.HandleGetCommand)

		if opts.Events != nil {
			r.Get("/events", sse.Handler(opts.Events))
		}

		r.Route("/admin", func(r chi.Router) {
			r.Get("/reload", reloadHandler.HandleGetLastReload)
			r.Post("/reload", reloadHandler.HandleReload)
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush lets streaming handlers flush through the wrapper.
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Probes and scrapes are too frequent to log
		for _, path := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, path) {
				next.ServeHTTP(w, r)
				return
			}
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
