package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/couchcryptid/storm-data-web/internal/mapnav"
	"github.com/couchcryptid/storm-data-web/internal/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes the web client's pages, its notification and navigation
// endpoints, and the health, readiness and metrics routes.
type Server struct {
	httpServer    *http.Server
	notifications NotificationService
	push          mapnav.Opener
	metrics       *observability.Metrics
	logger        *slog.Logger
}

// NewServer creates the HTTP server. A nil push opener makes /navigate
// answer with a redirect; otherwise the target is pushed through it.
func NewServer(
	addr string,
	ready sharedobs.ReadinessChecker,
	notifications NotificationService,
	push mapnav.Opener,
	metrics *observability.Metrics,
	logger *slog.Logger,
) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		notifications: notifications,
		push:          push,
		metrics:       metrics,
		logger:        logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /navigate", s.handleNavigate)

	mux.HandleFunc("GET /api/notifications", s.handleListNotifications)
	mux.HandleFunc("GET /api/notifications/unread-count", s.handleUnreadCount)
	mux.HandleFunc("GET /api/notifications/{id}", s.handleGetNotification)
	mux.HandleFunc("PUT /api/notifications/{id}/read", s.handleMarkRead)
	mux.HandleFunc("PUT /api/notifications/read-all", s.handleMarkAllRead)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}
