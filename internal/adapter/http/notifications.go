package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/couchcryptid/storm-data-web/internal/adapter/api"
	"github.com/couchcryptid/storm-data-web/internal/domain"
	"github.com/couchcryptid/storm-data-web/internal/notification"
)

// NotificationService is the notification API the handlers expose.
type NotificationService interface {
	GetNotifications(ctx context.Context) (json.RawMessage, error)
	GetNotification(ctx context.Context, id domain.NotificationID) (domain.Notification, error)
	GetUnreadCount(ctx context.Context) (json.RawMessage, error)
	MarkRead(ctx context.Context, id domain.NotificationID) (json.RawMessage, error)
	MarkAllRead(ctx context.Context) (json.RawMessage, error)
}

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	body, err := s.notifications.GetNotifications(r.Context())
	s.writePassthrough(w, r, body, err)
}

func (s *Server) handleGetNotification(w http.ResponseWriter, r *http.Request) {
	body, err := s.notifications.GetNotification(r.Context(), domain.NotificationID(r.PathValue("id")))
	s.writePassthrough(w, r, body, err)
}

func (s *Server) handleUnreadCount(w http.ResponseWriter, r *http.Request) {
	body, err := s.notifications.GetUnreadCount(r.Context())
	s.writePassthrough(w, r, body, err)
}

func (s *Server) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	body, err := s.notifications.MarkRead(r.Context(), domain.NotificationID(r.PathValue("id")))
	s.writePassthrough(w, r, body, err)
}

func (s *Server) handleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	body, err := s.notifications.MarkAllRead(r.Context())
	s.writePassthrough(w, r, body, err)
}

// writePassthrough copies an API body to the client byte for byte.
func (s *Server) writePassthrough(w http.ResponseWriter, r *http.Request, body json.RawMessage, err error) {
	if err != nil {
		s.writeUpstreamError(w, r, err)
		return
	}
	if len(body) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// writeUpstreamError relays API status errors as-is and reports everything
// else as a bad gateway.
func (s *Server) writeUpstreamError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, notification.ErrEmptyID) {
		sharedobs.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		s.logger.Warn("notification api returned error",
			"path", r.URL.Path,
			"upstream_status", statusErr.StatusCode,
		)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusErr.StatusCode)
		_, _ = w.Write(statusErr.Body)
		return
	}

	s.logger.Error("notification api request failed", "path", r.URL.Path, "error", err)
	sharedobs.WriteJSON(w, http.StatusBadGateway, map[string]string{"error": "notification service unavailable"})
}
