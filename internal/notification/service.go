// Package notification maps notification operations onto the backend API.
//
// The service is deliberately thin: it picks the method and path, passes
// the response body through untouched and returns API errors as they come.
// It does not retry, translate errors or log.
package notification

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"

	"github.com/couchcryptid/storm-data-web/internal/domain"
)

// ErrEmptyID is returned when an operation needs a notification id and got
// none. No request is sent in that case.
var ErrEmptyID = errors.New("notification id is empty")

// API is the HTTP client the service issues requests through.
type API interface {
	Get(ctx context.Context, path string) (json.RawMessage, error)
	Put(ctx context.Context, path string, body any) (json.RawMessage, error)
}

// Service issues notification requests.
type Service struct {
	api API
}

// NewService creates a notification service backed by api.
func NewService(api API) *Service {
	return &Service{api: api}
}

// GetNotifications lists the current user's notifications. The body is
// returned exactly as the API sent it, whatever its shape.
func (s *Service) GetNotifications(ctx context.Context) (json.RawMessage, error) {
	return s.api.Get(ctx, "/notifications")
}

// GetNotification fetches a single notification record.
func (s *Service) GetNotification(ctx context.Context, id domain.NotificationID) (domain.Notification, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	return s.api.Get(ctx, "/notifications/"+url.PathEscape(id.String()))
}

// GetUnreadCount returns the unread count exactly as the API reports it.
func (s *Service) GetUnreadCount(ctx context.Context) (json.RawMessage, error) {
	return s.api.Get(ctx, "/notifications/unread-count")
}

// MarkRead marks one notification as read.
func (s *Service) MarkRead(ctx context.Context, id domain.NotificationID) (json.RawMessage, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	return s.api.Put(ctx, "/notifications/"+url.PathEscape(id.String())+"/read", nil)
}

// MarkAllRead marks every notification as read.
func (s *Service) MarkAllRead(ctx context.Context) (json.RawMessage, error) {
	return s.api.Put(ctx, "/notifications/read-all", nil)
}
