package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/couchcryptid/storm-data-web/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mock API ---

type call struct {
	method string
	path   string
	body   any
}

type mockAPI struct {
	calls    []call
	response json.RawMessage
	err      error
}

func (m *mockAPI) Get(_ context.Context, path string) (json.RawMessage, error) {
	m.calls = append(m.calls, call{method: "GET", path: path})
	return m.response, m.err
}

func (m *mockAPI) Put(_ context.Context, path string, body any) (json.RawMessage, error) {
	m.calls = append(m.calls, call{method: "PUT", path: path, body: body})
	return m.response, m.err
}

// --- tests ---

func TestService_GetNotifications(t *testing.T) {
	api := &mockAPI{response: json.RawMessage(`[{"id":1,"title":"Hail"}, {"id":2,"extra":{"x":[1,2]}}]`)}
	svc := NewService(api)

	got, err := svc.GetNotifications(context.Background())
	require.NoError(t, err)

	require.Len(t, api.calls, 1)
	assert.Equal(t, call{method: "GET", path: "/notifications"}, api.calls[0])
	assert.Equal(t, `[{"id":1,"title":"Hail"}, {"id":2,"extra":{"x":[1,2]}}]`, string(got))
}

func TestService_GetNotifications_EmptyBody(t *testing.T) {
	svc := NewService(&mockAPI{})

	got, err := svc.GetNotifications(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestService_GetNotifications_EnvelopeBodyUnchanged(t *testing.T) {
	body := `{"data":[{"id":1}],"next":null}`
	svc := NewService(&mockAPI{response: json.RawMessage(body)})

	got, err := svc.GetNotifications(context.Background())
	require.NoError(t, err)
	assert.Equal(t, body, string(got))
}

func TestService_GetUnreadCount(t *testing.T) {
	api := &mockAPI{response: json.RawMessage(`{"count":3}`)}
	svc := NewService(api)

	got, err := svc.GetUnreadCount(context.Background())
	require.NoError(t, err)

	require.Len(t, api.calls, 1)
	assert.Equal(t, call{method: "GET", path: "/notifications/unread-count"}, api.calls[0])
	assert.Equal(t, `{"count":3}`, string(got))
}

func TestService_MarkRead(t *testing.T) {
	api := &mockAPI{response: json.RawMessage(`{"ok":true}`)}
	svc := NewService(api)

	got, err := svc.MarkRead(context.Background(), "42")
	require.NoError(t, err)

	require.Len(t, api.calls, 1)
	assert.Equal(t, call{method: "PUT", path: "/notifications/42/read"}, api.calls[0])
	assert.Equal(t, `{"ok":true}`, string(got))
}

func TestService_MarkRead_NumericID(t *testing.T) {
	api := &mockAPI{}
	svc := NewService(api)

	_, err := svc.MarkRead(context.Background(), domain.NotificationIDFromInt(7))
	require.NoError(t, err)
	assert.Equal(t, "/notifications/7/read", api.calls[0].path)
}

func TestService_MarkRead_EscapesID(t *testing.T) {
	api := &mockAPI{}
	svc := NewService(api)

	_, err := svc.MarkRead(context.Background(), "a/b c")
	require.NoError(t, err)
	assert.Equal(t, "/notifications/a%2Fb%20c/read", api.calls[0].path)
}

func TestService_EmptyIDSendsNothing(t *testing.T) {
	api := &mockAPI{}
	svc := NewService(api)

	_, err := svc.MarkRead(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyID)

	_, err = svc.GetNotification(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyID)

	assert.Empty(t, api.calls)
}

func TestService_MarkAllRead(t *testing.T) {
	api := &mockAPI{response: json.RawMessage(`{"updated":5}`)}
	svc := NewService(api)

	got, err := svc.MarkAllRead(context.Background())
	require.NoError(t, err)

	require.Len(t, api.calls, 1)
	assert.Equal(t, call{method: "PUT", path: "/notifications/read-all"}, api.calls[0])
	assert.Equal(t, `{"updated":5}`, string(got))
}

func TestService_GetNotification(t *testing.T) {
	api := &mockAPI{response: json.RawMessage(`{"id":"abc"}`)}
	svc := NewService(api)

	got, err := svc.GetNotification(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, call{method: "GET", path: "/notifications/abc"}, api.calls[0])
	assert.Equal(t, `{"id":"abc"}`, string(got))
}

func TestService_ErrorsPropagateUnchanged(t *testing.T) {
	upstream := errors.New("connection refused")
	svc := NewService(&mockAPI{err: upstream})
	ctx := context.Background()

	_, err := svc.GetNotifications(ctx)
	assert.Same(t, upstream, err)

	_, err = svc.GetUnreadCount(ctx)
	assert.Same(t, upstream, err)

	_, err = svc.MarkRead(ctx, "42")
	assert.Same(t, upstream, err)

	_, err = svc.MarkAllRead(ctx)
	assert.Same(t, upstream, err)

	_, err = svc.GetNotification(ctx, "42")
	assert.Same(t, upstream, err)
}
