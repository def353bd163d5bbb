package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/couchcryptid/storm-data-web/internal/observability"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"
)

func testClient(baseURL string, metrics *observability.Metrics) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics:    metrics,
		clock:      clockwork.NewFakeClock(),
	}
}

func TestClient_Get_ReturnsBodyVerbatim(t *testing.T) {
	const body = `[{"id": 1, "title":"Hail warning"},  {"id":2}]`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/notifications", r.URL.Path)
		assert.Equal(t, contentTypeJSON, r.Header.Get("Accept"))
		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	metrics := observability.NewMetricsForTesting()
	c := testClient(srv.URL, metrics)

	got, err := c.Get(context.Background(), "/notifications")
	require.NoError(t, err)
	assert.Equal(t, body, string(got))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.APIRequests.WithLabelValues("GET", "success")))
}

func TestClient_Put_NilBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/notifications/42/read", r.URL.Path)
		assert.Empty(t, r.Header.Get(headerContentType))
		data, _ := io.ReadAll(r.Body)
		assert.Empty(t, data)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, observability.NewMetricsForTesting())

	got, err := c.Put(context.Background(), "/notifications/42/read", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(got))
}

func TestClient_Put_JSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, contentTypeJSON, r.Header.Get(headerContentType))
		data, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"muted":true}`, string(data))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := testClient(srv.URL, observability.NewMetricsForTesting())

	got, err := c.Put(context.Background(), "/preferences", map[string]bool{"muted": true})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClient_Get_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Not Authorized"}`))
	}))
	defer srv.Close()

	metrics := observability.NewMetricsForTesting()
	c := testClient(srv.URL, metrics)

	_, err := c.Get(context.Background(), "/notifications")
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Equal(t, "/notifications", statusErr.Path)
	assert.JSONEq(t, `{"message":"Not Authorized"}`, string(statusErr.Body))
	assert.Contains(t, err.Error(), "401")
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.APIRequests.WithLabelValues("GET", "status_error")))
}

func TestClient_Get_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	metrics := observability.NewMetricsForTesting()
	c := testClient(srv.URL, metrics)
	c.httpClient = &http.Client{Timeout: 50 * time.Millisecond}

	_, err := c.Get(context.Background(), "/notifications")
	require.Error(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.APIRequests.WithLabelValues("GET", "transport_error")))
}

func TestClient_Get_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := testClient(srv.URL, observability.NewMetricsForTesting())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Get(ctx, "/notifications")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	c := NewClient("http://api.test/v1/", time.Second, slog.Default(), observability.NewMetricsForTesting())
	assert.Equal(t, "http://api.test/v1", c.baseURL)
}

func TestClient_CheckReadiness(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(http.StatusNotFound)
	}))

	c := testClient(srv.URL, observability.NewMetricsForTesting())
	require.NoError(t, c.CheckReadiness(context.Background()), "any HTTP answer means reachable")

	srv.Close()
	require.Error(t, c.CheckReadiness(context.Background()))
}
