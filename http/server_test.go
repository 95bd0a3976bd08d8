package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/resumebase/visitcount/counter"
	"github.com/resumebase/visitcount/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMux_CounterRoute(t *testing.T) {
	svc := counter.NewService(store.NewMemoryStore(), "visitor-count")
	mux := NewMux(NewHandler(svc), svc)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotNil(t, env.Count)
	assert.Equal(t, int64(1), *env.Count)
}

func TestMux_Healthz(t *testing.T) {
	svc := counter.NewService(store.NewMemoryStore(), "visitor-count")
	mux := NewMux(NewHandler(svc), svc)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var health counter.Health
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "visitor-count", health.Table)
}

func TestMux_Metrics(t *testing.T) {
	svc := counter.NewService(store.NewMemoryStore(), "visitor-count")
	mux := NewMux(NewHandler(svc), svc)

	// Hit the counter once so the request metric has a sample.
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "visitcount_http_requests_total")
}
