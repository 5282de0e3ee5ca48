package metrics

import (
	"database/sql"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mockService "pushgate/internal/mocks/service"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	return string(body)
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}

func TestObserveDispatch(t *testing.T) {
	m := New()

	m.ObserveDispatch("multicast", "PARTIAL", 1100, 100, 250*time.Millisecond)
	m.ObserveDispatch("single", "SENT", 1, 0, 10*time.Millisecond)

	body := scrape(t, m)

	assert.Contains(t, body, `pushgate_dispatch_notifications_total{mode="multicast",status="PARTIAL"} 1`)
	assert.Contains(t, body, `pushgate_dispatch_tokens_total{mode="multicast",outcome="success"} 1100`)
	assert.Contains(t, body, `pushgate_dispatch_tokens_total{mode="multicast",outcome="failure"} 100`)
	assert.Contains(t, body, `pushgate_dispatch_duration_seconds_count{mode="single"} 1`)
}

func TestObserveHTTPRequest(t *testing.T) {
	m := New()

	m.ObserveHTTPRequest(http.MethodPost, "/api/notifications", http.StatusOK, 5*time.Millisecond)

	body := scrape(t, m)

	assert.Contains(t, body, `pushgate_http_requests_total{code="200",method="POST",route="/api/notifications"} 1`)
}

func TestRegisterBackendGauge(t *testing.T) {
	m := New()
	registry := mockService.NewMockPushBackendRegistry(t)
	registry.EXPECT().Len().Return(3)

	m.RegisterBackendGauge(registry)

	assert.Contains(t, scrape(t, m), "pushgate_registry_cached_backends 3")
}

func TestRegisterDBStats(t *testing.T) {
	db, err := sql.Open("pgx", "postgres://pushgate@127.0.0.1:1/pushgate")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m := New()
	require.NoError(t, m.RegisterDBStats(db, "pushgate"))
	assert.Error(t, m.RegisterDBStats(db, "pushgate"), "duplicate collectors are rejected")

	assert.Contains(t, scrape(t, m), `go_sql_max_open_connections{db_name="pushgate"} 0`)
}
