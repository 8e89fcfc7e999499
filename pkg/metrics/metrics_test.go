package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("spa-board-test")

	m.AssignmentSaved("create")
	m.AssignmentSaved("create")
	m.AssignmentSaved("edit")
	m.ServiceCompleted()
	m.StatusTransition("available", "occupied")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.assignmentsSaved.WithLabelValues("create")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.assignmentsSaved.WithLabelValues("edit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.servicesCompleted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statusTransitions.WithLabelValues("available", "occupied")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New("spa-board-test")
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/beds", http.StatusOK, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/api/v1/beds",service="spa-board-test",status="200"} 1`)
}

func TestMetrics_TrackBeds(t *testing.T) {
	m := New("spa-board-test")
	counts := map[string]int{"available": 3, "occupied": 1}
	require.NoError(t, m.TrackBeds(func() map[string]int { return counts }))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `beds{service="spa-board-test",status="available"} 3`)

	counts = map[string]int{"available": 2, "occupied": 2}
	rec = httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `beds{service="spa-board-test",status="occupied"} 2`)
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.AssignmentSaved("create")
		m.ServiceCompleted()
		m.StatusTransition("available", "occupied")
		assert.NoError(t, m.TrackBeds(func() map[string]int { return nil }))
		m.ObserveHTTPRequest("GET", "/beds", 200, 0)
	})
}
