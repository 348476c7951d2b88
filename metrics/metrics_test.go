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

func TestObserveCalculation(t *testing.T) {
	m := New("test", false)

	m.ObserveCalculation("loan", OutcomeOK)
	m.ObserveCalculation("loan", OutcomeOK)
	m.ObserveCalculation("risk", OutcomeInvalid)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.calculations.WithLabelValues("loan", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calculations.WithLabelValues("risk", OutcomeInvalid)))
}

func TestObserveHorizon_CountsUnreached(t *testing.T) {
	m := New("test", false)

	m.ObserveHorizon(15, true)
	m.ObserveHorizon(50, false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.unreached))
	assert.Equal(t, 1, testutil.CollectAndCount(m.horizon))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New("homegoal", false)
	m.ObserveRequest("/goal/loan", http.StatusOK, 20*time.Millisecond)
	m.ObserveRateLimited("/goal/loan")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "homegoal_http_request_duration_seconds")
	assert.Contains(t, body, "homegoal_http_rate_limited_total")
}

func TestNew_WithRuntimeCollectors(t *testing.T) {
	m := New("homegoal", true)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestNopRecorder(t *testing.T) {
	r := NewNopRecorder()
	r.ObserveRequest("/", 200, time.Second)
	r.ObserveCalculation("loan", OutcomeOK)
	r.ObserveHorizon(1, true)
	r.ObserveRateLimited("/")
}
