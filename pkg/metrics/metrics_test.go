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

func TestCollector_Records(t *testing.T) {
	c := NewCollector("edoc")

	c.RecordHTTPRequest(http.MethodGet, "/api/v1/profile", http.StatusOK, 20*time.Millisecond)
	c.RecordAuthAttempt(true)
	c.RecordAuthAttempt(false)
	c.RecordAuthAttempt(false)
	c.RecordTransition("scheduled", "ok")
	c.RecordNotifications("consultation.requested", 3)
	c.RecordNotifications("consultation.requested", 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.httpRequestsTotal.WithLabelValues("GET", "/api/v1/profile", "200")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.authAttemptsTotal.WithLabelValues("failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.consultationTransitions.WithLabelValues("scheduled", "ok")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.notificationsCreated.WithLabelValues("consultation.requested")))
}

func TestCollector_NilIsNoop(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.RecordHTTPRequest("GET", "/", 200, time.Millisecond)
		c.RecordAuthAttempt(true)
		c.RecordTransition("confirmed", "invalid_state")
		c.RecordNotifications("x", 1)
	})
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector("edoc")
	c.RecordAuthAttempt(true)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `edoc_auth_attempts_total{status="success"} 1`)
}
