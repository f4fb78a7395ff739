package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pmsbridge/infras/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := metrics.New()

	m.ObserveCall("akia", "success")
	m.ObserveCall("akia", "success")
	m.ObserveEvent("CREATED", "success")
	m.ObserveRefresh("failure")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DownstreamCalls.WithLabelValues("akia", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WebhookEvents.WithLabelValues("CREATED", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TokenRefreshes.WithLabelValues("failure")))
}

func TestHandler(t *testing.T) {
	m := metrics.New()
	m.ObserveCall("hubspot", "failure")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `pms_bridge_downstream_calls_total{outcome="failure",service="hubspot"} 1`))
}
