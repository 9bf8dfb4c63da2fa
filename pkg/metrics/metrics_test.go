package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ObserveTick("done")
	m.ObserveTick("done")
	m.ObserveTick("skip")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ticks.WithLabelValues("done")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ticks.WithLabelValues("skip")))

	m.ObserveLLM("secondary", "ok")
	m.ObserveLLM("", "transient")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.llmCalls.WithLabelValues("secondary", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.llmCalls.WithLabelValues("none", "transient")))

	m.ObserveAlert("slack", true)
	m.ObserveAlert("email", false)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.alerts.WithLabelValues("slack", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.alerts.WithLabelValues("email", "error")))

	m.ObserveHTTP("GET", "/api/incidents", 200)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/incidents", "200")))

	m.SetActiveWorkers(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.activeWorkers))
}

func TestMetrics_NilIsInert(t *testing.T) {
	var m *Metrics
	m.ObserveTick("done")
	m.ObserveLLM("primary", "ok")
	m.ObserveAlert("slack", true)
	m.ObserveHTTP("GET", "/", 200)
	m.SetActiveWorkers(1)
	assert.NotNil(t, m.Handler())
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveTick("done")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "promsight_batch_ticks_total")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
