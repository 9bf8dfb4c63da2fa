// Package metrics exposes the service's own Prometheus instrumentation.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the service counters on a private registry so tests can
// create isolated instances. All observe methods are nil-safe; a nil
// Metrics disables instrumentation.
type Metrics struct {
	registry *prometheus.Registry

	ticks         *prometheus.CounterVec
	llmCalls      *prometheus.CounterVec
	alerts        *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	activeWorkers prometheus.Gauge
}

// New builds a registry with the service counters plus the standard Go and
// process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		ticks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "promsight_batch_ticks_total",
			Help: "Batch worker ticks by terminal state.",
		}, []string{"outcome"}),
		llmCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "promsight_llm_calls_total",
			Help: "LLM gateway calls by answering provider and outcome.",
		}, []string{"provider", "outcome"}),
		alerts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "promsight_alerts_total",
			Help: "Alert deliveries by channel and outcome.",
		}, []string{"channel", "outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "promsight_http_requests_total",
			Help: "API requests by method, route, and status code.",
		}, []string{"method", "route", "status"}),
		activeWorkers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "promsight_active_workers",
			Help: "Number of running per-tenant batch workers.",
		}),
	}
	registry.MustRegister(
		m.ticks, m.llmCalls, m.alerts, m.httpRequests, m.activeWorkers,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveTick counts one worker tick terminal state.
func (m *Metrics) ObserveTick(outcome string) {
	if m == nil {
		return
	}
	m.ticks.WithLabelValues(outcome).Inc()
}

// ObserveLLM counts one gateway call. provider is the provider that
// answered, or empty when none did.
func (m *Metrics) ObserveLLM(provider, outcome string) {
	if m == nil {
		return
	}
	if provider == "" {
		provider = "none"
	}
	m.llmCalls.WithLabelValues(provider, outcome).Inc()
}

// ObserveAlert counts one delivery attempt on a channel.
func (m *Metrics) ObserveAlert(channel string, ok bool) {
	if m == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	m.alerts.WithLabelValues(channel, outcome).Inc()
}

// ObserveHTTP counts one API request.
func (m *Metrics) ObserveHTTP(method, route string, status int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// SetActiveWorkers records the current worker count.
func (m *Metrics) SetActiveWorkers(n int) {
	if m == nil {
		return
	}
	m.activeWorkers.Set(float64(n))
}
