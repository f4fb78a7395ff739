package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pms_bridge"

// Metrics holds the bridge collectors on a dedicated registry.
type Metrics struct {
	Registry        *prometheus.Registry
	WebhookEvents   *prometheus.CounterVec
	DownstreamCalls *prometheus.CounterVec
	TokenRefreshes  *prometheus.CounterVec
	SyncDuration    *prometheus.HistogramVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		Registry: registry,
		WebhookEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_events_total",
			Help:      "Inbound reservation webhook events by intent and outcome",
		}, []string{"event", "outcome"}),
		DownstreamCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "downstream_calls_total",
			Help:      "Calls to Akia, Agilysys and HubSpot by outcome",
		}, []string{"service", "outcome"}),
		TokenRefreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_refreshes_total",
			Help:      "Akia access token refresh attempts by outcome",
		}, []string{"outcome"}),
		SyncDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sync_duration_seconds",
			Help:      "Time taken to synchronize one reservation",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.WebhookEvents,
		m.DownstreamCalls,
		m.TokenRefreshes,
		m.SyncDuration,
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// Observe helpers accept a nil receiver so components can run without a registry.
func (m *Metrics) ObserveCall(service, outcome string) {
	if m == nil {
		return
	}

	m.DownstreamCalls.WithLabelValues(service, outcome).Inc()
}

func (m *Metrics) ObserveEvent(event, outcome string) {
	if m == nil {
		return
	}

	m.WebhookEvents.WithLabelValues(event, outcome).Inc()
}

func (m *Metrics) ObserveRefresh(outcome string) {
	if m == nil {
		return
	}

	m.TokenRefreshes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveSync(path string, seconds float64) {
	if m == nil {
		return
	}

	m.SyncDuration.WithLabelValues(path).Observe(seconds)
}
