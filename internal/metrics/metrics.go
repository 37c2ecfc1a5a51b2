// Package metrics exposes prometheus counters describing remote calls and
// drift checks.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "connector_sync"

const (
	VerdictInSync    = "in_sync"
	VerdictOutOfSync = "out_of_sync"
)

// Metrics owns a private registry so several instances can coexist, e.g. in
// tests. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	remoteCalls     *prometheus.CounterVec
	driftChecks     *prometheus.CounterVec
	droppedElements *prometheus.CounterVec
}

// New creates the counters and registers them together with the Go runtime
// and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		remoteCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "remote_calls_total",
			Help:      "Management API calls by entity kind, operation and classified outcome.",
		}, []string{"kind", "operation", "category"}),
		driftChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "drift_checks_total",
			Help:      "Drift verdicts computed for local entities.",
		}, []string{"kind", "verdict"}),
		droppedElements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dropped_elements_total",
			Help:      "Elements of list responses dropped because they could not be parsed.",
		}, []string{"kind"}),
	}

	m.registry.MustRegister(
		m.remoteCalls,
		m.driftChecks,
		m.droppedElements,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) ObserveRemoteCall(kind, operation, category string) {
	if m == nil {
		return
	}
	m.remoteCalls.WithLabelValues(kind, operation, category).Inc()
}

func (m *Metrics) ObserveDriftCheck(kind string, outOfSync bool) {
	if m == nil {
		return
	}
	verdict := VerdictInSync
	if outOfSync {
		verdict = VerdictOutOfSync
	}
	m.driftChecks.WithLabelValues(kind, verdict).Inc()
}

func (m *Metrics) AddDroppedElements(kind string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.droppedElements.WithLabelValues(kind).Add(float64(n))
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
