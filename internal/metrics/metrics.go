// Package metrics records per-run classification metrics and writes them
// in the node exporter textfile format.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/HerbHall/netclass/internal/classify"
)

const namespace = "netclass"

var outcomes = []classify.Outcome{
	classify.OutcomeLoopback,
	classify.OutcomePrivate,
	classify.OutcomePublic,
	classify.OutcomeNoIPv4,
	classify.OutcomeInactive,
	classify.OutcomeUnroutable,
}

// Compile-time interface guard.
var _ classify.Observer = (*Metrics)(nil)

// Metrics holds the collectors for one process.
type Metrics struct {
	registry    *prometheus.Registry
	interfaces  *prometheus.CounterVec
	failures    *prometheus.CounterVec
	lastRun     prometheus.Gauge
	lastSuccess prometheus.Gauge
}

// New creates the collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		interfaces: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interfaces_total",
			Help:      "Discovered interfaces by classification outcome.",
		}, []string{"outcome"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failures_total",
			Help:      "Failed classification runs by error kind.",
		}, []string{"kind"}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time of the last classification run.",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_success",
			Help:      "1 if the last classification run succeeded, 0 otherwise.",
		}),
	}
	m.registry.MustRegister(m.interfaces, m.failures, m.lastRun, m.lastSuccess)

	for _, o := range outcomes {
		m.interfaces.WithLabelValues(string(o))
	}
	for _, k := range []string{"discovery", "evaluation", "other"} {
		m.failures.WithLabelValues(k)
	}
	return m
}

// Observe counts one interface outcome.
func (m *Metrics) Observe(_ string, outcome classify.Outcome) {
	m.interfaces.WithLabelValues(string(outcome)).Inc()
}

// RecordRun records the end of a run at now.
func (m *Metrics) RecordRun(err error, now time.Time) {
	m.lastRun.Set(float64(now.Unix()))
	if err == nil {
		m.lastSuccess.Set(1)
		return
	}
	m.lastSuccess.Set(0)
	m.failures.WithLabelValues(failureKind(err)).Inc()
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile atomically writes all metrics to path.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, classify.ErrDiscovery):
		return "discovery"
	case errors.Is(err, classify.ErrEvaluation):
		return "evaluation"
	}
	return "other"
}
