// SPDX-License-Identifier: MIT
// Package: preflow/preflow
//
// metrics.go - Prometheus collectors updated by Solve.

package preflow

import "github.com/prometheus/client_golang/prometheus"

// Metrics groups the Prometheus collectors updated by Solve. A single Metrics
// value may be shared by concurrent solves.
type Metrics struct {
	Pushes        prometheus.Counter
	Relabels      prometheus.Counter
	Discharges    prometheus.Counter
	Solves        *prometheus.CounterVec
	SolveDuration prometheus.Histogram
}

// Solve outcomes used as the "outcome" label of preflow_solves_total.
const (
	outcomeOK        = "ok"
	outcomeCancelled = "cancelled"
	outcomeFailed    = "failed"
)

// NewMetrics builds an unregistered collector set; register it with
// prometheus.MustRegister(m.Collectors()...).
func NewMetrics() *Metrics {
	return &Metrics{
		Pushes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "preflow_pushes_total",
			Help: "Number of push operations applied to edges.",
		}),
		Relabels: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "preflow_relabels_total",
			Help: "Number of node relabel operations.",
		}),
		Discharges: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "preflow_discharges_total",
			Help: "Number of nodes taken from the work queue.",
		}),
		Solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "preflow_solves_total",
			Help: "Number of completed Solve calls by outcome.",
		}, []string{"outcome"}),
		SolveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "preflow_solve_duration_seconds",
			Help:    "Wall time of Solve calls.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
	}
}

// Collectors returns all collectors of m for registration.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.Pushes, m.Relabels, m.Discharges, m.Solves, m.SolveDuration}
}
