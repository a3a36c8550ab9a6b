// SPDX-License-Identifier: MIT
// Package: preflow/preflow
//
// options.go - functional options for Solve.

package preflow

import (
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// DefaultWorkers is the pool size used when WithWorkers is not given.
const DefaultWorkers = 4

// tracerName identifies spans emitted by this package.
const tracerName = "github.com/katalvlaran/preflow/preflow"

// Option configures a Solve call.
type Option func(*Options)

// Options holds the solver configuration.
type Options struct {
	// Workers is the fixed number of worker goroutines (>= 1). A single
	// worker runs without blocking: it stops as soon as the queue is empty.
	Workers int

	// Logger receives Info on start/finish and Debug per push and relabel.
	Logger log.FieldLogger

	// Metrics, when non-nil, is updated with push/relabel/discharge counts.
	Metrics *Metrics

	// Tracer creates the solve and phase spans.
	Tracer trace.Tracer
}

// DefaultOptions returns DefaultWorkers workers, the standard logrus logger,
// no metrics and the global otel tracer.
func DefaultOptions() Options {
	return Options{
		Workers: DefaultWorkers,
		Logger:  log.StandardLogger(),
		Tracer:  otel.Tracer(tracerName),
	}
}

// WithWorkers sets the pool size. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("preflow: WithWorkers(n<1)")
	}
	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l log.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics attaches a Metrics set (see NewMetrics).
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithTracer overrides the tracer. A nil tracer is ignored.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}
