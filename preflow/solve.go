// SPDX-License-Identifier: MIT
// Package: preflow/preflow
//
// solve.go - Solve: initial saturating push, worker pool, result.
//
// Concurrency:
//   - Workers are a fixed errgroup of Options.Workers goroutines sharing one
//     ExcessQueue. With a single worker the queue is non-blocking and the run
//     ends as soon as it is empty.
//   - Cancelling ctx closes the queue; workers finish their current step and
//     exit, and Solve returns ctx.Err().

package preflow

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/preflow/core"
	"github.com/katalvlaran/preflow/queue"
)

// Result summarizes a finished solve.
type Result struct {
	// Flow is the maximum flow value (the sink excess at convergence).
	Flow int64

	// Workers is the pool size that produced the result.
	Workers int

	// Pushes, Relabels and Discharges count the individual steps.
	Pushes     int64
	Relabels   int64
	Discharges int64

	// Elapsed is the wall time from the initial push to convergence.
	Elapsed time.Duration
}

type counters struct {
	pushes     atomic.Int64
	relabels   atomic.Int64
	discharges atomic.Int64
}

// Solve computes the maximum flow from net.Source() to net.Sink() and leaves
// the final preflow (a valid flow) in net.
//
// The network must be freshly built by core.NewNetwork; Solve is not
// reentrant on the same network.
//
// Errors: ErrNilNetwork, ctx.Err() on cancellation, or a wrapped
// ErrInvariantViolation if the queue ran dry without convergence.
func Solve(ctx context.Context, net *core.Network, opts ...Option) (*Result, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ctx, span := o.Tracer.Start(ctx, "preflow.Solve", trace.WithAttributes(
		attribute.Int("preflow.nodes", net.NodeCount()),
		attribute.Int("preflow.edges", net.EdgeCount()),
		attribute.Int("preflow.workers", o.Workers),
	))
	defer span.End()

	logger := o.Logger.WithFields(log.Fields{
		"nodes":   net.NodeCount(),
		"edges":   net.EdgeCount(),
		"workers": o.Workers,
	})
	logger.Info("preflow solve started")
	start := time.Now()

	det := newDetector(net)
	q := queue.New(
		queue.WithBlocking(o.Workers > 1),
		queue.WithCapacity(net.NodeCount()),
		queue.WithDetector(det.Check),
		queue.WithOnDequeue(func(u int) {
			nd, unlock := net.LockNode(u)
			nd.InQueue = false
			unlock()
		}),
	)

	_, seedSpan := o.Tracer.Start(ctx, "preflow.seed")
	seeded := seed(net, q)
	seedSpan.SetAttributes(attribute.Int("preflow.active", seeded))
	seedSpan.End()

	var stats counters
	g, gctx := errgroup.WithContext(ctx)
	stop := context.AfterFunc(gctx, q.Close)
	defer stop()

	_, drainSpan := o.Tracer.Start(ctx, "preflow.drain")
	debug := debugEnabled(o.Logger)
	for i := 0; i < o.Workers; i++ {
		w := &worker{id: i, net: net, q: q, stats: &stats, opts: &o, log: o.Logger, debug: debug}
		g.Go(w.run)
	}
	err := g.Wait()
	drainSpan.End()

	elapsed := time.Since(start)
	res := &Result{
		Flow:       net.Flow(),
		Workers:    o.Workers,
		Pushes:     stats.pushes.Load(),
		Relabels:   stats.relabels.Load(),
		Discharges: stats.discharges.Load(),
		Elapsed:    elapsed,
	}

	outcome := outcomeOK
	switch {
	case err != nil:
		outcome = outcomeFailed
	case !det.Converged() && ctx.Err() != nil:
		outcome = outcomeCancelled
		err = ctx.Err()
	case !det.Converged():
		outcome = outcomeFailed
		err = fmt.Errorf("%w: work queue drained before convergence (flow=%d, source excess=%d)",
			ErrInvariantViolation, res.Flow, sourceExcess(net))
	}

	if m := o.Metrics; m != nil {
		m.Solves.WithLabelValues(outcome).Inc()
		m.SolveDuration.Observe(elapsed.Seconds())
	}
	span.SetAttributes(
		attribute.Int64("preflow.flow", res.Flow),
		attribute.Int64("preflow.pushes", res.Pushes),
		attribute.Int64("preflow.relabels", res.Relabels),
	)

	fields := log.Fields{
		"flow":     res.Flow,
		"pushes":   res.Pushes,
		"relabels": res.Relabels,
		"elapsed":  elapsed,
	}
	switch outcome {
	case outcomeCancelled:
		span.SetStatus(codes.Error, err.Error())
		logger.WithFields(fields).WithError(err).Warn("preflow solve cancelled")
		return nil, err
	case outcomeFailed:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.WithFields(fields).WithError(err).Error("preflow solve failed")
		return nil, err
	}

	logger.WithFields(fields).Info("preflow solve finished")

	return res, nil
}

// seed performs the initial saturating push along every edge incident to the
// source and queues the nodes that became active. It runs before any worker
// starts. Returns the number of queued nodes.
func seed(net *core.Network, q *queue.ExcessQueue) int {
	s := net.Source()
	adj := net.Adjacency()
	queued := 0
	for _, e := range adj.Incident(s) {
		v := adj.Other(e, s)
		if v == s {
			continue
		}

		ns, nv, unlockPair := net.LockPair(s, v)
		ed, unlockEdge := net.LockEdge(e)
		d := ed.Residual(s)
		if d > 0 {
			ed.Apply(s, d)
			ns.Excess -= d
			nv.Excess += d
		}
		unlockEdge()
		admit := d > 0 && net.Activate(nv)
		unlockPair()

		if admit {
			q.Push(v)
			queued++
		}
	}

	return queued
}

func sourceExcess(net *core.Network) int64 {
	s, unlock := net.LockNode(net.Source())
	defer unlock()

	return s.Excess
}
