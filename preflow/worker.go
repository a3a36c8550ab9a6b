// SPDX-License-Identifier: MIT
// Package: preflow/preflow
//
// worker.go - the discharge step executed by every pool goroutine.
//
// One discharge of node u:
//  1. Record u's height h0 (node lock).
//  2. For each incident edge in adjacency order, lock u and v (lower index
//     first), then the edge. Stop when u has no excess left. Push
//     d = min(excess(u), residual(u→v)) when height(u) > height(v).
//     Admission of v is decided under v's lock; the queue insert happens
//     after all locks are released.
//  3. Under u's lock: relabel (+1) only if the whole list was scanned without
//     a push, u still has excess and u's height is still h0; then re-admit u
//     if it still has excess.
//
// The h0 check keeps two workers that both scanned u at the same height from
// relabelling it twice: the second one sees the raised height and only
// re-admits u, which is then rescanned at the new height.

package preflow

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/preflow/core"
	"github.com/katalvlaran/preflow/queue"
)

// worker is one pool goroutine's view of the shared solve state.
type worker struct {
	id    int
	net   *core.Network
	q     *queue.ExcessQueue
	stats *counters
	opts  *Options
	log   log.FieldLogger
	debug bool
}

// run drains the queue until it is closed.
func (w *worker) run() error {
	var steps int64
	for {
		u, ok := w.q.Pop()
		if !ok {
			break
		}
		steps++
		if err := w.discharge(u); err != nil {
			w.q.Close()
			return err
		}
	}
	if w.debug {
		w.log.WithFields(log.Fields{"worker": w.id, "discharges": steps}).Debug("worker exit")
	}

	return nil
}

// discharge performs one push/relabel step on u.
func (w *worker) discharge(u int) error {
	w.stats.discharges.Add(1)
	if m := w.opts.Metrics; m != nil {
		m.Discharges.Inc()
	}

	nd, unlock := w.net.LockNode(u)
	h0, ex := nd.Height, nd.Excess
	unlock()

	if ex < 0 {
		return fmt.Errorf("%w: node %d dequeued with negative excess %d", ErrInvariantViolation, u, ex)
	}
	if ex == 0 {
		// Stale membership: another worker drained u after it was queued.
		return nil
	}

	adj := w.net.Adjacency()
	pushed, drained := false, false
	for _, e := range adj.Incident(u) {
		v := adj.Other(e, u)
		if v == u {
			continue
		}

		d, admit, empty := w.push(u, v, e)
		if empty {
			drained = true
			break
		}
		if d > 0 {
			pushed = true
			w.stats.pushes.Add(1)
			if m := w.opts.Metrics; m != nil {
				m.Pushes.Inc()
			}
			if w.debug {
				w.log.WithFields(log.Fields{"worker": w.id, "from": u, "to": v, "edge": e, "amount": d}).Debug("push")
			}
		}
		if admit {
			w.q.Push(v)
		}
	}

	nd, unlock = w.net.LockNode(u)
	relabeled := false
	if nd.Excess > 0 && !pushed && !drained && nd.Height == h0 {
		nd.Relabel()
		relabeled = true
	}
	h1 := nd.Height
	requeue := w.net.Activate(nd)
	unlock()

	if relabeled {
		w.stats.relabels.Add(1)
		if m := w.opts.Metrics; m != nil {
			m.Relabels.Inc()
		}
		if w.debug {
			w.log.WithFields(log.Fields{"worker": w.id, "node": u, "height": h1}).Debug("relabel")
		}
	}
	if requeue {
		w.q.Push(u)
	}

	return nil
}

// push attempts one push from u to v along edge e. It returns the amount
// moved, whether v was newly admitted to the queue, and whether u had no
// excess left when the locks were taken.
func (w *worker) push(u, v, e int) (d int64, admit, empty bool) {
	nu, nv, unlockPair := w.net.LockPair(u, v)
	defer unlockPair()

	if nu.Excess == 0 {
		return 0, false, true
	}
	if nu.Height <= nv.Height {
		return 0, false, false
	}

	ed, unlockEdge := w.net.LockEdge(e)
	if r := ed.Residual(u); r > 0 {
		d = min(nu.Excess, r)
		ed.Apply(u, d)
		nu.Excess -= d
		nv.Excess += d
	}
	unlockEdge()

	if d > 0 {
		admit = w.net.Activate(nv)
	}

	return d, admit, false
}

// debugEnabled reports whether l would emit Debug entries.
func debugEnabled(l log.FieldLogger) bool {
	switch x := l.(type) {
	case *log.Logger:
		return x.IsLevelEnabled(log.DebugLevel)
	case *log.Entry:
		return x.Logger.IsLevelEnabled(log.DebugLevel)
	default:
		return false
	}
}
