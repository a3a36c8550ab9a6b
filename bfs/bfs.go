// Package bfs provides breadth-first search over a core.Network,
// returning hop distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node,
// with optional hooks, depth limiting, and edge filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/preflow/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	u     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	net   *core.Network
	adj   *core.Adjacency
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on net starting from start,
// applying any number of functional Options.
// Every edge is traversable in both directions unless the Filter says otherwise.
// Returns ErrNetworkNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any user-supplied hook error.
func BFS(net *core.Network, start int, opts ...Option) (*Result, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := net.NodeCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d (n=%d)", ErrStartOutOfRange, start, n)
	}

	w := &walker{
		net:   net,
		adj:   net.Adjacency(),
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:      make([]int, 0, n),
			Depth:      make([]int, n),
			Parent:     make([]int, n),
			ParentEdge: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = Unreached
		w.res.ParentEdge[i] = Unreached
	}

	w.enqueue(start, 0, Unreached, Unreached)

	return w.res, w.loop()
}

// enqueue marks u reached at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(u, d, parent, edge int) {
	w.res.Depth[u] = d
	w.res.Parent[u] = parent
	w.res.ParentEdge[u] = edge
	w.opts.OnEnqueue(u, d)
	w.queue = append(w.queue, queueItem{u: u, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[head]
		w.res.Order = append(w.res.Order, item.u)
		if err := w.opts.OnVisit(item.u, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.u, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors walks u's incident edges in adjacency order, applies the
// filter and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, e := range w.adj.Incident(item.u) {
		v := w.adj.Other(e, item.u)
		if w.res.Depth[v] != Unreached {
			continue
		}
		if !w.opts.Filter(item.u, v, e) {
			continue
		}
		w.enqueue(v, next, item.u, e)
	}
}
