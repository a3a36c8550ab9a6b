// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Network.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartOutOfRange is returned when the start index is not a node.
	ErrStartOutOfRange = errors.New("bfs: start node out of range")

	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("bfs: network is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Unreached marks Depth and Parent entries of nodes BFS did not reach.
const Unreached = -1

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued, before visiting.
	// Receives the node index and its depth from the start.
	OnEnqueue func(u, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(u, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// Filter can skip a traversal step by returning false.
	// Called for each step curr→next over incident edge e.
	Filter func(curr, next, e int) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (every incident edge is traversable both ways)
//   - no-op hooks (OnEnqueue, OnVisit)
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(int, int) {},
		OnVisit:   func(int, int) error { return nil },
		MaxDepth:  0,
		Filter:    func(_, _, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(u, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(u, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilter skips steps curr→next over edge e when fn returns false.
func WithFilter(fn func(curr, next, e int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: distance (in edges) from the start, Unreached if not reached.
//   - Parent: predecessor in the BFS tree, Unreached for the start and unreached nodes.
//   - ParentEdge: edge used to reach the node, Unreached likewise.
type Result struct {
	Order      []int
	Depth      []int
	Parent     []int
	ParentEdge []int
}

// Reached reports whether u was reached.
func (r *Result) Reached(u int) bool {
	return u >= 0 && u < len(r.Depth) && r.Depth[u] != Unreached
}

// PathTo reconstructs the node path from the start to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := []int{}
	for cur := dest; cur != Unreached; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
