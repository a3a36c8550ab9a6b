// SPDX-License-Identifier: MIT
// Package: preflow/core
//
// types.go - records, input specification and sentinel errors of the Graph Store.
//
// Concurrency:
//   - Node and Edge embed their own sync.Mutex; every mutable field is guarded by it.
//   - Spec is a plain value used only during single-threaded construction.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for network construction.
var (
	// ErrTooFewNodes indicates a network with fewer than two nodes (source and sink must differ).
	ErrTooFewNodes = errors.New("core: network needs at least two nodes")

	// ErrNodeOutOfRange indicates an edge endpoint outside 0..n-1.
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrNilSpec indicates that a nil *Spec was passed to NewNetwork.
	ErrNilSpec = errors.New("core: spec is nil")
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	Index int
	U, V  int
	Cap   int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("core: negative capacity on edge #%d %d→%d: %d", e.Index, e.U, e.V, e.Cap)
}

// Node is a vertex record of the Graph Store.
//
// ID is stable for the lifetime of the network. Excess, Height and InQueue
// mutate during a solve and may only be touched while the node lock is held
// (see Network.LockNode / Network.LockPair).
type Node struct {
	mu sync.Mutex

	// ID is the index of this node in the arena.
	ID int

	// Excess is inflow minus outflow. Negative only for the source.
	Excess int64

	// Height is the push-relabel label. It never decreases.
	Height int64

	// InQueue is true iff the node is currently represented in the work queue.
	InQueue bool
}

// Relabel raises the node height by one. Caller holds the node lock.
func (nd *Node) Relabel() {
	nd.Height++
}

// Edge is an undirected storage record of a directed capacity.
//
// Flow is the net flow U→V; a negative value means net flow V→U.
// Invariant: |Flow| ≤ Capacity.
type Edge struct {
	mu sync.Mutex

	// ID is the index of this edge in the arena (input order).
	ID int

	// U and V are the endpoints as given in the input.
	U, V int

	// Capacity is fixed at load time.
	Capacity int64

	// Flow is guarded by the edge lock.
	Flow int64
}

// Direction returns +1 when from is the U endpoint and -1 otherwise.
// Pushing d units from `from` changes Flow by Direction(from)*d.
func (e *Edge) Direction(from int) int64 {
	if from == e.U {
		return 1
	}

	return -1
}

// Residual returns the remaining capacity for pushing out of `from`:
// Capacity-Flow from U, Capacity+Flow from V. Caller holds the edge lock.
func (e *Edge) Residual(from int) int64 {
	return e.Capacity - e.Direction(from)*e.Flow
}

// Apply moves d units of flow out of `from` along the edge. Caller holds the edge lock.
func (e *Edge) Apply(from int, d int64) {
	e.Flow += e.Direction(from) * d
}

// EdgeSpec describes one input edge (u, v, capacity).
type EdgeSpec struct {
	U, V     int
	Capacity int64
}

// Spec is the load-time description of a network: n nodes (0 is the source,
// n-1 the sink) and an ordered list of edges. Parallel edges are allowed.
type Spec struct {
	Nodes int
	Edges []EdgeSpec
}

// NewSpec returns an empty Spec over n nodes.
func NewSpec(n int) *Spec {
	return &Spec{Nodes: n}
}

// AddEdge appends an edge and returns its index.
func (s *Spec) AddEdge(u, v int, capacity int64) int {
	s.Edges = append(s.Edges, EdgeSpec{U: u, V: v, Capacity: capacity})

	return len(s.Edges) - 1
}

// Source returns the source index (always 0).
func (s *Spec) Source() int { return 0 }

// Sink returns the sink index (n-1).
func (s *Spec) Sink() int { return s.Nodes - 1 }

// Validate checks node count, endpoint ranges and capacity signs.
// It does not reject parallel edges or self-loops.
func (s *Spec) Validate() error {
	if s.Nodes < 2 {
		return fmt.Errorf("%w: n=%d", ErrTooFewNodes, s.Nodes)
	}
	for i, e := range s.Edges {
		if e.U < 0 || e.U >= s.Nodes || e.V < 0 || e.V >= s.Nodes {
			return fmt.Errorf("%w: edge #%d %d→%d with n=%d", ErrNodeOutOfRange, i, e.U, e.V, s.Nodes)
		}
		if e.Capacity < 0 {
			return EdgeError{Index: i, U: e.U, V: e.V, Cap: e.Capacity}
		}
	}

	return nil
}
