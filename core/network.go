// SPDX-License-Identifier: MIT
// Package: preflow/core
//
// network.go - the Graph Store: an arena of node and edge records addressed by index.
//
// Locking protocol (strict):
//   - Two-node operations lock the LOWER index first, then the higher one,
//     regardless of which node is the "current" one. The total order rules out circular waits.
//   - Edge locks are taken after node locks and released before them.
//   - No caller holds more than two node locks and one edge lock at a time.
//   - The work-queue lock is never taken while any of these locks is held.

package core

import "fmt"

// Network owns the node and edge arrays plus the immutable adjacency index.
// Records are created once by NewNetwork and never resized.
type Network struct {
	nodes []Node
	edges []Edge
	adj   *Adjacency

	source int
	sink   int
}

// NewNetwork validates spec and builds the store and adjacency index.
// The source gets height n; every other node starts at height 0 with zero excess.
// Complexity: O(n + m). Must be called before any concurrent access.
func NewNetwork(spec *Spec) (*Network, error) {
	if spec == nil {
		return nil, ErrNilSpec
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	n := spec.Nodes
	net := &Network{
		nodes:  make([]Node, n),
		edges:  make([]Edge, len(spec.Edges)),
		source: spec.Source(),
		sink:   spec.Sink(),
	}
	for i := range net.nodes {
		net.nodes[i].ID = i
	}
	net.nodes[net.source].Height = int64(n)

	for i, es := range spec.Edges {
		e := &net.edges[i]
		e.ID = i
		e.U, e.V = es.U, es.V
		e.Capacity = es.Capacity
	}
	net.adj = buildAdjacency(n, spec.Edges)

	return net, nil
}

// NodeCount returns n.
func (net *Network) NodeCount() int { return len(net.nodes) }

// EdgeCount returns m.
func (net *Network) EdgeCount() int { return len(net.edges) }

// Source returns the source index.
func (net *Network) Source() int { return net.source }

// Sink returns the sink index.
func (net *Network) Sink() int { return net.sink }

// Adjacency returns the read-only adjacency index.
func (net *Network) Adjacency() *Adjacency { return net.adj }

// Terminal reports whether u is the source or the sink.
func (net *Network) Terminal(u int) bool {
	return u == net.source || u == net.sink
}

// LockNode locks a single node and returns it with its unlock function.
func (net *Network) LockNode(u int) (*Node, func()) {
	nd := &net.nodes[u]
	nd.mu.Lock()

	return nd, nd.mu.Unlock
}

// LockPair locks nodes u and v following the total lock order (lower index first)
// and returns them in argument order. For u == v the node is locked once.
func (net *Network) LockPair(u, v int) (nu, nv *Node, unlock func()) {
	nu, nv = &net.nodes[u], &net.nodes[v]
	if u == v {
		nu.mu.Lock()

		return nu, nv, nu.mu.Unlock
	}

	first, second := nu, nv
	if v < u {
		first, second = nv, nu
	}
	first.mu.Lock()
	second.mu.Lock()

	return nu, nv, func() {
		second.mu.Unlock()
		first.mu.Unlock()
	}
}

// LockEdge locks an edge record. Callers that also need node locks take them first.
func (net *Network) LockEdge(e int) (*Edge, func()) {
	ed := &net.edges[e]
	ed.mu.Lock()

	return ed, ed.mu.Unlock
}

// Activate applies the work-queue admission rule to a node whose lock the caller holds:
// it returns true, and marks the node InQueue, iff the node is neither source nor sink,
// holds strictly positive excess and is not already queued. The caller must then insert
// the node into the queue after releasing its node/edge locks.
func (net *Network) Activate(nd *Node) bool {
	if net.Terminal(nd.ID) || nd.Excess <= 0 || nd.InQueue {
		return false
	}
	nd.InQueue = true

	return true
}

// Flow returns the current sink excess, i.e. the net flow that reached the sink.
func (net *Network) Flow() int64 {
	t, unlock := net.LockNode(net.sink)
	defer unlock()

	return t.Excess
}

// String returns a short description for logs.
func (net *Network) String() string {
	return fmt.Sprintf("network(n=%d, m=%d, s=%d, t=%d)", len(net.nodes), len(net.edges), net.source, net.sink)
}
