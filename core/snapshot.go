// SPDX-License-Identifier: MIT
// Package: preflow/core
//
// snapshot.go - lock-respecting copies of the mutable state for inspection.
//
// A snapshot taken while workers run is per-record consistent only;
// it is globally consistent once the solve has finished.

package core

// NodeState is a value copy of a Node.
type NodeState struct {
	ID      int
	Excess  int64
	Height  int64
	InQueue bool
}

// EdgeState is a value copy of an Edge.
type EdgeState struct {
	ID       int
	U, V     int
	Capacity int64
	Flow     int64
}

// Snapshot holds copies of every node and edge record.
type Snapshot struct {
	Nodes  []NodeState
	Edges  []EdgeState
	Source int
	Sink   int
}

// Snapshot copies all records, taking each record lock briefly (one at a time).
// Complexity: O(n + m).
func (net *Network) Snapshot() Snapshot {
	s := Snapshot{
		Nodes:  make([]NodeState, len(net.nodes)),
		Edges:  make([]EdgeState, len(net.edges)),
		Source: net.source,
		Sink:   net.sink,
	}
	for i := range net.nodes {
		nd, unlock := net.LockNode(i)
		s.Nodes[i] = NodeState{ID: nd.ID, Excess: nd.Excess, Height: nd.Height, InQueue: nd.InQueue}
		unlock()
	}
	for i := range net.edges {
		e, unlock := net.LockEdge(i)
		s.Edges[i] = EdgeState{ID: e.ID, U: e.U, V: e.V, Capacity: e.Capacity, Flow: e.Flow}
		unlock()
	}

	return s
}

// NetInflow returns, for every node, the sum of flow entering minus flow leaving
// according to the edge flows of the snapshot.
func (s Snapshot) NetInflow() []int64 {
	in := make([]int64, len(s.Nodes))
	for _, e := range s.Edges {
		in[e.V] += e.Flow
		in[e.U] -= e.Flow
	}

	return in
}

// Residual returns the remaining capacity for pushing from `from` along edge e.
func (e EdgeState) Residual(from int) int64 {
	if from == e.U {
		return e.Capacity - e.Flow
	}

	return e.Capacity + e.Flow
}
