// SPDX-License-Identifier: MIT
// Package: preflow/core
//
// adjacency.go - immutable node → incident-edge index.
//
// Every edge appears in the lists of both endpoints (once for a self-loop),
// in input order. The index is built before any worker starts and is never
// mutated afterwards, so it is shared without synchronization.

package core

// Adjacency maps each node to the ordered list of incident edge IDs.
type Adjacency struct {
	lists [][]int
	ends  []EdgeSpec
}

func buildAdjacency(n int, edges []EdgeSpec) *Adjacency {
	// Count degrees first so every list is allocated exactly once.
	deg := make([]int, n)
	for _, e := range edges {
		deg[e.U]++
		if e.V != e.U {
			deg[e.V]++
		}
	}

	a := &Adjacency{
		lists: make([][]int, n),
		ends:  make([]EdgeSpec, len(edges)),
	}
	for u := range a.lists {
		a.lists[u] = make([]int, 0, deg[u])
	}
	for i, e := range edges {
		a.ends[i] = EdgeSpec{U: e.U, V: e.V}
		a.lists[e.U] = append(a.lists[e.U], i)
		if e.V != e.U {
			a.lists[e.V] = append(a.lists[e.V], i)
		}
	}

	return a
}

// Incident returns the edge IDs incident to u. The slice must not be modified.
func (a *Adjacency) Incident(u int) []int {
	return a.lists[u]
}

// Degree returns the number of incident edges of u.
func (a *Adjacency) Degree(u int) int {
	return len(a.lists[u])
}

// Other returns the endpoint of edge e opposite to u.
// Endpoints are immutable, so no edge lock is needed.
func (a *Adjacency) Other(e, u int) int {
	if a.ends[e].U == u {
		return a.ends[e].V
	}

	return a.ends[e].U
}
