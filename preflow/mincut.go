// SPDX-License-Identifier: MIT
// Package: preflow/preflow
//
// mincut.go - minimum s-t cut from the residual network.

package preflow

import (
	"fmt"

	"github.com/katalvlaran/preflow/bfs"
	"github.com/katalvlaran/preflow/core"
)

// Cut is an s-t cut: the nodes reachable from the source in the residual
// network and the edges crossing to the other side.
type Cut struct {
	// Source lists the source-side nodes in BFS order.
	Source []int

	// Edges lists the crossing edge IDs in ascending order.
	Edges []int

	// Capacity is the total capacity of the crossing edges. After a
	// successful Solve it equals the maximum flow.
	Capacity int64
}

// MinCut computes the residual reachability cut of a solved network. It must
// run on a quiescent network (after Solve returned).
func MinCut(net *core.Network) (*Cut, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}

	res, err := bfs.BFS(net, net.Source(), bfs.WithFilter(func(curr, _, e int) bool {
		ed, unlock := net.LockEdge(e)
		defer unlock()

		return ed.Residual(curr) > 0
	}))
	if err != nil {
		return nil, fmt.Errorf("preflow: residual search: %w", err)
	}
	if res.Reached(net.Sink()) {
		return nil, fmt.Errorf("%w: sink reachable in residual network", ErrInvariantViolation)
	}

	cut := &Cut{Source: res.Order}
	snap := net.Snapshot()
	for _, e := range snap.Edges {
		if res.Reached(e.U) != res.Reached(e.V) {
			cut.Edges = append(cut.Edges, e.ID)
			cut.Capacity += e.Capacity
		}
	}

	return cut, nil
}
