// SPDX-License-Identifier: MIT
// Package: preflow/preflow
//
// verify.go - post-condition checks on a converged network.

package preflow

import (
	"fmt"

	"github.com/katalvlaran/preflow/core"
)

// Verify checks the post-conditions of a converged solve on a quiescent
// network and returns a wrapped ErrInvariantViolation describing the first
// violation found:
//   - every edge respects |Flow| ≤ Capacity;
//   - every node's excess equals its net inflow;
//   - no node other than source and sink holds excess;
//   - the sink holds exactly what left the source;
//   - heights are non-negative, the source keeps height n, and every residual
//     arc u→v satisfies height(u) ≤ height(v)+1.
func Verify(net *core.Network) error {
	if net == nil {
		return ErrNilNetwork
	}
	snap := net.Snapshot()
	n := len(snap.Nodes)

	for _, e := range snap.Edges {
		if e.Flow > e.Capacity || -e.Flow > e.Capacity {
			return fmt.Errorf("%w: edge #%d %d→%d carries %d over capacity %d",
				ErrInvariantViolation, e.ID, e.U, e.V, e.Flow, e.Capacity)
		}
	}

	inflow := snap.NetInflow()
	for _, nd := range snap.Nodes {
		if inflow[nd.ID] != nd.Excess {
			return fmt.Errorf("%w: node %d excess %d differs from net inflow %d",
				ErrInvariantViolation, nd.ID, nd.Excess, inflow[nd.ID])
		}
		if nd.ID != snap.Source && nd.ID != snap.Sink && nd.Excess != 0 {
			return fmt.Errorf("%w: node %d retains excess %d", ErrInvariantViolation, nd.ID, nd.Excess)
		}
		if nd.Height < 0 {
			return fmt.Errorf("%w: node %d has negative height %d", ErrInvariantViolation, nd.ID, nd.Height)
		}
	}

	s, t := snap.Nodes[snap.Source], snap.Nodes[snap.Sink]
	if t.Excess != -s.Excess {
		return fmt.Errorf("%w: sink excess %d does not balance source excess %d",
			ErrInvariantViolation, t.Excess, s.Excess)
	}
	if s.Height != int64(n) {
		return fmt.Errorf("%w: source height %d, want %d", ErrInvariantViolation, s.Height, n)
	}

	for _, e := range snap.Edges {
		hu, hv := snap.Nodes[e.U].Height, snap.Nodes[e.V].Height
		if e.Residual(e.U) > 0 && hu > hv+1 {
			return fmt.Errorf("%w: residual arc %d→%d (edge #%d) spans heights %d→%d",
				ErrInvariantViolation, e.U, e.V, e.ID, hu, hv)
		}
		if e.Residual(e.V) > 0 && hv > hu+1 {
			return fmt.Errorf("%w: residual arc %d→%d (edge #%d) spans heights %d→%d",
				ErrInvariantViolation, e.V, e.U, e.ID, hv, hu)
		}
	}

	return nil
}
