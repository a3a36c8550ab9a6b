// SPDX-License-Identifier: MIT
// Package: preflow/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - 2 ≤ n ≤ spec.Nodes (else ErrTooFewVertices).
//   - Emits edges (i-1, i) for i=1..n-1 in increasing order.
//   - With n == spec.Nodes the path joins source and sink; its max flow is
//     the minimum capacity along it.
//
// Complexity: O(n) edges, O(1) extra space.

package builder

import "github.com/katalvlaran/preflow/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor chaining nodes 0..n-1.
func Path(n int) Constructor {
	return func(s *core.Spec, cfg builderConfig) error {
		if err := requireNodes(methodPath, s, n, minPathNodes); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			s.AddEdge(cfg.edge(i-1, i))
		}

		return nil
	}
}
