// SPDX-License-Identifier: MIT
// Package: preflow/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - 2 ≤ n ≤ spec.Nodes (else ErrTooFewVertices).
//   - Emits one edge per unordered pair {i, j}, i < j, in (i asc, j asc) order.
//
// Complexity: O(n²) edges, O(1) extra space.

package builder

import "github.com/katalvlaran/preflow/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor adding K_n over nodes 0..n-1.
func Complete(n int) Constructor {
	return func(s *core.Spec, cfg builderConfig) error {
		if err := requireNodes(methodComplete, s, n, minCompleteNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.AddEdge(cfg.edge(i, j))
			}
		}

		return nil
	}
}
