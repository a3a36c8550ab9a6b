// SPDX-License-Identifier: MIT
// Package: preflow/builder
//
// impl_layered.go - implementation of Layered(layers, width) constructor.
//
// Topology:
//   - The source (node 0) feeds every node of layer 0.
//   - Layer k node i is node 1 + k*width + i.
//   - Consecutive layers are joined completely (width² edges per gap).
//   - Every node of the last layer feeds the sink (node spec.Nodes-1).
//
// Contract:
//   - layers ≥ 1, width ≥ 1 (else ErrTooFewVertices).
//   - spec.Nodes == layers*width + 2 (else ErrTooFewVertices).
//
// Complexity: O(layers · width²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/preflow/core"
)

const methodLayered = "Layered"

// Layered returns a Constructor building a layered source→sink network.
func Layered(layers, width int) Constructor {
	return func(s *core.Spec, cfg builderConfig) error {
		if layers < 1 || width < 1 {
			return fmt.Errorf("%s: layers=%d width=%d, both must be ≥ 1: %w",
				methodLayered, layers, width, ErrTooFewVertices)
		}
		if want := layers*width + 2; s.Nodes != want {
			return fmt.Errorf("%s: needs exactly %d nodes, spec has %d: %w",
				methodLayered, want, s.Nodes, ErrTooFewVertices)
		}

		node := func(k, i int) int { return 1 + k*width + i }
		for i := 0; i < width; i++ {
			s.AddEdge(cfg.edge(s.Source(), node(0, i)))
		}
		for k := 0; k+1 < layers; k++ {
			for i := 0; i < width; i++ {
				for j := 0; j < width; j++ {
					s.AddEdge(cfg.edge(node(k, i), node(k+1, j)))
				}
			}
		}
		for i := 0; i < width; i++ {
			s.AddEdge(cfg.edge(node(layers-1, i), s.Sink()))
		}

		return nil
	}
}
