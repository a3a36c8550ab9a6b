// SPDX-License-Identifier: MIT
// Package: preflow/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like generator over nodes 0..n-1: include each unordered
//     pair {i, j}, i < j, independently with probability p.
//   - Self-loops are never generated.
//
// Contract:
//   - 2 ≤ n ≤ spec.Nodes (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity: O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (j > i). The capacity and the
//     optional orientation flip are drawn right after each accepted trial.

package builder

import (
	"fmt"

	"github.com/katalvlaran/preflow/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 2
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples edges over n nodes with
// independent probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(s *core.Spec, cfg builderConfig) error {
		if err := requireNodes(methodRandomSparse, s, n, minRandomSparseVertices); err != nil {
			return err
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMin:
					continue
				case p == probMax:
				case cfg.rng.Float64() >= p:
					continue
				}
				s.AddEdge(cfg.edge(i, j))
			}
		}

		return nil
	}
}
