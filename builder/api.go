// SPDX-License-Identifier: MIT
// Package: preflow/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildSpec(n, bopts, cons...). Creates the spec, resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical edge lists.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/preflow/core"
)

// Constructor appends edges to a spec using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Only reference nodes inside 0..spec.Nodes-1.
//   - Preserve determinism for the same config and call order.
type Constructor func(s *core.Spec, cfg builderConfig) error

// BuildSpec creates a spec over n nodes (node 0 is the source, n-1 the sink),
// resolves the builder configuration from bopts, and applies all constructors
// in order. Any constructor error is wrapped with "BuildSpec: %w" and
// returned immediately. The resulting spec is validated before return.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - ErrTooFewVertices when n < 2, ErrConstructFailed on a nil constructor,
//     plus wrapped constructor errors; branch with errors.Is.
func BuildSpec(n int, bopts []BuilderOption, cons ...Constructor) (*core.Spec, error) {
	if n < minSpecNodes {
		return nil, fmt.Errorf("BuildSpec: n=%d < min=%d: %w", n, minSpecNodes, ErrTooFewVertices)
	}
	s := core.NewSpec(n)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildSpec: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildSpec: %w", err)
		}
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("BuildSpec: %w: %w", ErrConstructFailed, err)
	}

	return s, nil
}

// minSpecNodes is the smallest network with distinct source and sink.
const minSpecNodes = 2

// requireNodes checks that a constructor over k nodes fits into s.
func requireNodes(method string, s *core.Spec, k, min int) error {
	if k < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, k, min, ErrTooFewVertices)
	}
	if k > s.Nodes {
		return fmt.Errorf("%s: needs %d nodes, spec has %d: %w", method, k, s.Nodes, ErrTooFewVertices)
	}

	return nil
}
