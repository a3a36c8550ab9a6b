// SPDX-License-Identifier: MIT
// Package: preflow/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   - rng        = nil        (pure/deterministic unless seeded)
//   - capacityFn = constant DefaultCapacity
//   - orient     = false      (edges are emitted low→high)

package builder

import "math/rand"

// DefaultCapacity is the edge capacity used when no capacity option is set.
const DefaultCapacity = int64(1)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Capacity generator; receives the (possibly nil) RNG.
	capacityFn func(*rand.Rand) int64
	// Randomly flip edge orientation (needs rng). Exercises edges listed v→u.
	orient bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		capacityFn: func(*rand.Rand) int64 { return DefaultCapacity },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// edge emits (u, v) with a generated capacity, flipping the orientation when
// random orientation is enabled.
func (c builderConfig) edge(u, v int) (int, int, int64) {
	capacity := c.capacityFn(c.rng)
	if c.orient && c.rng != nil && c.rng.Intn(2) == 1 {
		u, v = v, u
	}

	return u, v, capacity
}
