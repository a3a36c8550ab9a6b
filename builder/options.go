// SPDX-License-Identifier: MIT
// Package: preflow/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructors by mutating a builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCapacityFn overrides the per-edge capacity generator. The function
// receives the (possibly nil) RNG and must not return negative values.
// Panics on nil.
func WithCapacityFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithCapacityFn(nil)")
	}
	return func(c *builderConfig) {
		c.capacityFn = fn
	}
}

// WithConstantCapacity sets every capacity to c. Panics if c < 0.
func WithConstantCapacity(c int64) BuilderOption {
	if c < 0 {
		panic("builder: WithConstantCapacity(c<0)")
	}
	return WithCapacityFn(func(*rand.Rand) int64 { return c })
}

// WithUniformCapacity draws capacities uniformly from [lo, hi].
// Falls back to lo when no RNG is configured. Panics if lo < 0 or hi < lo.
func WithUniformCapacity(lo, hi int64) BuilderOption {
	if lo < 0 || hi < lo {
		panic("builder: WithUniformCapacity(lo<0 || hi<lo)")
	}
	return WithCapacityFn(func(r *rand.Rand) int64 {
		if r == nil || hi == lo {
			return lo
		}
		return lo + r.Int63n(hi-lo+1)
	})
}

// WithRandomOrientation lists each generated edge as (v, u) with probability
// one half. Requires an RNG at construction time.
func WithRandomOrientation() BuilderOption {
	return func(c *builderConfig) {
		c.orient = true
	}
}
