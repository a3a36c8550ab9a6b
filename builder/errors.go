// SPDX-License-Identifier: MIT
// Package: preflow/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers use errors.Is.
//   - Implementations attach context with %w ("<Method>: <detail>: %w").
//   - Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the allowed
// minimum, or that a constructor needs more nodes than the spec has.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not complete
// (nil constructor, or the generated spec failed validation).
var ErrConstructFailed = errors.New("builder: construction failed")
