// SPDX-License-Identifier: MIT
// Package: preflow/preflow
//
// errors.go - sentinel errors of the solver.

package preflow

import "errors"

// Sentinel errors returned by Solve and Verify.
var (
	// ErrNilNetwork is returned when Solve or Verify receive a nil network.
	ErrNilNetwork = errors.New("preflow: network is nil")

	// ErrInvariantViolation marks a broken solver post-condition (capacity,
	// conservation, residual excess or source/sink imbalance). It is always
	// wrapped with the concrete detail; branch on it with errors.Is.
	ErrInvariantViolation = errors.New("preflow: invariant violation")
)
