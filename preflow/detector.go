// SPDX-License-Identifier: MIT
// Package: preflow/preflow
//
// detector.go - termination detector shared by the workers.

package preflow

import (
	"sync/atomic"

	"github.com/katalvlaran/preflow/core"
)

// detector implements the termination rule: the run is over once the sink
// holds exactly what left the source, i.e. excess[t] == -excess[s]. Since every
// push is atomic over both endpoints the total excess is always zero, so the
// rule holds iff no intermediate node carries excess.
//
// Check is idempotent: after the first positive answer it returns true without
// touching the network again.
type detector struct {
	net    *core.Network
	done   atomic.Bool
	checks atomic.Int64
}

func newDetector(net *core.Network) *detector {
	return &detector{net: net}
}

// Check locks source and sink in index order and evaluates the rule.
func (d *detector) Check() bool {
	if d.done.Load() {
		return true
	}
	d.checks.Add(1)

	s, t, unlock := d.net.LockPair(d.net.Source(), d.net.Sink())
	ok := t.Excess == -s.Excess
	unlock()

	if ok {
		d.done.Store(true)
	}

	return ok
}

// Converged reports whether a Check has succeeded.
func (d *detector) Converged() bool {
	return d.done.Load()
}
