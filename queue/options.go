// SPDX-License-Identifier: MIT
// Package: preflow/queue
//
// options.go - functional options and hooks for ExcessQueue.

package queue

// Option configures an ExcessQueue via functional arguments.
type Option func(*Options)

// Options holds the queue configuration and hooks.
type Options struct {
	// Blocking makes Pop wait on an empty queue. When false, an empty queue
	// ends the run (single-worker degenerate case).
	Blocking bool

	// Capacity is the initial slice capacity.
	Capacity int

	// OnEnqueue runs after an item was appended, outside the queue lock.
	OnEnqueue func(u int)

	// OnDequeue runs after an item was removed, outside the queue lock,
	// before Pop returns it. The solver clears InQueue here.
	OnDequeue func(u int)

	// Detector is consulted, outside the queue lock, whenever Pop finds the
	// queue empty. Returning true closes the queue. It must be idempotent.
	Detector func() bool
}

// DefaultOptions returns a blocking queue with no-op hooks and a detector
// that never reports completion (only Close ends such a queue).
func DefaultOptions() Options {
	return Options{
		Blocking:  true,
		Capacity:  16,
		OnEnqueue: func(int) {},
		OnDequeue: func(int) {},
		Detector:  func() bool { return false },
	}
}

// WithBlocking selects blocking (true) or draining (false) Pop semantics.
func WithBlocking(b bool) Option {
	return func(o *Options) { o.Blocking = b }
}

// WithCapacity presizes the backing slice. Panics on negative values.
func WithCapacity(n int) Option {
	if n < 0 {
		panic("queue: WithCapacity(n<0)")
	}
	return func(o *Options) { o.Capacity = n }
}

// WithOnEnqueue registers a callback run after each Push.
func WithOnEnqueue(fn func(u int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback run after each successful Pop.
func WithOnDequeue(fn func(u int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithDetector registers the termination detector.
func WithDetector(fn func() bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Detector = fn
		}
	}
}
