// SPDX-License-Identifier: MIT
// Package: preflow/queue
//
// queue.go - the shared FIFO of active node IDs.
//
// Locking:
//   - The queue has its own mutex and sync.Cond; it is never acquired while a
//     node or edge lock is held, and it never holds its own lock while calling
//     the OnDequeue hook or the termination detector.
//   - Every Push broadcasts: any waiter may be the one that can take the item.

package queue

import "sync"

// ExcessQueue is a blocking FIFO of node IDs with a one-way "done" signal.
type ExcessQueue struct {
	mu   sync.Mutex
	cond *sync.Cond

	items []int
	head  int

	// pushes counts Push calls; a waiter compares it across the unlocked
	// detector call to avoid sleeping on a queue that just became non-empty.
	pushes uint64
	done   bool

	opts Options
}

// New returns an empty queue configured by opts.
func New(opts ...Option) *ExcessQueue {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	q := &ExcessQueue{
		items: make([]int, 0, o.Capacity),
		opts:  o,
	}
	q.cond = sync.NewCond(&q.mu)

	return q
}

// Push appends u and wakes every waiter. The admission decision (InQueue,
// positive excess, not a terminal) has already been taken under the node lock.
// Pushes after Close are dropped.
func (q *ExcessQueue) Push(u int) {
	q.mu.Lock()
	if q.done {
		q.mu.Unlock()
		return
	}
	q.items = append(q.items, u)
	q.pushes++
	q.mu.Unlock()

	q.opts.OnEnqueue(u)
	q.cond.Broadcast()
}

// Pop removes and returns the oldest node. When the queue is empty it consults
// the detector; a positive answer closes the queue. In blocking mode Pop then
// waits for a Push or Close; in non-blocking mode an empty queue closes it.
// ok is false once the queue is closed.
func (q *ExcessQueue) Pop() (u int, ok bool) {
	q.mu.Lock()
	for {
		if q.head < len(q.items) {
			u = q.take()
			q.mu.Unlock()
			q.opts.OnDequeue(u)

			return u, true
		}
		if q.done {
			q.mu.Unlock()
			return 0, false
		}

		seen := q.pushes
		q.mu.Unlock()
		finished := q.opts.Detector()
		q.mu.Lock()

		switch {
		case finished || !q.opts.Blocking:
			q.closeLocked()
		case seen != q.pushes:
			// Work arrived while the detector ran; re-check before sleeping.
		default:
			q.cond.Wait()
		}
	}
}

// take pops the head item. Caller holds q.mu.
func (q *ExcessQueue) take() int {
	u := q.items[q.head]
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	} else if q.head > len(q.items)/2 {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}

	return u
}

// Close publishes the done signal and wakes all waiters. Idempotent.
func (q *ExcessQueue) Close() {
	q.mu.Lock()
	q.closeLocked()
	q.mu.Unlock()
}

func (q *ExcessQueue) closeLocked() {
	if q.done {
		return
	}
	q.done = true
	q.cond.Broadcast()
}

// Done reports whether the queue has been closed.
func (q *ExcessQueue) Done() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.done
}

// Len returns the number of pending items.
func (q *ExcessQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items) - q.head
}
