// Package queue implements the Work Queue of the preflow-push solver: a
// mutex-guarded FIFO of node IDs with a sync.Cond for blocking removal and a
// cooperative "done" signal.
//
// Admission is decided by the caller under the node lock (core.Network.Activate
// flips InQueue in the same critical section that tests the excess); Push only
// performs the structural insert afterwards, so the queue lock is never nested
// inside a node or edge lock.
//
// Pop blocks until an item is available or the queue is closed. Whenever it
// finds the queue empty it consults the Detector hook; a positive answer closes
// the queue and releases every waiter. A non-blocking queue (WithBlocking(false))
// closes as soon as it runs dry, which is the pool-of-one degenerate case.
//
//	q := queue.New(
//	    queue.WithOnDequeue(clearInQueue),
//	    queue.WithDetector(converged),
//	)
//	for {
//	    u, ok := q.Pop()
//	    if !ok {
//	        return
//	    }
//	    discharge(u)
//	}
package queue
