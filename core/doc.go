// Package core provides the Graph Store and Adjacency Index of the concurrent
// preflow-push solver.
//
// The store is an arena: nodes and edges live in two slices and are addressed
// by stable integer indices. Each record carries its own sync.Mutex; callers
// never share raw references across goroutines except through the guarded
// accessors:
//
//	LockNode(u)      (*Node, unlock)          // single-node step (relabel, re-enqueue)
//	LockPair(u, v)   (nu, nv *Node, unlock)   // lower index locked first
//	LockEdge(e)      (*Edge, unlock)          // always after the node locks
//
// The Adjacency Index lists, for every node, the incident edge IDs in input
// order (both directions share one Edge record: residual u→v is
// Capacity-Flow and v→u is Capacity+Flow). It is immutable after NewNetwork
// and needs no synchronization.
//
// Node 0 is the source (height n), node n-1 is the sink. Only Excess, Height,
// Flow and InQueue change after construction.
//
// Errors:
//
//	ErrNilSpec        - nil *Spec passed to NewNetwork.
//	ErrTooFewNodes    - fewer than two nodes.
//	ErrNodeOutOfRange - edge endpoint outside 0..n-1.
//	EdgeError         - negative capacity.
package core
