// Package bfs provides breadth-first search over a core.Network, returning
// hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: node → distance from start (Unreached when not reached)
//   - Parent / ParentEdge: predecessor node and edge in the BFS tree
//   - Supports functional hooks:
//   - OnEnqueue (when a node is first reached)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual steps via WithFilter(curr, next, edge).
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - The preflow package uses it with a residual-capacity filter to find the
//     source side of a minimum cut once the solver has converged.
//
// Determinism
//
//	Neighbors are enqueued in adjacency order (input edge order), so the visit
//	sequence is fully reproducible.
//
// Concurrency
//
//	BFS reads only the immutable adjacency index. Filters that inspect mutable
//	records must take the record locks themselves (or run on a quiescent network).
//
// Complexity (n = nodes, m = edges)
//
//   - Time:   O(n + m)
//   - Memory: O(n)
//
// Usage
//
//	res, err := bfs.BFS(net, net.Source(),
//	    bfs.WithContext(ctx),
//	    bfs.WithFilter(func(curr, next, e int) bool { return residual(curr, e) > 0 }),
//	)
//
// Errors
//
//   - ErrNetworkNil       if the network pointer is nil.
//   - ErrStartOutOfRange  if the start index is not a node.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - ctx.Err() on cancellation, and wrapped OnVisit errors.
package bfs
