// Package preflow implements a concurrent preflow-push (push-relabel)
// maximum-flow solver over a core.Network.
//
// # Algorithm
//
// Solve first saturates every edge incident to the source (whose height is n)
// and queues the neighbours that received excess. A fixed pool of workers
// then repeatedly takes an active node u from the shared queue and
// discharges it:
//
//   - For each incident edge, in adjacency order, it locks u and the
//     neighbour v (lower index first) and then the edge. When height(u) >
//     height(v) it pushes min(excess(u), residual(u→v)).
//   - If a full scan pushed nothing, u is relabelled by one, unless another
//     worker already raised it.
//   - u is re-queued while it still has excess.
//
// Nodes are admitted to the queue only while holding their own lock, so a
// node is never queued twice. The run ends when the sink holds exactly what
// left the source; this is checked by whichever worker finds the queue
// empty, and it closes the queue for everyone.
//
// Edges are undirected in capacity: an edge (u, v, c) may carry up to c units
// either way, and pushes against the listed direction are allowed.
//
// # Observability
//
// Solve logs start and finish at Info and every push and relabel at Debug
// through logrus. It opens the spans "preflow.Solve", "preflow.seed" and
// "preflow.drain" on the configured OpenTelemetry tracer, and updates an
// optional Prometheus collector set (NewMetrics).
//
// # Checking results
//
// Verify re-checks capacity, conservation and height post-conditions on a
// solved network, and MinCut derives the minimum cut from the residual
// network. Both must run after Solve has returned.
//
// Example:
//
//	net, _ := core.NewNetwork(spec)
//	res, err := preflow.Solve(ctx, net, preflow.WithWorkers(8))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Flow)
package preflow
