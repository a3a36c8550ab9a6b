package flow

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/preflow/core"
)

// FordFulkerson computes the maximum flow from spec.Source() to spec.Sink()
// using the Ford–Fulkerson method (iterative DFS for any augmenting path).
//
// Steps:
//  1. Build the residual capacity map (O(V + E)).
//  2. Repeat until no augmenting path:
//     a. Check ctx for cancellation.
//     b. Iterative DFS from the source over positive residual arcs.
//     c. If the sink was not reached, stop.
//     d. Augment by the bottleneck along the parent chain.
//
// Complexity:
//
//	Time:   O(E · F) where F = maxFlow.
//	Memory: O(V + E).
//
// Suitable for small integral networks; prefer EdmondsKarp or Dinic for
// stronger guarantees.
func FordFulkerson(ctx context.Context, spec *core.Spec, opts *Options) (maxFlow int64, err error) {
	o := opts.normalize()

	r, err := buildResidual(ctx, spec)
	if err != nil {
		return 0, err
	}
	source, sink := spec.Source(), spec.Sink()
	n := len(r.nbrs)

	type stackEntry struct {
		node int
		flow int64
	}

	parent := make([]int, n)
	minCap := make([]int64, n)
	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, err
		}

		for i := range parent {
			parent[i] = -1
		}
		parent[source] = source
		stack := []stackEntry{{node: source, flow: maxCapacity}}
		found := false

		for len(stack) > 0 && !found {
			entry := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			u := entry.node

			for _, v := range r.nbrs[u] {
				c := r.capOf[u][v]
				if c <= 0 || parent[v] >= 0 {
					continue
				}
				parent[v] = u
				minCap[v] = min(entry.flow, c)
				if v == sink {
					found = true
					break
				}
				stack = append(stack, stackEntry{node: v, flow: minCap[v]})
			}
		}
		if !found {
			break
		}

		delta := minCap[sink]
		if o.Verbose {
			o.Logger.WithFields(log.Fields{
				"path": tracePath(parent, source, sink),
				"flow": delta,
			}).Info("ford-fulkerson: augmenting path")
		}
		maxFlow += delta

		for v := sink; v != source; v = parent[v] {
			r.augment(parent[v], v, delta)
		}
	}

	return maxFlow, nil
}
