package flow

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/preflow/core"
)

// Dinic computes the maximum flow from spec.Source() to spec.Sink() using
// Dinic's algorithm (level graph + blocking flows).
//
// Steps:
//  1. Build the residual capacity map (O(V + E)).
//  2. Repeat until the sink is unreachable:
//     a. Check for cancellation.
//     b. BFS to compute levels from the source (O(V + E)).
//     c. Build next[u] = neighbors one level deeper with spare capacity.
//     d. DFS-based blocking flow pushes until none remains, optionally
//     rebuilding the level graph every LevelRebuildInterval augmentations.
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E·√V) on unit-capacity networks.
//	Memory: O(V + E).
func Dinic(ctx context.Context, spec *core.Spec, opts *Options) (maxFlow int64, err error) {
	o := opts.normalize()

	r, err := buildResidual(ctx, spec)
	if err != nil {
		return 0, err
	}
	source, sink := spec.Source(), spec.Sink()
	n := len(r.nbrs)

	level := make([]int, n)
	iter := make([]int, n)
	next := make([][]int, n)
	augmentCount := 0
	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, err
		}

		// Levels.
		for i := range level {
			level[i] = -1
		}
		level[source] = 0
		queue := []int{source}
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for _, v := range r.nbrs[u] {
				if r.capOf[u][v] > 0 && level[v] < 0 {
					level[v] = level[u] + 1
					queue = append(queue, v)
				}
			}
		}
		if level[sink] < 0 {
			break
		}

		// Level-graph adjacency.
		for u := range next {
			next[u] = next[u][:0]
			iter[u] = 0
			for _, v := range r.nbrs[u] {
				if r.capOf[u][v] > 0 && level[v] == level[u]+1 {
					next[u] = append(next[u], v)
				}
			}
		}

		for {
			if err = ctx.Err(); err != nil {
				return maxFlow, err
			}
			pushed := dinicPush(r, next, iter, source, sink, maxCapacity)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			if o.Verbose {
				o.Logger.WithFields(log.Fields{"pushed": pushed, "total": maxFlow}).Info("dinic: blocking-flow push")
			}
			if o.LevelRebuildInterval > 0 && augmentCount%o.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return maxFlow, nil
}

// dinicPush recursively pushes flow along the level graph, updates the
// residual map in place, and returns the amount actually sent.
func dinicPush(r *residual, next [][]int, iter []int, u, sink int, available int64) int64 {
	if u == sink {
		return available
	}
	for ; iter[u] < len(next[u]); iter[u]++ {
		v := next[u][iter[u]]
		c := r.capOf[u][v]
		if c <= 0 {
			continue
		}
		if pushed := dinicPush(r, next, iter, v, sink, min(available, c)); pushed > 0 {
			r.augment(u, v, pushed)
			return pushed
		}
	}

	return 0
}
