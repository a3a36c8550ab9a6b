package flow

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/preflow/core"
)

// EdmondsKarp computes the maximum flow from spec.Source() to spec.Sink()
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns:
//   - maxFlow: total flow value
//   - err: ErrNilSpec, a wrapped core validation error, or ctx.Err().
//
// Options (nil uses defaults):
//   - Verbose: log each augmentation
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(ctx context.Context, spec *core.Spec, opts *Options) (maxFlow int64, err error) {
	o := opts.normalize()

	r, err := buildResidual(ctx, spec)
	if err != nil {
		return 0, err
	}
	source, sink := spec.Source(), spec.Sink()

	for {
		path, bottle, err := r.shortestPath(ctx, source, sink)
		if err != nil {
			return maxFlow, err
		}
		if len(path) == 0 {
			break
		}
		if o.Verbose {
			o.Logger.WithFields(log.Fields{"path": path, "flow": bottle}).Info("edmonds-karp: augmenting path")
		}
		maxFlow += bottle

		for i := 0; i+1 < len(path); i++ {
			r.augment(path[i], path[i+1], bottle)
		}
	}

	return maxFlow, nil
}
