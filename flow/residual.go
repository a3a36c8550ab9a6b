package flow

import (
	"context"
	"fmt"

	"github.com/katalvlaran/preflow/core"
)

// residual is the capacity map shared by all algorithms in this package.
//
// Every input edge (u, v, c) stores capacity c in both directions, exactly
// like the preflow network's shared edge record: pushing d along u→v leaves
// c-d on u→v and c+d on v→u. Parallel edges are summed; self-loops are
// dropped since they can never carry useful flow.
type residual struct {
	// nbrs[u] lists distinct neighbors of u in first-seen input order.
	nbrs [][]int
	// capOf[u][v] is the current residual capacity u→v.
	capOf []map[int]int64
}

// buildResidual validates spec and constructs the capacity map.
//
// Steps:
//  1. Reject a nil spec and delegate range/sign checks to spec.Validate.
//  2. For each edge in input order, skip self-loops and add c to both
//     directions, recording each neighbor the first time it appears.
//
// Complexity: O(V + E).
func buildResidual(ctx context.Context, spec *core.Spec) (*residual, error) {
	if spec == nil {
		return nil, ErrNilSpec
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("flow: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := &residual{
		nbrs:  make([][]int, spec.Nodes),
		capOf: make([]map[int]int64, spec.Nodes),
	}
	for u := range r.capOf {
		r.capOf[u] = make(map[int]int64)
	}
	for _, e := range spec.Edges {
		if e.U == e.V {
			continue
		}
		r.add(e.U, e.V, e.Capacity)
		r.add(e.V, e.U, e.Capacity)
	}

	return r, nil
}

func (r *residual) add(u, v int, c int64) {
	if _, seen := r.capOf[u][v]; !seen {
		r.nbrs[u] = append(r.nbrs[u], v)
	}
	r.capOf[u][v] += c
}

// augment moves d units along u→v.
func (r *residual) augment(u, v int, d int64) {
	r.capOf[u][v] -= d
	r.capOf[v][u] += d
}

// shortestPath finds the fewest-edges path source→sink with positive
// residual capacity and returns it with its bottleneck. Returns a nil path
// when the sink is unreachable, or ctx.Err() on cancellation.
func (r *residual) shortestPath(ctx context.Context, source, sink int) ([]int, int64, error) {
	n := len(r.nbrs)
	parent := make([]int, n)
	bottle := make([]int64, n)
	for i := range parent {
		parent[i] = -1
	}
	parent[source] = source
	bottle[source] = maxCapacity

	queue := make([]int, 0, n)
	queue = append(queue, source)
	for head := 0; head < len(queue); head++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		u := queue[head]
		for _, v := range r.nbrs[u] {
			c := r.capOf[u][v]
			if parent[v] >= 0 || c <= 0 {
				continue
			}
			parent[v] = u
			bottle[v] = min(bottle[u], c)
			if v == sink {
				return tracePath(parent, source, sink), bottle[sink], nil
			}
			queue = append(queue, v)
		}
	}

	return nil, 0, nil
}

// tracePath rebuilds source→sink from parent links.
func tracePath(parent []int, source, sink int) []int {
	path := []int{sink}
	for cur := sink; cur != source; cur = parent[cur] {
		path = append(path, parent[cur])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// maxCapacity is the "infinite" bottleneck seed.
const maxCapacity = int64(^uint64(0) >> 1)
