// Package core_test verifies the locking protocol of the Graph Store under contention.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/preflow/core"
)

// TestLockPair_OppositeOrdersDoNotDeadlock hammers the same pairs from both
// directions; the lower-index-first rule must keep this from deadlocking.
func TestLockPair_OppositeOrdersDoNotDeadlock(t *testing.T) {
	const (
		nodes  = 8
		rounds = 2000
	)
	s := core.NewSpec(nodes)
	for u := 0; u < nodes-1; u++ {
		s.AddEdge(u, u+1, 1)
	}
	net, err := core.NewNetwork(s)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				u, v := (i+g)%nodes, (i+g+3)%nodes
				if g%2 == 1 {
					u, v = v, u
				}
				nu, nv, unlock := net.LockPair(u, v)
				nu.Excess++
				nv.Excess--
				unlock()
			}
		}(g)
	}
	wg.Wait()

	var total int64
	for _, nd := range net.Snapshot().Nodes {
		total += nd.Excess
	}
	require.Zero(t, total, "every transfer is atomic over both endpoints")
}

// TestLockPair_SameNode must not self-deadlock.
func TestLockPair_SameNode(t *testing.T) {
	net, err := core.NewNetwork(diamond())
	require.NoError(t, err)

	nu, nv, unlock := net.LockPair(2, 2)
	require.Same(t, nu, nv)
	unlock()

	nd, unlock := net.LockNode(2)
	require.Equal(t, 2, nd.ID)
	unlock()
}

// TestLockEdge_ConcurrentApply checks that flow updates under the edge lock are not lost.
func TestLockEdge_ConcurrentApply(t *testing.T) {
	s := core.NewSpec(2)
	s.AddEdge(0, 1, 1_000_000)
	net, err := core.NewNetwork(s)
	require.NoError(t, err)

	const workers, pushes = 16, 500
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < pushes; i++ {
				e, unlock := net.LockEdge(0)
				e.Apply(0, 1)
				unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int64(workers*pushes), net.Snapshot().Edges[0].Flow)
}
