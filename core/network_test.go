package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/preflow/core"
)

// diamond is the four-node network used across packages:
// (0,1,10) (0,2,5) (1,2,3) (1,3,4) (2,3,9).
func diamond() *core.Spec {
	s := core.NewSpec(4)
	s.AddEdge(0, 1, 10)
	s.AddEdge(0, 2, 5)
	s.AddEdge(1, 2, 3)
	s.AddEdge(1, 3, 4)
	s.AddEdge(2, 3, 9)

	return s
}

func TestNewNetwork_InitialState(t *testing.T) {
	net, err := core.NewNetwork(diamond())
	require.NoError(t, err)

	require.Equal(t, 4, net.NodeCount())
	require.Equal(t, 5, net.EdgeCount())
	require.Equal(t, 0, net.Source())
	require.Equal(t, 3, net.Sink())

	snap := net.Snapshot()
	require.Equal(t, int64(4), snap.Nodes[0].Height, "source starts at height n")
	for _, nd := range snap.Nodes[1:] {
		require.Zero(t, nd.Height)
		require.Zero(t, nd.Excess)
		require.False(t, nd.InQueue)
	}
	for i, e := range snap.Edges {
		require.Equal(t, i, e.ID)
		require.Zero(t, e.Flow)
	}
}

func TestNewNetwork_Validation(t *testing.T) {
	_, err := core.NewNetwork(nil)
	require.ErrorIs(t, err, core.ErrNilSpec)

	_, err = core.NewNetwork(core.NewSpec(1))
	require.ErrorIs(t, err, core.ErrTooFewNodes)

	s := core.NewSpec(3)
	s.AddEdge(0, 3, 1)
	_, err = core.NewNetwork(s)
	require.ErrorIs(t, err, core.ErrNodeOutOfRange)

	s = core.NewSpec(3)
	s.AddEdge(0, 1, 2)
	s.AddEdge(1, 2, -4)
	_, err = core.NewNetwork(s)
	var ee core.EdgeError
	require.True(t, errors.As(err, &ee))
	require.Equal(t, 1, ee.Index)
	require.Equal(t, int64(-4), ee.Cap)
}

func TestAdjacency_BothEndpoints(t *testing.T) {
	net, err := core.NewNetwork(diamond())
	require.NoError(t, err)
	adj := net.Adjacency()

	require.Equal(t, []int{0, 1}, adj.Incident(0))
	require.Equal(t, []int{0, 2, 3}, adj.Incident(1))
	require.Equal(t, []int{1, 2, 4}, adj.Incident(2))
	require.Equal(t, []int{3, 4}, adj.Incident(3))
	require.Equal(t, 3, adj.Degree(1))

	require.Equal(t, 1, adj.Other(0, 0))
	require.Equal(t, 0, adj.Other(0, 1))
	require.Equal(t, 3, adj.Other(4, 2))
}

func TestAdjacency_SelfLoopListedOnce(t *testing.T) {
	s := core.NewSpec(3)
	s.AddEdge(1, 1, 5)
	s.AddEdge(0, 2, 1)
	net, err := core.NewNetwork(s)
	require.NoError(t, err)

	require.Equal(t, []int{0}, net.Adjacency().Incident(1))
	require.Equal(t, 1, net.Adjacency().Other(0, 1))
}

func TestEdge_ResidualAndApply(t *testing.T) {
	net, err := core.NewNetwork(diamond())
	require.NoError(t, err)

	e, unlock := net.LockEdge(2) // 1→2 cap 3
	defer unlock()

	require.Equal(t, int64(3), e.Residual(1))
	require.Equal(t, int64(3), e.Residual(2))

	e.Apply(1, 2)
	require.Equal(t, int64(2), e.Flow)
	require.Equal(t, int64(1), e.Residual(1))
	require.Equal(t, int64(5), e.Residual(2))

	e.Apply(2, 4)
	require.Equal(t, int64(-2), e.Flow, "pushing from V flips the sign")
	require.Equal(t, int64(5), e.Residual(1))
	require.Equal(t, int64(1), e.Residual(2))
}

func TestActivate_AdmissionRule(t *testing.T) {
	net, err := core.NewNetwork(diamond())
	require.NoError(t, err)

	nd, unlock := net.LockNode(1)
	require.False(t, net.Activate(nd), "zero excess is not admitted")
	nd.Excess = 3
	require.True(t, net.Activate(nd))
	require.True(t, nd.InQueue)
	require.False(t, net.Activate(nd), "already queued")
	unlock()

	for _, u := range []int{net.Source(), net.Sink()} {
		nd, unlock := net.LockNode(u)
		nd.Excess = 7
		require.False(t, net.Activate(nd), "terminals are never admitted")
		unlock()
	}
}

func TestSnapshot_NetInflow(t *testing.T) {
	net, err := core.NewNetwork(diamond())
	require.NoError(t, err)

	e, unlock := net.LockEdge(3) // 1→3
	e.Apply(1, 4)
	unlock()
	e, unlock = net.LockEdge(2) // 1→2
	e.Apply(2, 1)
	unlock()

	in := net.Snapshot().NetInflow()
	require.Equal(t, []int64{0, -3, -1, 4}, in)
}
