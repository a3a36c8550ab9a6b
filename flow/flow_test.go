package flow_test

import (
	"context"
	"errors"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/preflow/builder"
	"github.com/katalvlaran/preflow/core"
	"github.com/katalvlaran/preflow/flow"
)

// algorithm is the shared signature of every max-flow routine.
type algorithm func(context.Context, *core.Spec, *flow.Options) (int64, error)

var algorithms = map[string]algorithm{
	"FordFulkerson": flow.FordFulkerson,
	"EdmondsKarp":   flow.EdmondsKarp,
	"Dinic":         flow.Dinic,
}

// spec builds a *core.Spec from (u, v, c) triples.
func spec(n int, triples ...[3]int64) *core.Spec {
	s := core.NewSpec(n)
	for _, tr := range triples {
		s.AddEdge(int(tr[0]), int(tr[1]), tr[2])
	}
	return s
}

// FlowSuite runs every algorithm over the same table of networks.
type FlowSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *FlowSuite) SetupTest() {
	s.ctx = context.Background()
}

// eachAlgorithm runs fn as a subtest per algorithm.
func (s *FlowSuite) eachAlgorithm(fn func(name string, run algorithm)) {
	for name, run := range algorithms {
		s.Run(name, func() { fn(name, run) })
	}
}

func (s *FlowSuite) TestKnownValues() {
	cases := []struct {
		name string
		spec *core.Spec
		want int64
	}{
		{"single edge", spec(2, [3]int64{0, 1, 7}), 7},
		{"edge listed sink to source", spec(2, [3]int64{1, 0, 7}), 7},
		{"two disjoint paths", spec(4,
			[3]int64{0, 1, 5}, [3]int64{1, 3, 5},
			[3]int64{0, 2, 3}, [3]int64{2, 3, 4}), 8},
		{"parallel edges", spec(2, [3]int64{0, 1, 3}, [3]int64{0, 1, 4}), 7},
		{"zero capacity", spec(2, [3]int64{0, 1, 0}), 0},
		{"self-loop ignored", spec(3,
			[3]int64{0, 1, 4}, [3]int64{1, 1, 9}, [3]int64{1, 2, 6}), 4},
		{"middle edge reversed", spec(4,
			[3]int64{0, 1, 5}, [3]int64{2, 1, 5}, [3]int64{2, 3, 5}), 5},
		{"disconnected", spec(4, [3]int64{0, 1, 5}, [3]int64{2, 3, 5}), 0},
		{"no edges", spec(3), 0},
		{"five edges with cross link", spec(4,
			[3]int64{0, 1, 10}, [3]int64{0, 2, 5}, [3]int64{1, 2, 3},
			[3]int64{1, 3, 4}, [3]int64{2, 3, 9}), 12},
		{"sink bottleneck", spec(4,
			[3]int64{0, 1, 10}, [3]int64{0, 2, 5},
			[3]int64{1, 2, 4}, [3]int64{2, 3, 9}), 9},
	}

	s.eachAlgorithm(func(_ string, run algorithm) {
		for _, tc := range cases {
			got, err := run(s.ctx, tc.spec, nil)
			s.Require().NoError(err, tc.name)
			s.Require().Equal(tc.want, got, tc.name)
		}
	})
}

func (s *FlowSuite) TestInputErrors() {
	s.eachAlgorithm(func(_ string, run algorithm) {
		_, err := run(s.ctx, nil, nil)
		s.Require().ErrorIs(err, flow.ErrNilSpec)

		_, err = run(s.ctx, spec(1), nil)
		s.Require().ErrorIs(err, core.ErrTooFewNodes)

		_, err = run(s.ctx, spec(2, [3]int64{0, 2, 1}), nil)
		s.Require().ErrorIs(err, core.ErrNodeOutOfRange)

		_, err = run(s.ctx, spec(2, [3]int64{0, 1, -3}), nil)
		var ee core.EdgeError
		s.Require().True(errors.As(err, &ee), "want core.EdgeError, got %v", err)
		s.Require().Equal(int64(-3), ee.Cap)
	})
}

func (s *FlowSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.eachAlgorithm(func(_ string, run algorithm) {
		_, err := run(ctx, spec(2, [3]int64{0, 1, 1}), nil)
		s.Require().ErrorIs(err, context.Canceled)
	})
}

func (s *FlowSuite) TestVerboseLogging() {
	s.eachAlgorithm(func(_ string, run algorithm) {
		logger, hook := test.NewNullLogger()
		opts := &flow.Options{Verbose: true, Logger: logger}

		got, err := run(s.ctx, spec(3, [3]int64{0, 1, 2}, [3]int64{1, 2, 2}), opts)
		s.Require().NoError(err)
		s.Require().Equal(int64(2), got)
		s.Require().NotEmpty(hook.AllEntries())
		s.Require().Equal(int64(2), sumField(hook.AllEntries()))
	})
}

func (s *FlowSuite) TestQuietByDefault() {
	logger, hook := test.NewNullLogger()
	_, err := flow.EdmondsKarp(s.ctx, spec(2, [3]int64{0, 1, 1}), &flow.Options{Logger: logger})
	s.Require().NoError(err)
	s.Require().Empty(hook.AllEntries())
}

func (s *FlowSuite) TestDinicLevelRebuildInterval() {
	g := spec(6,
		[3]int64{0, 1, 10}, [3]int64{0, 2, 10}, [3]int64{1, 2, 2},
		[3]int64{1, 3, 4}, [3]int64{1, 4, 8}, [3]int64{2, 4, 9},
		[3]int64{3, 5, 10}, [3]int64{4, 3, 6}, [3]int64{4, 5, 10})
	want, err := flow.EdmondsKarp(s.ctx, g, nil)
	s.Require().NoError(err)

	for _, interval := range []int{-1, 0, 1, 2, 5} {
		got, err := flow.Dinic(s.ctx, g, &flow.Options{LevelRebuildInterval: interval})
		s.Require().NoError(err)
		s.Require().Equal(want, got, "interval=%d", interval)
	}
}

func (s *FlowSuite) TestRandomAgreement() {
	for seed := int64(1); seed <= 20; seed++ {
		g, err := builder.BuildSpec(25,
			[]builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithUniformCapacity(0, 30),
				builder.WithRandomOrientation(),
			},
			builder.RandomSparse(25, 0.2),
		)
		s.Require().NoError(err)

		results := make(map[string]int64, len(algorithms))
		for name, run := range algorithms {
			got, err := run(s.ctx, g, nil)
			s.Require().NoError(err)
			results[name] = got
		}
		s.Require().Equal(results["EdmondsKarp"], results["Dinic"], "seed=%d", seed)
		s.Require().Equal(results["EdmondsKarp"], results["FordFulkerson"], "seed=%d", seed)
	}
}

// sumField adds up the per-augmentation amounts logged by Verbose runs.
func sumField(entries []*log.Entry) int64 {
	var total int64
	for _, e := range entries {
		for _, key := range []string{"flow", "pushed"} {
			if v, ok := e.Data[key].(int64); ok {
				total += v
			}
		}
	}
	return total
}

func TestFlowSuite(t *testing.T) {
	suite.Run(t, new(FlowSuite))
}

// TestOptionsNormalize checks that nil and partial Options behave like defaults.
func TestOptionsNormalize(t *testing.T) {
	def := flow.DefaultOptions()
	require.False(t, def.Verbose)
	require.NotNil(t, def.Logger)
	require.Zero(t, def.LevelRebuildInterval)

	got, err := flow.Dinic(context.Background(), spec(2, [3]int64{0, 1, 4}), &flow.Options{Verbose: true})
	require.NoError(t, err)
	require.Equal(t, int64(4), got)
}
