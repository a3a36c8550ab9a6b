// Package flow implements sequential augmenting-path maximum-flow algorithms
// over a *core.Spec. They serve as reference oracles for the concurrent
// preflow solver and as the `--algorithm` alternatives of the CLI.
//
// The algorithms offered are:
//
//   - Ford–Fulkerson
//
//   - Method: depth-first search to find any augmenting path.
//
//   - Time:   O(E · F), where F is the total flow pushed.
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest augmenting paths.
//
//   - Time:   O(V · E²).
//
//   - Dinic
//
//   - Method: level graph construction + blocking flow via DFS.
//
//   - Time:   O(V² · E); O(E·√V) on unit-capacity networks.
//
// # Network model
//
// Every edge (u, v, c) may carry up to c units in either direction, matching
// the shared edge record of package core. Parallel edges are summed and
// self-loops are ignored. Node 0 is the source and node n-1 the sink.
//
// # API
//
// All entry points share one signature:
//
//	func EdmondsKarp(ctx context.Context, spec *core.Spec, opts *Options) (int64, error)
//
// A nil *Options means DefaultOptions(): quiet, logging to the logrus
// standard logger when Verbose is enabled. LevelRebuildInterval only affects
// Dinic.
//
// # Errors
//
//	ErrNilSpec             - spec is nil.
//	core.ErrTooFewNodes    - fewer than two nodes (wrapped).
//	core.ErrNodeOutOfRange - an endpoint outside 0..n-1 (wrapped).
//	core.EdgeError         - a negative capacity (wrapped).
//	context.Canceled / context.DeadlineExceeded - ctx was cancelled.
package flow
