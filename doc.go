// Package preflow is a concurrent maximum-flow toolkit built around a
// parallel preflow-push (push-relabel) solver.
//
// A fixed pool of goroutines discharges active nodes taken from one shared
// work queue. Every node and every edge carries its own mutex, two nodes are
// always locked lowest index first, and the run ends when the sink holds
// exactly what left the source.
//
// The module is organized under these packages:
//
//	core/       network records (nodes, edges, adjacency) and their locks
//	queue/      the shared FIFO of active nodes with termination detection
//	preflow/    Solve, Verify and MinCut; logging, metrics and tracing hooks
//	flow/       sequential Ford–Fulkerson, Edmonds–Karp and Dinic oracles
//	bfs/        breadth-first traversal of a network with edge filters
//	builder/    deterministic network generators for tests and benchmarks
//	netio/      the "n m c p" text format reader and writers
//	config/     viper-based configuration with PREFLOW_* overrides
//	telemetry/  OpenTelemetry tracer provider with OTLP/HTTP export
//	cmd/preflow  the command-line front end
//
// Quick example (the minimum cut {0,1} has capacity 5+3+4):
//
//	spec := core.NewSpec(4)
//	spec.AddEdge(0, 1, 10)
//	spec.AddEdge(0, 2, 5)
//	spec.AddEdge(1, 2, 3)
//	spec.AddEdge(1, 3, 4)
//	spec.AddEdge(2, 3, 9)
//	net, _ := core.NewNetwork(spec)
//	res, _ := preflow.Solve(ctx, net, preflow.WithWorkers(4))
//	fmt.Println(res.Flow) // 12
package preflow
