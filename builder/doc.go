// Package builder provides deterministic, functional-options style generators
// of flow-network specifications (core.Spec) for tests, benchmarks and the
// `preflow gen` command.
//
// The package offers:
//
//   - One orchestrator: BuildSpec(n, bopts, cons...).
//   - Constructors over the first k nodes of the spec:
//     – Path(k):            chain 0-1-…-(k-1).
//     – Complete(k):        every pair {i,j}.
//     – RandomSparse(k, p): Erdős–Rényi-like pair sampling.
//     – Layered(l, w):      source → l complete layers of width w → sink.
//   - Options:
//     – WithSeed / WithRand:               RNG for stochastic paths.
//     – WithCapacityFn / WithConstantCapacity / WithUniformCapacity.
//     – WithRandomOrientation:             list edges as (v,u) at random.
//
// Guarantees:
//
//   - Determinism: same n, options, seed and constructor order ⇒ identical specs.
//   - Fast-fail on meaningless option parameters via panics in option constructors.
//   - Sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with the constructor name.
//
// Example:
//
//	spec, err := builder.BuildSpec(200,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformCapacity(1, 50)},
//	    builder.RandomSparse(200, 0.05),
//	)
package builder
