// Package searchspace defines and manipulates mixed-type parameter search
// spaces for black-box optimization, such as Bayesian hyperparameter tuning.
// Each dimension converts, batch-wise and in both directions, between a
// human-meaningful original representation and a numerically well-behaved
// warped representation suitable for a downstream regression or optimization
// model.
//
// # Features
//
// The package includes the following key features:
//
//   - Three dimension variants: Real (continuous), Integer and Categorical,
//     behind one closed Dimension interface
//   - Composable, reversible transform pipelines: identity, base-N log,
//     normalize-to-unit-interval, one-hot, string and label encodings
//   - Round-trip fidelity: InverseTransform(Transform(x)) == x across every
//     variant and transform mode
//   - Inclusive-bound sampling with explicit, seedable random generators
//   - Log-uniform priors that sample log-uniformly in the original space
//     regardless of the active representation
//   - Space-level batched transform/inverse-transform producing gonum
//     matrices, dimension lookup, aggregate bounds and point distance
//   - Dimension-description inference: (1, 5) is an Integer, (1.0, 5) a
//     Real, a value list a Categorical
//   - YAML space documents for declarative construction
//
// # Usage
//
// Build a space, sample it, and move points between representations:
//
//	space, err := searchspace.NewSpace(
//	    []any{0.001, 0.1, "log-uniform"},       // learning rate (Real)
//	    []any{16, 512},                         // batch size (Integer)
//	    []any{"adam", "sgd", "rmsprop"},        // optimizer (Categorical)
//	)
//	if err != nil { ... }
//
//	rng := rand.New(rand.NewSource(42))
//	points, _ := space.Rvs(100, rng)            // 100 × 3 original-space points
//
//	_ = space.SetTransformer(searchspace.TransformNormalize)
//	warped, _ := space.Transform(points)        // 100 × transformed_n_dims matrix
//	back, _ := space.InverseTransform(warped)   // round-trips to points
//
// The warped matrix is what a Gaussian-process or other surrogate model
// consumes; the optimization strategy itself is out of scope here.
//
// # Randomness
//
// Every sampling call takes an explicit *rand.Rand (golang.org/x/exp/rand)
// handle, making draws reproducible and free of global random state. A nil
// handle falls back to a fresh time-seeded generator.
//
// # Error Handling
//
// Construction validates eagerly: invalid bounds, priors, dtypes, weights
// and malformed descriptions all fail at construction. Domain failures
// (distance on out-of-bounds operands, inverting unknown categories) and
// configuration failures (unknown transform modes) surface as wrapped
// sentinel errors; see errors.go. Space lookup misses are not errors and
// return the sentinel pair (-1, nil) instead.
package searchspace
