// Package posterior assembles the full model: it owns the data bundle,
// the flat parameter layout, the scalar log-density evaluation and the
// generated-quantities pass.
//
// 🚀 Evaluation contract
//
//	density, err := posterior.LogDensity(data, params)
//	summary, err := posterior.Generate(data, params, src)
//
//	data    — fixed per fit; shapes validated once by NewData
//	params  — fresh per call, supplied by the sampler after its own
//	          unconstrained→constrained transform
//	density — a float64; −Inf means "reject this point", NaN propagates
//	          the same way; errors are reserved for configuration faults
//
// One call walks: priors transform z_beta into β; the onion factors turn
// tau/zeta/rho/z_T into theta_L and z_b into random effects b; the linear
// predictor is assembled once (X·β + offset + Z·b + intercept, with the
// max-shift under the log link) and shared between the likelihood and the
// generated pass; the Bernoulli likelihood and every log-prior term sum
// into one scalar.
//
// ⚙️ Concurrency & purity
//
//	Both entry points are pure: no shared mutable state, no I/O, nothing
//	memoized between calls. Concurrent evaluations (parallel chains) need
//	no coordination; each call allocates its own scratch.
//
// Generate is the only consumer of randomness: it draws one Bernoulli
// outcome per observation from the implied probabilities and reports the
// mean, plus the uncentered "true" intercept alpha when one is present.
package posterior
