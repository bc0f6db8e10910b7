// Package hbern evaluates the unnormalized log-posterior density of a
// Bayesian hierarchical generalized linear model with a Bernoulli response,
// built for repeated invocation by an external gradient-based sampler.
//
// 🚀 What is hbern?
//
//	A pure-Go evaluation core that, given a flat parameter vector and a
//	fixed data bundle, returns one scalar log-density — and, on a second
//	pass, posterior-predictive summaries. It brings together:
//		• Link families: logit, probit, cauchit, log, cloglog
//		• Numerically stable partitioned Bernoulli log-likelihoods
//		• CSR sparse application of the random-effects design
//		• Onion-method construction of block covariance factors
//		• Shrinkage priors: normal, Student-t, horseshoe, horseshoe-plus
//		• Intercept-boundary logic for the log link
//
// ✨ Why choose hbern?
//
//   - Pure functions – no shared state, no I/O, safe across parallel chains
//   - Rock-solid numerics – log-scale kernels, max-shift under the log link
//   - Construction-time validation – hot path assumes validated shapes
//   - gonum under the hood – mat, floats, stat/distuv do the heavy lifting
//
// Everything is organized under six subpackages:
//
//	link/      — link-function family and inverse links
//	bern/      — exact and pointwise Bernoulli log-likelihood paths
//	sparse/    — CSR matrix and matrix-vector product
//	onion/     — covariance factors and random-effects mapping
//	prior/     — fixed-effect, intercept and random-effects priors
//	posterior/ — data bundle, parameters, LogDensity and Generate
//
// Quick sketch of one evaluation:
//
//	z_beta ──prior──▶ beta ──────┐
//	z_b ──onion(theta_L)──▶ b ───┼──▶ eta0, eta1 ──bern──▶ log-likelihood
//	offset, intercept ───────────┘                       + log-priors = density
//
// The sampler, automatic differentiation, constraint transforms and data
// loading all live outside this module; see posterior for the contract.
package hbern
