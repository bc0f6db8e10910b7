// Package bern computes Bernoulli log-likelihoods over linear predictors
// partitioned by outcome, with link-specific numerically stable formulas.
//
// 🚀 Why partitioned?
//
//	Observations arrive pre-split into eta0 (rows with y=0) and eta1
//	(rows with y=1), so the likelihood loops carry no per-row branching
//	and each link gets its exact closed form:
//	  • Logit   — −log1pExp(eta0), −log1pExp(−eta1)
//	  • Probit  — logΦ(−eta0), logΦ(eta1)
//	  • Cauchit — Cauchy log-CCDF / log-CDF
//	  • Log     — log1mExp(eta0), eta1 (eta1 already a log-probability)
//	  • Cloglog — −exp(eta0), log1mExp(−exp(eta1))
//
// Two interchangeable paths:
//
//   - LogLikExact — the closed forms above; exact and preferred when no
//     observation weights are in play.
//   - Pointwise — per-observation log Bernoulli(y | linkinv(eta)) through
//     the probability scale; less stable for extreme eta under non-logit
//     links, but composable with arbitrary per-observation weights (the
//     caller forms the weighted dot product).
//
// Non-finite results (−Inf, NaN) are legitimate values here: they signal
// a rejected parameter point to the sampler and are returned, not raised.
// The only error either path produces is link.ErrUnknownLink.
package bern
