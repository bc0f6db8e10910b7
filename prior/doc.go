// Package prior transforms standardized parameters into model
// coefficients and scores them: fixed-effect shrinkage families, the
// intercept prior, and the hyperpriors of the correlated random effects.
//
// 🚀 The transform-and-score contract
//
//	Samplers work on standardized, unconstrained draws. Each prior family
//	implements the same two operations through the Coef interface:
//	  • Transform   — map z (plus any shrinkage draws) to coefficients β
//	  • LogDensity  — score the standardized draws under the family
//
// ✨ Families:
//
//   - None          — β = z, no log-prior term
//   - Normal        — β = z·scale + mean; standard-normal score on z
//   - StudentT      — same transform; standard-t score with per-k df
//   - Horseshoe     — global-local shrinkage: β = z .* λ .* g with
//     λ_k = local1_k·√local2_k and g = global1·√global2·GlobalScale
//   - HorseshoePlus — a second local factor λ⁺_k = local3_k·√local4_k
//
// The horseshoe-plus second inverse-gamma reuses the per-coefficient
// Scale slot as its shape/rate hyperparameter. That reuse is upstream
// behavior preserved bit-for-bit; it is isolated behind one accessor so a
// future correction touches a single line.
//
// Also here:
//
//   - Intercept — normal or Student-t log-prior on the intercept
//   - RandomEffects — hyperpriors of the covariance decomposition:
//     standard normals on z_b/z_T, the beta shapes recurrence on partial
//     correlations, gamma priors on the simplex sources and on tau
//
// Every named density comes from gonum's stat/distuv; this package owns
// no distribution math of its own.
package prior
