// Package onion builds block lower-triangular covariance factors for
// correlated group-level effects (the "onion method") and maps
// standardized latent draws through them into actual random effects.
//
// 🚀 What is the onion method?
//
//	A recursive construction of a valid lower-triangular covariance
//	factor one row at a time. Row r is a raw vector rescaled so its
//	squared norm equals a partial-correlation parameter, then scaled to
//	the row's share of the total variance; the diagonal entry absorbs
//	the remainder. It generalizes the two-variable Cholesky case and
//	always yields a positive-definite T·Tᵀ.
//
// Per grouping term i with p_i correlated effects and l_i levels:
//
//	trace(T_i·T_iᵀ)          = (tau_i·scale_i)²·p_i
//	diag(T_i·T_iᵀ)/trace     = pi            (simplex of variance shares)
//
// ✨ Key pieces:
//
//   - TermSpec / Terms — grouping-term sizes and the derived lengths of
//     every flat parameter segment (no mutable cursors: offsets are
//     computed up front)
//   - Factorize — per-term factors flattened column-major into theta_L
//   - BuildB — levels of z_b left-multiplied by the unflattened factors
//   - one shared layout for the lower-triangular flatten/unflatten order,
//     used by both the writer and the reader
//
// Structural mismatches (segment lengths vs. term sizes) are hard errors;
// numerically invalid parameter values flow through as NaN/−Inf results
// for the caller to reject, matching the density contract.
package onion
