package prior

import (
	"github.com/katalvlaran/hbern/onion"
	"gonum.org/v1/gonum/stat/distuv"
)

// RandomEffects — hyperpriors of the covariance decomposition
//
// Description:
//
//	Accumulates the log-prior terms attached to the random-effects
//	parameters feeding onion.Factorize and onion.BuildB:
//
//	  • z_b, z_T         — standard normal, elementwise
//	  • rho              — one beta density per partial correlation; per
//	    term with p>1 the shape pair follows the recurrence
//	      ν ← regularization_i + (p−2)/2
//	      shape1₁ = shape2₁ = ν
//	      for j ≥ 2: ν ← ν − 1/2, shape1_j = j/2, shape2_j = ν
//	  • zeta             — Gamma(concentration_k, rate 1), elementwise
//	  • tau              — Gamma(gammaShape_i, rate 1), per term
//
// Regularization carries one entry per term with p>1; concentration
// carries p entries per such term (same layout as zeta); gammaShape
// carries one entry per term. All segment offsets derive from the term
// specs — no cursors survive across iterations.
//
// Errors:
//   - onion.ErrBadTerm — degenerate term specs.
//   - ErrShapeMismatch — any slice length off its derived value.
//
// Out-of-support draws (rho at 0 or 1, nonpositive zeta/tau) score −Inf
// through distuv and propagate as values.
//
// Complexity: O(q + len_rho + len_concentration + t).
func RandomEffects(terms onion.Terms, zB, zT, rho, zeta, tau,
	regularization, concentration, gammaShape []float64) (float64, error) {
	if err := terms.Validate(); err != nil {
		return 0, err
	}

	var wide int
	for _, term := range terms {
		if term.P > 1 {
			wide++
		}
	}
	if len(zB) != terms.Q() || len(zT) != terms.LenZT() ||
		len(rho) != terms.LenRho() ||
		len(zeta) != terms.LenConcentration() ||
		len(concentration) != terms.LenConcentration() ||
		len(tau) != len(terms) || len(gammaShape) != len(terms) ||
		len(regularization) != wide {
		return 0, ErrShapeMismatch
	}

	var lp float64
	for _, v := range zB {
		lp += distuv.UnitNormal.LogProb(v)
	}
	for _, v := range zT {
		lp += distuv.UnitNormal.LogProb(v)
	}

	regAt, rhoAt := 0, 0
	for _, term := range terms {
		if term.P < 2 {
			continue
		}

		nu := regularization[regAt] + 0.5*float64(term.P-2)
		regAt++

		shape1, shape2 := nu, nu
		for j := 0; j < term.P-1; j++ {
			if j > 0 {
				nu -= 0.5
				shape1 = 0.5 * float64(j+1)
				shape2 = nu
			}
			lp += distuv.Beta{Alpha: shape1, Beta: shape2}.LogProb(rho[rhoAt+j])
		}
		rhoAt += term.P - 1
	}

	for k, v := range zeta {
		lp += distuv.Gamma{Alpha: concentration[k], Beta: 1}.LogProb(v)
	}
	for i, v := range tau {
		lp += distuv.Gamma{Alpha: gammaShape[i], Beta: 1}.LogProb(v)
	}

	return lp, nil
}
