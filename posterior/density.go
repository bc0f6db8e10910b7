package posterior

import (
	"math"

	"github.com/katalvlaran/hbern/bern"
	"github.com/katalvlaran/hbern/onion"
	"github.com/katalvlaran/hbern/prior"
	"gonum.org/v1/gonum/floats"
)

// LogDensity — one evaluation of the unnormalized log-posterior
//
// Description:
//
//	Given a validated bundle and a fresh parameter vector, computes
//
//	  log p(y | β, b, γ) + log p(z_β, shrinkage) + log p(γ)
//	                     + log p(z_b, z_T, ρ, ζ, τ)
//
//	where β comes from the fixed-effect prior's transform, the
//	covariance factors and random effects b from the onion construction,
//	and the likelihood from the partitioned Bernoulli paths:
//	exact closed forms when the fit is unweighted and not
//	prior-predictive, the weighted pointwise path otherwise. Under
//	PriorPD the likelihood is dropped entirely.
//
//	Everything is recomputed from scratch — no state survives between
//	calls, so concurrent evaluations need no coordination.
//
// Returns:
//
//	A finite density for admissible points; −Inf for parameter values
//	outside their constrained domains (a rejection, not a fault); NaN
//	propagated from irrecoverable numeric territory (e.g. a log-link
//	predictor above zero). Errors are reserved for configuration faults:
//	nil inputs, parameter lengths off the bundle's bookkeeping, an
//	unknown link or prior family.
//
// Complexity: O(N·K + nnz(Z) + Σ l_i·p_i² + q + K).
func LogDensity(d *Data, p *Params) (float64, error) {
	if d == nil {
		return 0, ErrNilData
	}
	if err := d.checkParams(p); err != nil {
		return 0, err
	}
	if !p.admissible() {
		return math.Inf(-1), nil
	}

	shr := &prior.Shrinkage{Global: p.Global, Local: p.Local}
	beta, err := d.PriorBeta.Transform(p.ZBeta, shr)
	if err != nil {
		return 0, err
	}

	var b []float64
	if len(d.Terms) > 0 {
		var thetaL []float64
		if thetaL, err = onion.Factorize(d.Terms, p.Tau, d.Scale, p.Zeta, p.Rho, p.ZT); err != nil {
			return 0, err
		}
		if b, err = onion.BuildB(p.ZB, thetaL, d.Terms); err != nil {
			return 0, err
		}
	}

	pred, err := d.linearPredictor(p, beta, b)
	if err != nil {
		return 0, err
	}

	var lp float64
	if !d.PriorPD {
		var ll float64
		if ll, err = d.logLik(pred); err != nil {
			return 0, err
		}
		lp += ll
	}

	lpBeta, err := d.PriorBeta.LogDensity(p.ZBeta, shr)
	if err != nil {
		return 0, err
	}
	lp += lpBeta

	if d.HasIntercept {
		lpGamma, gerr := d.PriorIntercept.LogDensity(p.Gamma[0])
		if gerr != nil {
			return 0, gerr
		}
		lp += lpGamma
	}

	if len(d.Terms) > 0 {
		lpRE, rerr := prior.RandomEffects(d.Terms, p.ZB, p.ZT, p.Rho, p.Zeta, p.Tau,
			d.Regularization, d.Concentration, d.GammaShape)
		if rerr != nil {
			return 0, rerr
		}
		lp += lpRE
	}

	return lp, nil
}

// logLik dispatches between the exact partitioned path (unweighted) and
// the weighted pointwise path.
func (d *Data) logLik(pred predictor) (float64, error) {
	if d.Weights0 == nil {
		return bern.LogLikExact(pred.eta0, pred.eta1, d.Link)
	}

	pw0, err := bern.Pointwise(0, pred.eta0, d.Link)
	if err != nil {
		return 0, err
	}
	pw1, err := bern.Pointwise(1, pred.eta1, d.Link)
	if err != nil {
		return 0, err
	}

	return floats.Dot(d.Weights0, pw0) + floats.Dot(d.Weights1, pw1), nil
}
