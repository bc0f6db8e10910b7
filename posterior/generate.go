package posterior

import (
	"github.com/katalvlaran/hbern/onion"
	"github.com/katalvlaran/hbern/prior"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generate — the secondary, generated-quantities pass
//
// Description:
//
//	Rebuilds the linear predictor through the same shared assembly the
//	density uses, then derives:
//
//	  • Alpha — the uncentered "true" intercept, γ − xbar·β, with the
//	    log-link stabilizing shift folded in so the reported intercept
//	    reproduces the likelihood's predictor on the raw design; only
//	    present when the model has an intercept.
//	  • MeanPPD — the mean of one posterior-predictive Bernoulli draw
//	    per observation, from the implied probabilities of both
//	    partitions.
//
//	This is the one place the module consumes randomness; src seeds the
//	per-observation draws and a fixed source makes the pass
//	deterministic. Generate is meant to run on accepted draws, so
//	parameter values are assumed admissible; out-of-domain values
//	propagate as NaN rather than being screened.
//
// Errors: the same configuration faults as LogDensity.
//
// Complexity: O(N·K + nnz(Z) + Σ l_i·p_i² + N).
func Generate(d *Data, p *Params, src rand.Source) (Summary, error) {
	if d == nil {
		return Summary{}, ErrNilData
	}
	if err := d.checkParams(p); err != nil {
		return Summary{}, err
	}

	shr := &prior.Shrinkage{Global: p.Global, Local: p.Local}
	beta, err := d.PriorBeta.Transform(p.ZBeta, shr)
	if err != nil {
		return Summary{}, err
	}

	var b []float64
	if len(d.Terms) > 0 {
		var thetaL []float64
		if thetaL, err = onion.Factorize(d.Terms, p.Tau, d.Scale, p.Zeta, p.Rho, p.ZT); err != nil {
			return Summary{}, err
		}
		if b, err = onion.BuildB(p.ZB, thetaL, d.Terms); err != nil {
			return Summary{}, err
		}
	}

	pred, err := d.linearPredictor(p, beta, b)
	if err != nil {
		return Summary{}, err
	}

	var s Summary
	if d.HasIntercept {
		s.HasAlpha = true
		s.Alpha = p.Gamma[0] - floats.Dot(d.Xbar, beta) - pred.shift
	}

	draws := make([]float64, 0, d.N0+d.N1)
	for _, eta := range pred.eta0 {
		pi, ierr := d.Link.Inv(eta)
		if ierr != nil {
			return Summary{}, ierr
		}
		draws = append(draws, distuv.Bernoulli{P: pi, Src: src}.Rand())
	}
	for _, eta := range pred.eta1 {
		pi, ierr := d.Link.Inv(eta)
		if ierr != nil {
			return Summary{}, ierr
		}
		draws = append(draws, distuv.Bernoulli{P: pi, Src: src}.Rand())
	}
	s.MeanPPD = stat.Mean(draws, nil)

	return s, nil
}
