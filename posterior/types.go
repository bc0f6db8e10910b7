package posterior

import (
	"github.com/katalvlaran/hbern/link"
	"github.com/katalvlaran/hbern/onion"
	"github.com/katalvlaran/hbern/prior"
	"github.com/katalvlaran/hbern/sparse"
	"gonum.org/v1/gonum/mat"
)

// Data is the fixed bundle one model fit evaluates against. Observations
// are pre-split by outcome: partition 0 holds the rows with y=0,
// partition 1 the rows with y=1, so the likelihood loops never branch on
// the outcome.
//
// Build the struct, then call NewData (or Validate) once; LogDensity and
// Generate assume a validated bundle and re-check nothing structural.
type Data struct {
	// Outcome partition sizes.
	N0, N1 int

	// Column-centered dense designs, N0×K and N1×K; nil when K = 0.
	X0, X1 *mat.Dense

	// Xbar holds the column means the designs were centered by, length K.
	Xbar []float64

	// K is the number of fixed-effect columns; may be 0.
	K int

	// Observation weights per partition; both nil for an unweighted fit.
	Weights0, Weights1 []float64

	// Offsets per partition; both nil when the model carries no offset.
	Offset0, Offset1 []float64

	// CSR random-effects designs, N0×q and N1×q; nil when Terms is empty.
	Z0, Z1 *sparse.CSR

	// Terms lists the grouping terms (p effects × l levels each).
	Terms onion.Terms

	// Scale holds the per-term total-variance scale multipliers, length t.
	Scale []float64

	// Regularization holds one beta-recurrence seed per term with p>1.
	Regularization []float64

	// Concentration holds the gamma shapes for the simplex sources;
	// length must equal Σ over terms with p>1 of p (checked explicitly).
	Concentration []float64

	// GammaShape holds the gamma shapes of the tau priors, length t.
	GammaShape []float64

	// Link selects the inverse-link family.
	Link link.Link

	// HasIntercept reports whether Params carries a Gamma entry.
	HasIntercept bool

	// PriorPD, when set, drops the likelihood so the density describes
	// the prior-predictive distribution.
	PriorPD bool

	// PriorBeta is the fixed-effect prior family (use prior.None{} for
	// flat); PriorIntercept may be nil for a flat intercept prior.
	PriorBeta      prior.Coef
	PriorIntercept *prior.Intercept
}

// Params is the flat parameter structure supplied fresh on every call,
// already mapped to its constrained domains by the calling framework.
type Params struct {
	// ZBeta holds the standardized fixed-effect draws, length K.
	ZBeta []float64

	// Gamma holds the intercept, length 1 when Data.HasIntercept, else 0.
	Gamma []float64

	// Global and Local carry the shrinkage draws demanded by the
	// fixed-effect prior family (lengths PriorBeta.NumGlobal() and
	// NumLocal() rows of K).
	Global []float64
	Local  [][]float64

	// ZB holds the standardized random-effect draws, length q.
	ZB []float64

	// ZT holds the raw onion rows, length Terms.LenZT().
	ZT []float64

	// Rho holds the partial correlations, length Terms.LenRho(),
	// each in (0,1).
	Rho []float64

	// Zeta holds the positive simplex sources, length
	// Terms.LenConcentration().
	Zeta []float64

	// Tau holds the per-term total-variance draws, length t, positive.
	Tau []float64
}

// Summary is the generated-quantities result.
type Summary struct {
	// Alpha is the uncentered "true" intercept, valid when HasAlpha.
	// Under the log link the stabilizing shift is folded in, so Alpha
	// reproduces the likelihood's predictor on the raw design.
	Alpha    float64
	HasAlpha bool

	// MeanPPD is the mean of one posterior-predictive Bernoulli draw per
	// observation.
	MeanPPD float64
}
