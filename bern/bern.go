package bern

import (
	"math"

	"github.com/katalvlaran/hbern/link"
)

// LogLikExact — exact partitioned Bernoulli log-likelihood
//
// Description:
//
//	Sums the link-specific closed-form log-likelihood over both outcome
//	partitions: eta0 holds the linear predictor for rows with y=0, eta1
//	for rows with y=1. For the log link, eta1 entries are already
//	log-probabilities and are added directly.
//
// This path is exact and preferred whenever observations are unweighted
// and the evaluation is not a prior-predictive draw.
//
// Errors:
//   - link.ErrUnknownLink — invalid selector; no partial result.
//
// Non-finite sums (a y=0 row at probability 1 under the log link, say)
// are returned as −Inf/NaN values, not errors.
//
// Complexity: O(len(eta0) + len(eta1)).
func LogLikExact(eta0, eta1 []float64, l link.Link) (float64, error) {
	if err := l.Validate(); err != nil {
		return 0, err
	}

	var ll float64
	switch l {
	case link.Logit:
		for _, e := range eta0 {
			ll -= log1pExp(e)
		}
		for _, e := range eta1 {
			ll -= log1pExp(-e)
		}
	case link.Probit:
		for _, e := range eta0 {
			ll += logPhi(-e)
		}
		for _, e := range eta1 {
			ll += logPhi(e)
		}
	case link.Cauchit:
		for _, e := range eta0 {
			ll += math.Log(0.5 - math.Atan(e)/math.Pi)
		}
		for _, e := range eta1 {
			ll += math.Log(0.5 + math.Atan(e)/math.Pi)
		}
	case link.Log:
		for _, e := range eta0 {
			ll += log1mExp(e)
		}
		for _, e := range eta1 {
			ll += e
		}
	case link.Cloglog:
		for _, e := range eta0 {
			ll -= math.Exp(e)
		}
		for _, e := range eta1 {
			ll += log1mExp(-math.Exp(e))
		}
	}

	return ll, nil
}

// Pointwise — per-observation log-likelihood through the probability scale
//
// Description:
//
//	Computes log Bernoulli(y | linkinv(eta[i])) for every predictor value,
//	returning one entry per observation. y must be 0 or 1 and applies to
//	the whole slice (observations are partitioned by outcome upstream).
//
//	This is the general path used under observation weights and for
//	prior-predictive evaluation; the caller forms the weighted sum, e.g.
//	floats.Dot(weights, ll). For extreme eta under non-logit links it is
//	numerically inferior to LogLikExact.
//
// Errors:
//   - link.ErrUnknownLink — invalid selector.
//   - ErrBadOutcome       — y outside {0, 1}.
//
// Complexity: O(len(eta)); allocates the result slice.
func Pointwise(y int, eta []float64, l link.Link) ([]float64, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if y != 0 && y != 1 {
		return nil, ErrBadOutcome
	}

	ll := make([]float64, len(eta))
	for i, e := range eta {
		p, _ := l.Inv(e) // selector already validated
		if y == 1 {
			ll[i] = math.Log(p)
		} else {
			ll[i] = math.Log1p(-p)
		}
	}

	return ll, nil
}

// ln2 is the boundary between the two log1mExp branches.
const ln2 = 0.6931471805599453

// log1pExp computes log(1 + exp(x)) without overflow: for large x the
// result is x to double precision, for very negative x it is exp(x).
func log1pExp(x float64) float64 {
	switch {
	case x > 35:
		return x
	case x < -35:
		return math.Exp(x)
	default:
		return math.Log1p(math.Exp(x))
	}
}

// log1mExp computes log(1 - exp(x)) for x ≤ 0, picking the branch with
// the smaller cancellation error. x == 0 yields −Inf; x > 0 yields NaN
// (probability above one), which callers propagate as a rejection.
func log1mExp(x float64) float64 {
	switch {
	case x > 0:
		return math.NaN()
	case x == 0:
		return math.Inf(-1)
	case x > -ln2:
		return math.Log(-math.Expm1(x))
	default:
		return math.Log1p(-math.Exp(x))
	}
}

// logPhi computes log Φ(x) via the complementary error function:
// Φ(x) = erfc(−x/√2)/2. Accurate through the lower tail until erfc
// underflows near x ≈ −37.5, where it saturates to −Inf.
func logPhi(x float64) float64 {
	return math.Log(0.5 * math.Erfc(-x/math.Sqrt2))
}
