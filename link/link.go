package link

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Inv — inverse link ("linkinv")
//
// Description:
//
//	Inv maps a single linear-predictor value eta to the implied
//	Bernoulli success probability under link l:
//
//	  Logit   → 1 / (1 + exp(-eta))        (evaluated in overflow-safe form)
//	  Probit  → Φ(eta)                     (standard normal CDF, distuv)
//	  Cauchit → atan(eta)/π + 1/2
//	  Log     → exp(eta)
//	  Cloglog → 1 − exp(−exp(eta))
//
// The Log link can exceed 1 for eta > 0; keeping eta ≤ 0 is the caller's
// responsibility (see the intercept upper bound in package posterior).
//
// Errors:
//   - ErrUnknownLink — l outside {Logit..Cloglog}; no partial result.
//
// Complexity: O(1).
func (l Link) Inv(eta float64) (float64, error) {
	switch l {
	case Logit:
		return sigmoid(eta), nil
	case Probit:
		return distuv.UnitNormal.CDF(eta), nil
	case Cauchit:
		return math.Atan(eta)/math.Pi + 0.5, nil
	case Log:
		return math.Exp(eta), nil
	case Cloglog:
		return 1 - math.Exp(-math.Exp(eta)), nil
	default:
		return 0, ErrUnknownLink
	}
}

// InvTo applies Inv elementwise, writing Inv(eta[i]) into dst[i].
// dst and eta must have equal length; extra or missing capacity is a
// programmer error and panics via the runtime bounds check.
//
// Errors:
//   - ErrUnknownLink — the selector is validated once, before any write.
//
// Complexity: O(len(eta)).
func (l Link) InvTo(dst, eta []float64) error {
	if err := l.Validate(); err != nil {
		return err
	}

	for i, e := range eta {
		dst[i], _ = l.Inv(e) // selector already validated
	}

	return nil
}

// sigmoid evaluates the logistic function without overflow: the exp
// argument is always non-positive regardless of the sign of x.
func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)

	return e / (1 + e)
}
