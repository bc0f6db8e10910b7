package posterior

import (
	"math"

	"github.com/katalvlaran/hbern/link"
	"github.com/katalvlaran/hbern/sparse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// predictor is the fully assembled linear predictor, partitioned by
// outcome, plus the stabilizing shift applied under the log link.
type predictor struct {
	eta0, eta1 []float64
	shift      float64
}

// linearPredictor — single shared assembly of eta0/eta1
//
// Description:
//
//	eta = X·β  (+ offset)  (+ Z·b)  (+ intercept)
//
//	Under the log link the maximum of eta0 ∪ eta1 is subtracted from both
//	partitions before the intercept is added, keeping exp(eta) in
//	floating range; the shift is reported so Generate can fold it back
//	into the uncentered intercept.
//
// Both the density path and the generated-quantities pass consume this
// one function, so the two can never silently diverge.
//
// Complexity: O(N·K + nnz(Z) + N).
func (d *Data) linearPredictor(p *Params, beta, b []float64) (predictor, error) {
	pred := predictor{
		eta0: make([]float64, d.N0),
		eta1: make([]float64, d.N1),
	}

	if d.K > 0 {
		mulDenseTo(pred.eta0, d.X0, beta)
		mulDenseTo(pred.eta1, d.X1, beta)
	}
	if d.Offset0 != nil {
		floats.Add(pred.eta0, d.Offset0)
		floats.Add(pred.eta1, d.Offset1)
	}
	if len(d.Terms) > 0 {
		if err := addSparse(pred.eta0, d.Z0, b); err != nil {
			return predictor{}, err
		}
		if err := addSparse(pred.eta1, d.Z1, b); err != nil {
			return predictor{}, err
		}
	}

	if d.HasIntercept {
		g := p.Gamma[0]
		if d.Link == link.Log {
			pred.shift = maxBoth(pred.eta0, pred.eta1)
			g -= pred.shift
		}
		floats.AddConst(g, pred.eta0)
		floats.AddConst(g, pred.eta1)
	}

	return pred, nil
}

// UpperBound — feasible intercept bound (InterceptBoundary)
//
// Description:
//
//	Returns the largest intercept value compatible with the bundle's
//	link: +Inf for every link except log; for the log link, the negative
//	of the maximum of X·β (+ offset) across both partitions, so that
//	intercept + linear predictor ≤ 0 everywhere and implied
//	probabilities stay ≤ 1. Random effects are not part of the bound;
//	the caller's constrained transform applies it to the raw intercept.
//
// With no observations at all the bound degenerates to +Inf.
//
// Errors:
//   - ErrNilData       — nil bundle.
//   - ErrShapeMismatch — len(beta) != K.
//
// Complexity: O(N·K).
func UpperBound(d *Data, beta []float64) (float64, error) {
	if d == nil {
		return 0, ErrNilData
	}
	if len(beta) != d.K {
		return 0, ErrShapeMismatch
	}
	if d.Link != link.Log {
		return math.Inf(1), nil
	}
	if d.N0+d.N1 == 0 {
		return math.Inf(1), nil
	}

	eta0 := make([]float64, d.N0)
	eta1 := make([]float64, d.N1)
	if d.K > 0 {
		mulDenseTo(eta0, d.X0, beta)
		mulDenseTo(eta1, d.X1, beta)
	}
	if d.Offset0 != nil {
		floats.Add(eta0, d.Offset0)
		floats.Add(eta1, d.Offset1)
	}

	return -maxBoth(eta0, eta1), nil
}

// mulDenseTo writes X·β into dst; a no-op for an empty partition.
func mulDenseTo(dst []float64, x *mat.Dense, beta []float64) {
	if len(dst) == 0 {
		return
	}

	v := mat.NewVecDense(len(dst), dst)
	v.MulVec(x, mat.NewVecDense(len(beta), beta))
}

// addSparse accumulates Z·b into dst; a no-op for an empty partition.
func addSparse(dst []float64, z *sparse.CSR, b []float64) error {
	if len(dst) == 0 {
		return nil
	}

	zb, err := z.MulVec(b)
	if err != nil {
		return err
	}
	floats.Add(dst, zb)

	return nil
}

// maxBoth returns the maximum over both partitions; zero when both are
// empty (nothing to stabilize).
func maxBoth(eta0, eta1 []float64) float64 {
	switch {
	case len(eta0) == 0 && len(eta1) == 0:
		return 0
	case len(eta0) == 0:
		return floats.Max(eta1)
	case len(eta1) == 0:
		return floats.Max(eta0)
	default:
		return math.Max(floats.Max(eta0), floats.Max(eta1))
	}
}
