package posterior

import "fmt"

// NewData validates the bundle once and returns a pointer to a shallow
// copy. Field-level shape constraints are enforced here, at construction
// time, never per evaluation call.
func NewData(d Data) (*Data, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// Validate — construction-time structural checks
//
// Description:
//
//	Verifies every array length keyed to K, N, t, p, l and q, the link
//	selector, hyperparameter positivity and weight non-negativity. The
//	evaluation paths assume all of this holds and re-check nothing.
//
// Errors: ErrShapeMismatch, ErrBadHyper, ErrBadWeights, ErrNilPrior,
// link.ErrUnknownLink, onion.ErrBadTerm — each wrapped with the failing
// field for context; match with errors.Is.
//
// Complexity: O(N + t + K).
func (d *Data) Validate() error {
	if d == nil {
		return ErrNilData
	}
	if err := d.Link.Validate(); err != nil {
		return err
	}
	if d.PriorBeta == nil {
		return ErrNilPrior
	}
	if d.N0 < 0 || d.N1 < 0 || d.K < 0 {
		return fmt.Errorf("partition sizes: %w", ErrShapeMismatch)
	}

	if err := d.validateDense(); err != nil {
		return err
	}
	if err := d.validateRows(); err != nil {
		return err
	}

	return d.validateGrouping()
}

// validateDense checks the fixed-effect design block.
func (d *Data) validateDense() error {
	if d.K == 0 {
		if d.X0 != nil || d.X1 != nil || len(d.Xbar) != 0 {
			return fmt.Errorf("K=0 with dense design present: %w", ErrShapeMismatch)
		}

		return nil
	}

	if d.X0 == nil || d.X1 == nil {
		return fmt.Errorf("missing dense design: %w", ErrShapeMismatch)
	}
	if r, c := d.X0.Dims(); r != d.N0 || c != d.K {
		return fmt.Errorf("X0 is %d×%d, want %d×%d: %w", r, c, d.N0, d.K, ErrShapeMismatch)
	}
	if r, c := d.X1.Dims(); r != d.N1 || c != d.K {
		return fmt.Errorf("X1 is %d×%d, want %d×%d: %w", r, c, d.N1, d.K, ErrShapeMismatch)
	}
	if len(d.Xbar) != d.K {
		return fmt.Errorf("xbar length %d, want K=%d: %w", len(d.Xbar), d.K, ErrShapeMismatch)
	}

	return nil
}

// validateRows checks the per-observation vectors (weights, offsets).
func (d *Data) validateRows() error {
	if (d.Weights0 == nil) != (d.Weights1 == nil) {
		return fmt.Errorf("weights present in one partition only: %w", ErrShapeMismatch)
	}
	if d.Weights0 != nil {
		if len(d.Weights0) != d.N0 || len(d.Weights1) != d.N1 {
			return fmt.Errorf("weights length: %w", ErrShapeMismatch)
		}
		for _, w := range append(append([]float64{}, d.Weights0...), d.Weights1...) {
			if w < 0 {
				return ErrBadWeights
			}
		}
	}

	if (d.Offset0 == nil) != (d.Offset1 == nil) {
		return fmt.Errorf("offset present in one partition only: %w", ErrShapeMismatch)
	}
	if d.Offset0 != nil && (len(d.Offset0) != d.N0 || len(d.Offset1) != d.N1) {
		return fmt.Errorf("offset length: %w", ErrShapeMismatch)
	}

	return nil
}

// validateGrouping checks the random-effects block: term specs, the CSR
// designs and every hyperparameter vector keyed to t, p and q. The
// concentration length gets an explicit check (Σ over terms with p>1 of
// p) instead of relying on downstream truncation.
func (d *Data) validateGrouping() error {
	t := len(d.Terms)
	if t == 0 {
		if d.Z0 != nil || d.Z1 != nil || len(d.Scale) != 0 ||
			len(d.Regularization) != 0 || len(d.Concentration) != 0 ||
			len(d.GammaShape) != 0 {
			return fmt.Errorf("t=0 with grouping data present: %w", ErrShapeMismatch)
		}

		return nil
	}

	if err := d.Terms.Validate(); err != nil {
		return err
	}

	q := d.Terms.Q()
	if d.Z0 == nil || d.Z1 == nil {
		return fmt.Errorf("missing sparse design: %w", ErrShapeMismatch)
	}
	if d.Z0.Rows() != d.N0 || d.Z0.Cols() != q {
		return fmt.Errorf("Z0 is %d×%d, want %d×%d: %w",
			d.Z0.Rows(), d.Z0.Cols(), d.N0, q, ErrShapeMismatch)
	}
	if d.Z1.Rows() != d.N1 || d.Z1.Cols() != q {
		return fmt.Errorf("Z1 is %d×%d, want %d×%d: %w",
			d.Z1.Rows(), d.Z1.Cols(), d.N1, q, ErrShapeMismatch)
	}

	var wide int
	for _, term := range d.Terms {
		if term.P > 1 {
			wide++
		}
	}
	if len(d.Scale) != t || len(d.GammaShape) != t {
		return fmt.Errorf("scale/gamma-shape length, want t=%d: %w", t, ErrShapeMismatch)
	}
	if len(d.Regularization) != wide {
		return fmt.Errorf("regularization length %d, want %d: %w",
			len(d.Regularization), wide, ErrShapeMismatch)
	}
	if want := d.Terms.LenConcentration(); len(d.Concentration) != want {
		return fmt.Errorf("concentration length %d, want Σ_{p>1} p = %d: %w",
			len(d.Concentration), want, ErrShapeMismatch)
	}

	for _, hyper := range [][]float64{d.Scale, d.Regularization, d.Concentration, d.GammaShape} {
		for _, v := range hyper {
			if v <= 0 {
				return ErrBadHyper
			}
		}
	}

	return nil
}

// checkParams verifies the per-call parameter lengths against the
// bundle. Length faults are configuration errors; value-domain faults
// are screened separately and yield a −Inf density.
func (d *Data) checkParams(p *Params) error {
	if p == nil {
		return ErrNilParams
	}
	if len(p.ZBeta) != d.K {
		return fmt.Errorf("z_beta length %d, want K=%d: %w", len(p.ZBeta), d.K, ErrShapeMismatch)
	}

	wantGamma := 0
	if d.HasIntercept {
		wantGamma = 1
	}
	if len(p.Gamma) != wantGamma {
		return fmt.Errorf("gamma length %d, want %d: %w", len(p.Gamma), wantGamma, ErrShapeMismatch)
	}

	if len(p.Global) != d.PriorBeta.NumGlobal() || len(p.Local) != d.PriorBeta.NumLocal() {
		return fmt.Errorf("shrinkage arity: %w", ErrShapeMismatch)
	}
	for _, row := range p.Local {
		if len(row) != d.K {
			return fmt.Errorf("shrinkage row length: %w", ErrShapeMismatch)
		}
	}

	if len(p.ZB) != d.Terms.Q() || len(p.ZT) != d.Terms.LenZT() ||
		len(p.Rho) != d.Terms.LenRho() ||
		len(p.Zeta) != d.Terms.LenConcentration() ||
		len(p.Tau) != len(d.Terms) {
		return fmt.Errorf("grouping parameter lengths: %w", ErrShapeMismatch)
	}

	return nil
}

// admissible screens the parameter values the constrained transform is
// supposed to guarantee. A violation is not a crash and not an error:
// the point simply has zero posterior probability.
func (p *Params) admissible() bool {
	for _, r := range p.Rho {
		if !(r > 0 && r < 1) {
			return false
		}
	}
	for _, z := range p.Zeta {
		if !(z > 0) {
			return false
		}
	}
	for _, t := range p.Tau {
		if !(t > 0) {
			return false
		}
	}
	// Squared shrinkage draws (local2/local4, global2) must be positive.
	if len(p.Global) == 2 && !(p.Global[1] > 0) {
		return false
	}
	for i := 1; i < len(p.Local); i += 2 {
		for _, v := range p.Local[i] {
			if !(v > 0) {
				return false
			}
		}
	}

	return true
}
