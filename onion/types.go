// Package onion: grouping-term specs and derived segment sizing.
package onion

// TermSpec describes one grouping term: P correlated random effects per
// level (e.g. intercept + slope ⇒ P=2) across L factor levels.
type TermSpec struct {
	P int // effects per level, ≥ 1
	L int // number of levels, ≥ 1
}

// thetaLen is the per-term length of the flattened covariance factor:
// a single scalar for P=1, the lower triangle otherwise.
func (t TermSpec) thetaLen() int {
	if t.P == 1 {
		return 1
	}

	return t.P * (t.P + 1) / 2
}

// rhoLen is the per-term count of partial-correlation parameters.
func (t TermSpec) rhoLen() int {
	if t.P < 2 {
		return 0
	}

	return t.P - 1
}

// zTLen is the per-term count of raw onion row entries: rows 3..P each
// consume one entry per prior column.
func (t TermSpec) zTLen() int {
	if t.P < 3 {
		return 0
	}

	return t.P*(t.P-1)/2 - 1
}

// concLen is the per-term count of simplex-source (zeta) entries.
func (t TermSpec) concLen() int {
	if t.P < 2 {
		return 0
	}

	return t.P
}

// Terms is an ordered list of grouping terms. Order matters: every flat
// parameter vector is consumed in term order.
type Terms []TermSpec

// Validate checks every term satisfies P ≥ 1, L ≥ 1.
// Returns ErrBadTerm on the first violation. Complexity: O(t).
func (ts Terms) Validate() error {
	for _, t := range ts {
		if t.P < 1 || t.L < 1 {
			return ErrBadTerm
		}
	}

	return nil
}

// Q returns the total number of random-effect coefficients, Σ P·L.
func (ts Terms) Q() int {
	var q int
	for _, t := range ts {
		q += t.P * t.L
	}

	return q
}

// LenTheta returns the length of the flattened theta_L vector.
func (ts Terms) LenTheta() int {
	var n int
	for _, t := range ts {
		n += t.thetaLen()
	}

	return n
}

// LenRho returns the total number of partial-correlation parameters.
func (ts Terms) LenRho() int {
	var n int
	for _, t := range ts {
		n += t.rhoLen()
	}

	return n
}

// LenZT returns the total number of raw onion row entries.
func (ts Terms) LenZT() int {
	var n int
	for _, t := range ts {
		n += t.zTLen()
	}

	return n
}

// LenConcentration returns the total number of simplex-source entries,
// Σ over terms with P>1 of P. This is also the required length of the
// concentration hyperparameter vector.
func (ts Terms) LenConcentration() int {
	var n int
	for _, t := range ts {
		n += t.concLen()
	}

	return n
}

// segment carries the per-term start offsets into every flat vector,
// computed once up front so the loops below need no mutable cursors.
type segment struct {
	zeta, rho, zT, theta, b int
}

// segments returns one offset record per term, in term order.
func (ts Terms) segments() []segment {
	segs := make([]segment, len(ts))
	var s segment
	for i, t := range ts {
		segs[i] = s
		s.zeta += t.concLen()
		s.rho += t.rhoLen()
		s.zT += t.zTLen()
		s.theta += t.thetaLen()
		s.b += t.P * t.L
	}

	return segs
}
