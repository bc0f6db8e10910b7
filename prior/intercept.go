package prior

import "gonum.org/v1/gonum/stat/distuv"

// Intercept is the prior on the unconstrained intercept parameter.
// Only the location families apply here; shrinkage never touches the
// intercept. A nil *Intercept or FamilyNone contributes nothing.
type Intercept struct {
	Family Family
	Mean   float64 // location
	Scale  float64 // scale, > 0 (ignored by FamilyNone)
	DF     float64 // degrees of freedom, > 0 (FamilyStudentT only)
}

// LogDensity scores the intercept under the configured family.
//
// Errors:
//   - ErrUnknownFamily — a Family outside the three supported tags.
//
// Complexity: O(1).
func (p *Intercept) LogDensity(gamma float64) (float64, error) {
	if p == nil {
		return 0, nil
	}

	switch p.Family {
	case FamilyNone:
		return 0, nil
	case FamilyNormal:
		return distuv.Normal{Mu: p.Mean, Sigma: p.Scale}.LogProb(gamma), nil
	case FamilyStudentT:
		return distuv.StudentsT{Mu: p.Mean, Sigma: p.Scale, Nu: p.DF}.LogProb(gamma), nil
	default:
		return 0, ErrUnknownFamily
	}
}
