// Package prior: the Coef contract, shrinkage draws, and family tags.
package prior

// Family tags the intercept prior distribution. Fixed-effect families are
// full types implementing Coef; the intercept only ever needs the three
// location families, so a tag plus scalar hyperparameters suffices.
type Family int

const (
	// FamilyNone selects a flat prior: no transform, no log-prior term.
	FamilyNone Family = iota

	// FamilyNormal selects a normal prior with Mean and Scale.
	FamilyNormal

	// FamilyStudentT selects a Student-t prior with Mean, Scale and DF.
	FamilyStudentT
)

// Shrinkage carries the global/local shrinkage draws consumed by the
// horseshoe families. Global has length NumGlobal(), Local has
// NumLocal() rows of length K each. Families that shrink nothing ignore
// a nil Shrinkage.
type Shrinkage struct {
	Global []float64
	Local  [][]float64
}

// Coef is the transform-and-score capability every fixed-effect prior
// family implements.
//
// Transform maps the standardized vector z (length K) to coefficients β
// of the same length; LogDensity scores z and any shrinkage draws in the
// standardized space. Both are pure and safe for concurrent use.
type Coef interface {
	// Transform returns β. Errors: ErrShapeMismatch, ErrMissingShrinkage.
	Transform(z []float64, s *Shrinkage) ([]float64, error)

	// LogDensity returns the family's log-prior contribution. Non-finite
	// values (a shrinkage draw outside its support, say) are returned as
	// −Inf/NaN, not errors. Errors: ErrShapeMismatch, ErrMissingShrinkage.
	LogDensity(z []float64, s *Shrinkage) (float64, error)

	// NumGlobal reports how many global shrinkage draws the family needs.
	NumGlobal() int

	// NumLocal reports how many local shrinkage rows the family needs.
	NumLocal() int
}
