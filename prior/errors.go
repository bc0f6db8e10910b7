// Package prior: sentinel error set.

package prior

import "errors"

var (
	// ErrShapeMismatch indicates a parameter slice whose length does not
	// match the family's hyperparameters or the term specification.
	ErrShapeMismatch = errors.New("prior: parameter length mismatch")

	// ErrMissingShrinkage indicates a horseshoe-family transform or score
	// invoked without the required global/local shrinkage draws.
	ErrMissingShrinkage = errors.New("prior: missing shrinkage draws")

	// ErrUnknownFamily indicates an intercept prior family outside
	// {FamilyNone, FamilyNormal, FamilyStudentT}.
	ErrUnknownFamily = errors.New("prior: unknown prior family")
)
