// Package posterior: sentinel error set.
// Configuration faults (shapes, selectors, nil bundles) are errors;
// parameter-value violations are NOT — they yield a −Inf density.

package posterior

import "errors"

var (
	// ErrNilData indicates a nil *Data bundle.
	ErrNilData = errors.New("posterior: nil data bundle")

	// ErrNilParams indicates a nil *Params vector.
	ErrNilParams = errors.New("posterior: nil parameters")

	// ErrNilPrior indicates a bundle without a fixed-effect prior; use
	// prior.None{} for a flat prior rather than leaving the field nil.
	ErrNilPrior = errors.New("posterior: nil fixed-effect prior")

	// ErrShapeMismatch indicates an array length that disagrees with the
	// bundle's K/N/t/p/l/q bookkeeping. Raised at construction for data,
	// and per call for parameter vectors.
	ErrShapeMismatch = errors.New("posterior: shape mismatch")

	// ErrBadHyper indicates a non-positive hyperparameter (scale,
	// regularization, concentration or gamma shape) in the bundle.
	ErrBadHyper = errors.New("posterior: non-positive hyperparameter")

	// ErrBadWeights indicates a negative observation weight.
	ErrBadWeights = errors.New("posterior: negative observation weight")
)
