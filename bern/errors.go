// Package bern: sentinel error set.

package bern

import "errors"

// ErrBadOutcome indicates a Bernoulli outcome other than 0 or 1 was
// passed to the pointwise path. Outcomes are structural configuration,
// so this is a hard error, not a −Inf density.
var ErrBadOutcome = errors.New("bern: outcome must be 0 or 1")
