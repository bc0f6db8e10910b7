// Package link: sentinel error set.
// All public functions return these sentinels and tests check them via
// errors.Is. Invalid selectors are configuration errors, never panics.

package link

import "errors"

// ErrUnknownLink indicates a Link selector outside the supported set
// {Logit, Probit, Cauchit, Log, Cloglog}. This is a non-recoverable
// configuration error: no partial result accompanies it.
var ErrUnknownLink = errors.New("link: unknown link function")
