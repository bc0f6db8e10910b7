// Package onion: sentinel error set.
// Structural violations are configuration errors surfaced through these
// sentinels; parameter-value problems (non-positive tau, degenerate
// simplex sources) are NOT errors — they propagate as NaN/−Inf values.

package onion

import "errors"

var (
	// ErrBadTerm indicates a grouping term with p < 1 or l < 1.
	ErrBadTerm = errors.New("onion: term must have p ≥ 1 and l ≥ 1")

	// ErrShapeMismatch indicates a flat parameter slice whose length does
	// not match the lengths derived from the term specs.
	ErrShapeMismatch = errors.New("onion: segment length mismatch")
)
