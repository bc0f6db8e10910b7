// Package sparse: sentinel error set (unified, consistent).
// All constructors and operations return these sentinels and tests check
// them via errors.Is. No function panics on user-triggered conditions.

package sparse

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (rows or
	// cols negative). Zero-row and zero-column matrices are legal: an
	// outcome partition may be empty.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrBadRowPtr indicates a malformed row-pointer array: wrong length
	// (must be rows+1), a nonzero first entry, a decreasing run, or a final
	// entry that disagrees with the number of stored values.
	ErrBadRowPtr = errors.New("sparse: malformed row pointer array")

	// ErrOutOfRange indicates a stored column index outside [0, cols).
	ErrOutOfRange = errors.New("sparse: column index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. MulVec with len(x) != Cols().
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf stored value; design matrices are
	// data and must be finite.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrNilMatrix indicates a nil *CSR receiver or argument.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)
