package sparse

import "math"

// CSR is an immutable compressed-sparse-row matrix.
//
// The zero value is not usable; construct through NewCSR, which validates
// the encoding once so the product kernels can stay check-free.
type CSR struct {
	rows, cols int
	rowPtr     []int     // length rows+1, nondecreasing, rowPtr[0]==0
	colIdx     []int     // column of each stored entry, in [0, cols)
	val        []float64 // stored entries, finite
}

// NewCSR — validating CSR constructor
//
// Description:
//
//	Builds a rows×cols CSR matrix from its three encoding arrays. The
//	arrays are retained, not copied: the caller must not mutate them after
//	construction (the data bundle is fixed across evaluations).
//
// Validation (performed once, here):
//  1. rows ≥ 0, cols ≥ 0                      → ErrBadShape
//  2. len(rowPtr) == rows+1, rowPtr[0] == 0,
//     nondecreasing, rowPtr[rows] == len(val) → ErrBadRowPtr
//  3. len(colIdx) == len(val)                 → ErrBadRowPtr
//  4. every colIdx in [0, cols)               → ErrOutOfRange
//  5. every val finite                        → ErrNaNInf
//
// Complexity: O(rows + nnz).
func NewCSR(rows, cols int, rowPtr []int, colIdx []int, val []float64) (*CSR, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	if len(rowPtr) != rows+1 || rowPtr[0] != 0 || rowPtr[rows] != len(val) {
		return nil, ErrBadRowPtr
	}
	if len(colIdx) != len(val) {
		return nil, ErrBadRowPtr
	}
	for i := 0; i < rows; i++ {
		if rowPtr[i] > rowPtr[i+1] {
			return nil, ErrBadRowPtr
		}
	}
	for _, c := range colIdx {
		if c < 0 || c >= cols {
			return nil, ErrOutOfRange
		}
	}
	for _, v := range val {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNaNInf
		}
	}

	return &CSR{rows: rows, cols: cols, rowPtr: rowPtr, colIdx: colIdx, val: val}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *CSR) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *CSR) Cols() int { return m.cols }

// NNZ returns the number of stored entries. Complexity: O(1).
func (m *CSR) NNZ() int { return len(m.val) }

// MulVec computes y = M·x into a freshly allocated slice of length Rows().
//
// Errors:
//   - ErrNilMatrix         — nil receiver.
//   - ErrDimensionMismatch — len(x) != Cols().
//
// Complexity: O(rows + nnz); allocates the result only.
func (m *CSR) MulVec(x []float64) ([]float64, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	y := make([]float64, m.rows)
	if err := m.MulVecTo(y, x); err != nil {
		return nil, err
	}

	return y, nil
}

// MulVecTo computes dst = M·x, overwriting dst. dst must have length
// Rows() and x length Cols(). Each row accumulates its nonzero run, so
// rows with an empty run come out exactly zero.
//
// Errors:
//   - ErrNilMatrix         — nil receiver.
//   - ErrDimensionMismatch — operand lengths disagree with the shape.
//
// Complexity: O(rows + nnz); allocation-free.
func (m *CSR) MulVecTo(dst, x []float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	if len(x) != m.cols || len(dst) != m.rows {
		return ErrDimensionMismatch
	}

	for i := 0; i < m.rows; i++ {
		var acc float64
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			acc += m.val[k] * x[m.colIdx[k]]
		}
		dst[i] = acc
	}

	return nil
}
