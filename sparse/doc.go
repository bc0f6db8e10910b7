// Package sparse provides a compressed-sparse-row (CSR) matrix and the
// matrix-vector product used to apply the random-effects design.
//
// 🚀 What is CSR?
//
//	A sparse encoding by three arrays:
//	  • RowPtr — length rows+1; RowPtr[i]..RowPtr[i+1] delimits row i's run
//	  • ColIdx — column index of each stored entry
//	  • Val    — value of each stored entry
//	Multiplying by a dense vector walks each row's run once, so the cost
//	is O(nnz) regardless of the dense shape.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hbern/sparse"
//
//	// 2×3 matrix  [1 0 2]
//	//             [0 3 0]
//	z, err := sparse.NewCSR(2, 3,
//	    []int{0, 2, 3}, []int{0, 2, 1}, []float64{1, 2, 3})
//	y, err := z.MulVec([]float64{1, 1, 1}) // [3 3]
//
// All structural validation (monotone row pointers, in-range columns,
// finite values) happens once in NewCSR; MulVec assumes a valid matrix and
// only checks operand lengths. Out-of-range indices in the encoding are a
// configuration error, never a runtime-recoverable condition.
package sparse
