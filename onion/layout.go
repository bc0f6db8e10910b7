package onion

// The single source of truth for the lower-triangular flatten order.
// Factorize writes through flattenLowerTo and BuildB reads through
// unflattenLower; the two must never diverge, so the order lives here
// and nowhere else.

import "gonum.org/v1/gonum/mat"

// flattenLowerTo writes the lower triangle of the p×p factor T into dst
// column-major: outer loop over columns, inner over rows ≥ column.
// dst must have length p*(p+1)/2.
func flattenLowerTo(dst []float64, t *mat.TriDense, p int) {
	k := 0
	for c := 0; c < p; c++ {
		for r := c; r < p; r++ {
			dst[k] = t.At(r, c)
			k++
		}
	}
}

// unflattenLower rebuilds the p×p lower-triangular factor from its
// flattened segment, inverting flattenLowerTo exactly.
// seg must have length p*(p+1)/2.
func unflattenLower(seg []float64, p int) *mat.TriDense {
	t := mat.NewTriDense(p, mat.Lower, nil)
	k := 0
	for c := 0; c < p; c++ {
		for r := c; r < p; r++ {
			t.SetTri(r, c, seg[k])
			k++
		}
	}

	return t
}
