package onion

import "gonum.org/v1/gonum/mat"

// BuildB — map standardized latent draws to correlated random effects
//
// Description:
//
//	Consumes z_b (length q, one contiguous length-P slice per group
//	level, levels in term order) and the flattened factors theta_L from
//	Factorize, producing the random-effect vector b of the same length:
//
//	  P = 1: each level's entry is z multiplied by the scalar factor.
//	  P > 1: the term's factor is rebuilt from its theta_L segment
//	         (inverting the shared layout) and left-multiplies each
//	         level's slice of z_b.
//
// Output ordering is term order, then level order, then coefficient
// order within the level — exactly the column ordering the sparse
// random-effects design encodes.
//
// Errors:
//   - ErrBadTerm       — a term with p < 1 or l < 1.
//   - ErrShapeMismatch — len(zB) != Q or len(thetaL) != LenTheta.
//
// Complexity: O(Σ l_i·p_i²); allocates b and one p×p block per term.
func BuildB(zB, thetaL []float64, terms Terms) ([]float64, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	if len(zB) != terms.Q() || len(thetaL) != terms.LenTheta() {
		return nil, ErrShapeMismatch
	}

	b := make([]float64, len(zB))
	segs := terms.segments()

	for i, term := range terms {
		seg := segs[i]
		if term.P == 1 {
			th := thetaL[seg.theta]
			for j := 0; j < term.L; j++ {
				b[seg.b+j] = th * zB[seg.b+j]
			}

			continue
		}

		p := term.P
		t := unflattenLower(thetaL[seg.theta:seg.theta+term.thetaLen()], p)

		var out mat.VecDense
		for j := 0; j < term.L; j++ {
			lo := seg.b + j*p
			out.MulVec(t, mat.NewVecDense(p, zB[lo:lo+p]))
			copy(b[lo:lo+p], out.RawVector().Data)
		}
	}

	return b, nil
}
