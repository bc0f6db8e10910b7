package onion

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Factorize — onion-method covariance factor construction
//
// Description:
//
//	Builds, per grouping term i, a lower-triangular factor T_i with
//	  trace(T_i·T_iᵀ)      = (tau_i·scale_i)²·p_i
//	  diag(T_i·T_iᵀ)/trace = pi_i
//	where pi_i is the simplex obtained by normalizing the term's segment
//	of zeta (independent positive draws ⇒ Dirichlet proportions).
//
// Algorithm per term (p = term.P, trace as above):
//  1. p = 1: the factor is the scalar tau_i·scale_i.
//  2. Row 1: T[0,0] = sqrt(pi[0]·trace).
//     Row 2: the two-variable case — partial correlation r = 2ρ−1,
//     T[1,0] = r·sd, T[1,1] = sqrt(1−r²)·sd with sd = sqrt(pi[1]·trace).
//  3. Rows 3..p (onion steps): take the next r raw entries of z_T,
//     rescale the row so its squared norm equals the next ρ, scale by
//     sqrt(pi[r]·trace), and set the diagonal to sqrt(1−ρ)·sqrt(pi[r]·trace).
//  4. Flatten the lower triangle column-major (see layout.go) into the
//     term's theta_L segment.
//
// Terms are independent and consume fixed-size segments of zeta, rho and
// zT in term order; offsets are precomputed, nothing is mutated across
// loop iterations.
//
// Errors:
//   - ErrBadTerm       — a term with p < 1 or l < 1.
//   - ErrShapeMismatch — any input length disagrees with the term sizes.
//
// Out-of-domain parameter values (tau ≤ 0, ρ outside (0,1), a zero zeta
// segment) produce NaN entries rather than errors; the caller screens or
// rejects them.
//
// Complexity: O(Σ p_i²); allocates the result and one p×p block per term.
func Factorize(terms Terms, tau, scale, zeta, rho, zT []float64) ([]float64, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	if len(tau) != len(terms) || len(scale) != len(terms) ||
		len(zeta) != terms.LenConcentration() ||
		len(rho) != terms.LenRho() || len(zT) != terms.LenZT() {
		return nil, ErrShapeMismatch
	}

	theta := make([]float64, terms.LenTheta())
	segs := terms.segments()

	for i, term := range terms {
		seg := segs[i]
		if term.P == 1 {
			theta[seg.theta] = tau[i] * scale[i]

			continue
		}

		p := term.P
		total := tau[i] * scale[i]
		trace := total * total * float64(p)

		// Normalize the simplex source into variance proportions.
		pi := make([]float64, p)
		copy(pi, zeta[seg.zeta:seg.zeta+p])
		floats.Scale(1/floats.Sum(pi), pi)

		t := mat.NewTriDense(p, mat.Lower, nil)
		t.SetTri(0, 0, math.Sqrt(pi[0]*trace))

		sd := math.Sqrt(pi[1] * trace)
		r21 := 2*rho[seg.rho] - 1
		t.SetTri(1, 0, r21*sd)
		t.SetTri(1, 1, math.Sqrt(1-r21*r21)*sd)

		rhoAt := seg.rho + 1
		zTAt := seg.zT
		for r := 2; r < p; r++ {
			row := zT[zTAt : zTAt+r]
			zTAt += r

			sd = math.Sqrt(pi[r] * trace)
			sf := math.Sqrt(rho[rhoAt]/floats.Dot(row, row)) * sd
			for c := 0; c < r; c++ {
				t.SetTri(r, c, row[c]*sf)
			}
			t.SetTri(r, r, math.Sqrt(1-rho[rhoAt])*sd)
			rhoAt++
		}

		flattenLowerTo(theta[seg.theta:seg.theta+term.thetaLen()], t, p)
	}

	return theta, nil
}
