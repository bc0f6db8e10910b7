package prior_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hbern/onion"
	"github.com/katalvlaran/hbern/prior"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

// TestRandomEffects_ScalarTermOnly exercises the p=1 path: no rho/zeta
// blocks, only standard normals on z_b and gammas on tau.
func TestRandomEffects_ScalarTermOnly(t *testing.T) {
	terms := onion.Terms{{P: 1, L: 2}}
	zB := []float64{0.3, -1.4}
	tau := []float64{0.9}
	gammaShape := []float64{1.5}

	lp, err := prior.RandomEffects(terms, zB, nil, nil, nil, tau, nil, nil, gammaShape)
	require.NoError(t, err)

	want := distuv.UnitNormal.LogProb(0.3) + distuv.UnitNormal.LogProb(-1.4) +
		distuv.Gamma{Alpha: 1.5, Beta: 1}.LogProb(0.9)
	assert.InDelta(t, want, lp, 1e-13)
}

// TestRandomEffects_BetaRecurrence hand-computes the shape pairs for a
// p=4 term: ν starts at reg + (p−2)/2 and drops by 1/2 per step, while
// shape1 walks j/2.
func TestRandomEffects_BetaRecurrence(t *testing.T) {
	terms := onion.Terms{{P: 4, L: 1}}
	reg := 1.2
	rho := []float64{0.3, 0.5, 0.8}
	zB := make([]float64, terms.Q())
	zT := make([]float64, terms.LenZT())
	for i := range zT {
		zT[i] = 0.1 * float64(i+1)
	}
	zeta := []float64{1, 2, 3, 4}
	conc := []float64{1, 1, 2, 2}
	tau := []float64{1.1}
	gammaShape := []float64{2}

	lp, err := prior.RandomEffects(terms, zB, zT, rho, zeta, tau,
		[]float64{reg}, conc, gammaShape)
	require.NoError(t, err)

	var want float64
	for _, v := range zB {
		want += distuv.UnitNormal.LogProb(v)
	}
	for _, v := range zT {
		want += distuv.UnitNormal.LogProb(v)
	}
	nu := reg + 0.5*2 // 2.2
	want += distuv.Beta{Alpha: nu, Beta: nu}.LogProb(0.3)
	nu -= 0.5
	want += distuv.Beta{Alpha: 1, Beta: nu}.LogProb(0.5)
	nu -= 0.5
	want += distuv.Beta{Alpha: 1.5, Beta: nu}.LogProb(0.8)
	for k, v := range zeta {
		want += distuv.Gamma{Alpha: conc[k], Beta: 1}.LogProb(v)
	}
	want += distuv.Gamma{Alpha: 2, Beta: 1}.LogProb(1.1)

	assert.InDelta(t, want, lp, 1e-12)
}

// TestRandomEffects_OutOfSupport verifies draws outside their support
// score −Inf as a value, not an error.
func TestRandomEffects_OutOfSupport(t *testing.T) {
	terms := onion.Terms{{P: 1, L: 1}}

	lp, err := prior.RandomEffects(terms, []float64{0}, nil, nil, nil,
		[]float64{-1}, nil, nil, []float64{1})
	require.NoError(t, err)
	assert.True(t, math.IsInf(lp, -1), "negative tau must score −Inf")
}

// TestRandomEffects_Rejections covers the length table, including the
// explicit concentration-length invariant Σ_{p>1} p.
func TestRandomEffects_Rejections(t *testing.T) {
	terms := onion.Terms{{P: 2, L: 1}}
	zB := []float64{0, 0}
	rho := []float64{0.5}
	zeta := []float64{1, 1}
	tau := []float64{1}
	reg := []float64{1}
	conc := []float64{1, 1}
	shape := []float64{1}

	_, err := prior.RandomEffects(terms, zB, nil, rho, zeta, tau, reg, conc[:1], shape)
	assert.ErrorIs(t, err, prior.ErrShapeMismatch, "concentration length")

	_, err = prior.RandomEffects(terms, zB[:1], nil, rho, zeta, tau, reg, conc, shape)
	assert.ErrorIs(t, err, prior.ErrShapeMismatch, "z_b length")

	_, err = prior.RandomEffects(terms, zB, nil, nil, zeta, tau, reg, conc, shape)
	assert.ErrorIs(t, err, prior.ErrShapeMismatch, "rho length")

	_, err = prior.RandomEffects(terms, zB, nil, rho, zeta, tau, nil, conc, shape)
	assert.ErrorIs(t, err, prior.ErrShapeMismatch, "regularization length")

	_, err = prior.RandomEffects(onion.Terms{{P: 0, L: 1}}, nil, nil, nil, nil,
		nil, nil, nil, nil)
	assert.ErrorIs(t, err, onion.ErrBadTerm)
}
