package posterior_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hbern/link"
	"github.com/katalvlaran/hbern/onion"
	"github.com/katalvlaran/hbern/posterior"
	"github.com/katalvlaran/hbern/prior"
	"github.com/katalvlaran/hbern/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// fixedEffectsBundle is the reference scenario: K=1, two observations per
// outcome, logit link, standard-normal priors on the coefficient and the
// intercept, no grouping terms, no weights, no offset.
func fixedEffectsBundle(t *testing.T) *posterior.Data {
	t.Helper()

	d, err := posterior.NewData(posterior.Data{
		N0:   2,
		N1:   2,
		X0:   mat.NewDense(2, 1, []float64{0, 0}),
		X1:   mat.NewDense(2, 1, []float64{1, 1}),
		Xbar: []float64{0},
		K:    1,
		Link: link.Logit,

		HasIntercept: true,
		PriorBeta:    prior.Normal{Mean: []float64{0}, Scale: []float64{1}},
		PriorIntercept: &prior.Intercept{
			Family: prior.FamilyNormal, Mean: 0, Scale: 1,
		},
	})
	require.NoError(t, err)

	return d
}

// TestLogDensity_ReferenceScenario pins the literal acceptance value:
// with z_beta=0.5 and gamma=0.1 the predictor partitions are
// eta0=[0.1 0.1], eta1=[0.6 0.6], the log-likelihood is
// 2·log σ(−0.1) + 2·log σ(0.6), and the density adds standard-normal
// scores for z_beta and gamma.
func TestLogDensity_ReferenceScenario(t *testing.T) {
	d := fixedEffectsBundle(t)
	p := &posterior.Params{ZBeta: []float64{0.5}, Gamma: []float64{0.1}}

	got, err := posterior.LogDensity(d, p)
	require.NoError(t, err)

	sigmoid := func(x float64) float64 { return 1 / (1 + math.Exp(-x)) }
	want := 2*math.Log(sigmoid(-0.1)) + 2*math.Log(sigmoid(0.6)) +
		distuv.UnitNormal.LogProb(0.5) + distuv.UnitNormal.LogProb(0.1)
	assert.InDelta(t, want, got, 1e-13)
}

// TestLogDensity_WeightedPath verifies that unit weights reproduce the
// exact path and non-unit weights scale each observation's contribution.
func TestLogDensity_WeightedPath(t *testing.T) {
	d := fixedEffectsBundle(t)
	p := &posterior.Params{ZBeta: []float64{0.5}, Gamma: []float64{0.1}}

	exact, err := posterior.LogDensity(d, p)
	require.NoError(t, err)

	unit := *d
	unit.Weights0 = []float64{1, 1}
	unit.Weights1 = []float64{1, 1}
	wd, err := posterior.NewData(unit)
	require.NoError(t, err)

	got, err := posterior.LogDensity(wd, p)
	require.NoError(t, err)
	assert.InDelta(t, exact, got, 1e-12, "unit weights must match the exact path")

	skew := *d
	skew.Weights0 = []float64{2, 0}
	skew.Weights1 = []float64{1, 3}
	sd, err := posterior.NewData(skew)
	require.NoError(t, err)

	got, err = posterior.LogDensity(sd, p)
	require.NoError(t, err)

	sigmoid := func(x float64) float64 { return 1 / (1 + math.Exp(-x)) }
	wantLL := 2*math.Log(sigmoid(-0.1)) + (1+3)*math.Log(sigmoid(0.6))
	want := wantLL + distuv.UnitNormal.LogProb(0.5) + distuv.UnitNormal.LogProb(0.1)
	assert.InDelta(t, want, got, 1e-12)
}

// TestLogDensity_PriorPD drops the likelihood but keeps every prior term.
func TestLogDensity_PriorPD(t *testing.T) {
	base := fixedEffectsBundle(t)
	pd := *base
	pd.PriorPD = true
	d, err := posterior.NewData(pd)
	require.NoError(t, err)

	p := &posterior.Params{ZBeta: []float64{0.5}, Gamma: []float64{0.1}}
	got, err := posterior.LogDensity(d, p)
	require.NoError(t, err)

	want := distuv.UnitNormal.LogProb(0.5) + distuv.UnitNormal.LogProb(0.1)
	assert.InDelta(t, want, got, 1e-14)
}

// hierarchicalBundle adds two grouping terms — a scalar intercept term
// with three levels and an intercept+slope term with two levels — on top
// of one fixed effect. q = 1·3 + 2·2 = 7.
func hierarchicalBundle(t *testing.T) *posterior.Data {
	t.Helper()

	// Each observation loads its level's columns; columns 0..2 belong to
	// term 1, columns 3..6 to term 2 (level-major, coefficient-minor).
	z0, err := sparse.NewCSR(2, 7,
		[]int{0, 3, 6},
		[]int{0, 3, 4, 1, 5, 6},
		[]float64{1, 1, 0.5, 1, 1, -0.5})
	require.NoError(t, err)
	z1, err := sparse.NewCSR(2, 7,
		[]int{0, 3, 6},
		[]int{2, 3, 4, 0, 5, 6},
		[]float64{1, 1, 1.5, 1, 1, 2.0})
	require.NoError(t, err)

	d, err := posterior.NewData(posterior.Data{
		N0:   2,
		N1:   2,
		X0:   mat.NewDense(2, 1, []float64{-0.4, 0.2}),
		X1:   mat.NewDense(2, 1, []float64{0.7, -0.1}),
		Xbar: []float64{0.1},
		K:    1,
		Z0:   z0,
		Z1:   z1,

		Terms:          onion.Terms{{P: 1, L: 3}, {P: 2, L: 2}},
		Scale:          []float64{1, 0.5},
		Regularization: []float64{1},
		Concentration:  []float64{1, 1},
		GammaShape:     []float64{1, 1},

		Link:         link.Logit,
		HasIntercept: true,
		PriorBeta:    prior.Normal{Mean: []float64{0}, Scale: []float64{2}},
		PriorIntercept: &prior.Intercept{
			Family: prior.FamilyStudentT, Mean: 0, Scale: 2.5, DF: 4,
		},
	})
	require.NoError(t, err)

	return d
}

func hierarchicalParams() *posterior.Params {
	return &posterior.Params{
		ZBeta: []float64{0.25},
		Gamma: []float64{-0.3},
		ZB:    []float64{0.5, -1.0, 0.2, 1.1, -0.7, 0.3, 0.9},
		Rho:   []float64{0.65},
		Zeta:  []float64{1.4, 0.6},
		Tau:   []float64{0.8, 1.3},
	}
}

// TestLogDensity_Hierarchical cross-checks the orchestrator against a
// hand assembly of its published pieces: the onion factors, the sparse
// products, the exact likelihood and each prior block.
func TestLogDensity_Hierarchical(t *testing.T) {
	d := hierarchicalBundle(t)
	p := hierarchicalParams()

	got, err := posterior.LogDensity(d, p)
	require.NoError(t, err)
	require.False(t, math.IsNaN(got))
	require.False(t, math.IsInf(got, 0))

	// Hand assembly.
	thetaL, err := onion.Factorize(d.Terms, p.Tau, d.Scale, p.Zeta, p.Rho, p.ZT)
	require.NoError(t, err)
	b, err := onion.BuildB(p.ZB, thetaL, d.Terms)
	require.NoError(t, err)

	beta := []float64{0.25 * 2} // z·scale + mean
	eta0 := make([]float64, 2)
	eta1 := make([]float64, 2)
	for i := 0; i < 2; i++ {
		eta0[i] = d.X0.At(i, 0) * beta[0]
		eta1[i] = d.X1.At(i, 0) * beta[0]
	}
	zb0, err := d.Z0.MulVec(b)
	require.NoError(t, err)
	zb1, err := d.Z1.MulVec(b)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		eta0[i] += zb0[i] + p.Gamma[0]
		eta1[i] += zb1[i] + p.Gamma[0]
	}

	sigmoid := func(x float64) float64 { return 1 / (1 + math.Exp(-x)) }
	var want float64
	for i := 0; i < 2; i++ {
		want += math.Log(sigmoid(-eta0[i])) + math.Log(sigmoid(eta1[i]))
	}
	want += distuv.UnitNormal.LogProb(0.25)
	want += distuv.StudentsT{Mu: 0, Sigma: 2.5, Nu: 4}.LogProb(-0.3)

	lpRE, err := prior.RandomEffects(d.Terms, p.ZB, p.ZT, p.Rho, p.Zeta, p.Tau,
		d.Regularization, d.Concentration, d.GammaShape)
	require.NoError(t, err)
	want += lpRE

	assert.InDelta(t, want, got, 1e-10)
}

// TestLogDensity_RejectsInadmissible returns −Inf (not an error) for
// parameter values outside their constrained domains.
func TestLogDensity_RejectsInadmissible(t *testing.T) {
	d := hierarchicalBundle(t)

	cases := []struct {
		name   string
		mutate func(*posterior.Params)
	}{
		{"rho at one", func(p *posterior.Params) { p.Rho[0] = 1 }},
		{"rho negative", func(p *posterior.Params) { p.Rho[0] = -0.2 }},
		{"rho NaN", func(p *posterior.Params) { p.Rho[0] = math.NaN() }},
		{"zeta zero", func(p *posterior.Params) { p.Zeta[0] = 0 }},
		{"tau negative", func(p *posterior.Params) { p.Tau[1] = -3 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := hierarchicalParams()
			tc.mutate(p)

			got, err := posterior.LogDensity(d, p)
			require.NoError(t, err)
			assert.True(t, math.IsInf(got, -1), "want −Inf, got %v", got)
		})
	}
}

// TestLogDensity_ShapeFaults are configuration errors, not rejections.
func TestLogDensity_ShapeFaults(t *testing.T) {
	d := fixedEffectsBundle(t)

	_, err := posterior.LogDensity(nil, &posterior.Params{})
	assert.ErrorIs(t, err, posterior.ErrNilData)

	_, err = posterior.LogDensity(d, nil)
	assert.ErrorIs(t, err, posterior.ErrNilParams)

	_, err = posterior.LogDensity(d, &posterior.Params{ZBeta: []float64{1, 2}, Gamma: []float64{0}})
	assert.ErrorIs(t, err, posterior.ErrShapeMismatch, "z_beta length")

	_, err = posterior.LogDensity(d, &posterior.Params{ZBeta: []float64{1}})
	assert.ErrorIs(t, err, posterior.ErrShapeMismatch, "missing gamma")
}

// TestLogDensity_LogLinkShift pins the max-shift assembly: the shift is
// the pre-intercept predictor maximum, and the likelihood sees
// eta − shift + gamma.
func TestLogDensity_LogLinkShift(t *testing.T) {
	d, err := posterior.NewData(posterior.Data{
		N0:   1,
		N1:   1,
		X0:   mat.NewDense(1, 1, []float64{-1}),
		X1:   mat.NewDense(1, 1, []float64{-2}),
		Xbar: []float64{0},
		K:    1,
		Link: link.Log,

		HasIntercept:   true,
		PriorBeta:      prior.None{},
		PriorIntercept: nil, // flat
	})
	require.NoError(t, err)

	p := &posterior.Params{ZBeta: []float64{1}, Gamma: []float64{-0.5}}
	got, err := posterior.LogDensity(d, p)
	require.NoError(t, err)

	// eta = [-1], [-2]; shift = -1; predictor = [-0.5], [-1.5].
	want := math.Log(1-math.Exp(-0.5)) + (-1.5)
	assert.InDelta(t, want, got, 1e-13)
}

// TestLogDensity_HorseshoeEndToEnd wires the shrinkage draws through the
// orchestrator and checks against the family's own pieces.
func TestLogDensity_HorseshoeEndToEnd(t *testing.T) {
	hs := prior.Horseshoe{DF: []float64{1, 1}, GlobalScale: 1}
	d, err := posterior.NewData(posterior.Data{
		N0:   1,
		N1:   1,
		X0:   mat.NewDense(1, 2, []float64{0.5, -1}),
		X1:   mat.NewDense(1, 2, []float64{1, 0.25}),
		Xbar: []float64{0, 0},
		K:    2,
		Link: link.Probit,

		PriorBeta: hs,
	})
	require.NoError(t, err)

	p := &posterior.Params{
		ZBeta:  []float64{0.4, -1.2},
		Global: []float64{0.9, 1.1},
		Local:  [][]float64{{1.05, 0.7}, {0.8, 1.9}},
	}

	got, err := posterior.LogDensity(d, p)
	require.NoError(t, err)

	shr := &prior.Shrinkage{Global: p.Global, Local: p.Local}
	beta, err := hs.Transform(p.ZBeta, shr)
	require.NoError(t, err)

	eta0 := 0.5*beta[0] - 1*beta[1]
	eta1 := 1*beta[0] + 0.25*beta[1]
	want := math.Log(distuv.UnitNormal.CDF(-eta0)) + math.Log(distuv.UnitNormal.CDF(eta1))

	lpBeta, err := hs.LogDensity(p.ZBeta, shr)
	require.NoError(t, err)
	want += lpBeta

	assert.InDelta(t, want, got, 1e-11)
}
