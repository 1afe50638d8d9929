package gauss_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadra/core"
	"github.com/katalvlaran/quadra/gauss"
)

// quartic is x⁴ − 2x + 1; its integral over [0, 2] is 4.4.
func quartic(x float64) float64 { return x*x*x*x - 2*x + 1 }

// sinSqrt is sin²(√(100x)); its integral over [0, 1] has a closed form.
func sinSqrt(x float64) float64 {
	s := math.Sin(math.Sqrt(100 * x))
	return s * s
}

// sinSqrtExact = (50 − 5·sin 20 − cos(20)/4 + 1/4) / 100.
var sinSqrtExact = (50 - 5*math.Sin(20) - math.Cos(20)/4 + 0.25) / 100

// TestIntegrate_Errors checks input validation.
func TestIntegrate_Errors(t *testing.T) {
	_, err := gauss.Integrate(nil, 0, 1, 3)
	assert.ErrorIs(t, err, core.ErrNilFunc)

	_, err = gauss.Integrate(quartic, 0, math.Inf(1), 3)
	assert.ErrorIs(t, err, core.ErrNonFiniteBound)

	_, err = gauss.Integrate(quartic, 0, 1, 0)
	assert.ErrorIs(t, err, core.ErrBadSlices)
}

// TestIntegrate_Quartic is the three-point scenario: exact up to rounding.
func TestIntegrate_Quartic(t *testing.T) {
	v, err := gauss.Integrate(quartic, 0, 2, 3)
	require.NoError(t, err)
	assert.InDelta(t, 4.4, v, 1e-9)
}

// TestIntegrate_PolynomialExactness checks degree 2n−1 exactness for many n.
func TestIntegrate_PolynomialExactness(t *testing.T) {
	const a, b = -0.5, 1.5
	for n := 1; n <= 12; n++ {
		deg := 2*n - 1
		// p(x) = Σ_{j=0..deg} (j+1)·x^j, ∫ = Σ (b^{j+1} − a^{j+1})
		p := func(x float64) float64 {
			var s float64
			for j := deg; j >= 0; j-- {
				s = s*x + float64(j+1)
			}
			return s
		}
		var exact float64
		for j := 0; j <= deg; j++ {
			exact += math.Pow(b, float64(j+1)) - math.Pow(a, float64(j+1))
		}

		v, err := gauss.Integrate(p, a, b, n)
		require.NoError(t, err)
		assert.InDelta(t, 0, (v-exact)/exact, 1e-9, "n=%d degree=%d", n, deg)
	}
}

// TestIntegrate_DegreeBeyondExactness shows the rule is not exact at degree 2n.
func TestIntegrate_DegreeBeyondExactness(t *testing.T) {
	// ∫_{-1}^{1} x² dx = 2/3; the one-point rule samples x=0 and yields 0.
	v, err := gauss.Integrate(func(x float64) float64 { return x * x }, -1, 1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, v, 1e-15)
}

// TestIntegrate_ReversedBounds flips the sign without a special case.
func TestIntegrate_ReversedBounds(t *testing.T) {
	fwd, err := gauss.Integrate(quartic, 0, 2, 5)
	require.NoError(t, err)
	rev, err := gauss.Integrate(quartic, 2, 0, 5)
	require.NoError(t, err)
	assert.InDelta(t, -fwd, rev, 1e-12)
}

// TestIntegrate_Idempotent checks the pure-function property.
func TestIntegrate_Idempotent(t *testing.T) {
	v1, err := gauss.Integrate(sinSqrt, 0, 1, 37)
	require.NoError(t, err)
	v2, err := gauss.Integrate(sinSqrt, 0, 1, 37)
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
}

// TestAdaptive_Errors checks tolerance and option validation.
func TestAdaptive_Errors(t *testing.T) {
	_, err := gauss.Adaptive(quartic, 0, 2, 0)
	assert.ErrorIs(t, err, core.ErrBadTolerance)

	_, err = gauss.Adaptive(nil, 0, 2, 1e-6)
	assert.ErrorIs(t, err, core.ErrNilFunc)

	_, err = gauss.Adaptive(quartic, 0, 2, 1e-6, core.WithBaseSlices(1000))
	assert.ErrorIs(t, err, core.ErrOptionViolation, "base above default cap")
}

// TestAdaptive_PolynomialConvergesAtFirstDoubling: orders 10 and 20 are both exact.
func TestAdaptive_PolynomialConvergesAtFirstDoubling(t *testing.T) {
	res, err := gauss.Adaptive(quartic, 0, 2, 1e-10)
	require.NoError(t, err)
	assert.True(t, res.Converged())
	assert.NoError(t, res.Err())
	assert.Equal(t, 1, res.Level)
	assert.Equal(t, 20, res.Slices)
	assert.Equal(t, 30, res.Evaluations)
	assert.InDelta(t, 4.4, res.Value, 1e-12)
}

// TestAdaptive_SinSqrt follows 10 → 20 → 40 and reports each step.
func TestAdaptive_SinSqrt(t *testing.T) {
	var steps []core.Step
	res, err := gauss.Adaptive(sinSqrt, 0, 1, 1e-10, core.WithOnStep(func(s core.Step) {
		steps = append(steps, s)
	}))
	require.NoError(t, err)
	assert.Equal(t, core.Converged, res.Status)
	assert.Equal(t, 40, res.Slices)
	assert.Equal(t, 70, res.Evaluations)
	assert.InDelta(t, sinSqrtExact, res.Value, 1e-12)

	require.Len(t, steps, 3)
	assert.False(t, steps[0].HasError, "base estimate has no error estimate")
	assert.Equal(t, []int{10, 20, 40}, []int{steps[0].Slices, steps[1].Slices, steps[2].Slices})
	assert.Greater(t, math.Abs(steps[1].ErrorEstimate), 1e-10)
	assert.Equal(t, res.Value, steps[2].Estimate)
}

// TestAdaptive_CapReached makes the non-convergence observable.
func TestAdaptive_CapReached(t *testing.T) {
	res, err := gauss.Adaptive(sinSqrt, 0, 1, 1e-15, core.WithMaxSlices(20))
	require.NoError(t, err)
	assert.Equal(t, core.CapReached, res.Status)
	assert.Equal(t, 20, res.Slices)
	assert.ErrorIs(t, res.Err(), core.ErrNotConverged)
	assert.InDelta(t, sinSqrtExact, res.Value, 1e-8, "best effort value is still returned")

	// base == cap: no refinement at all
	res, err = gauss.Adaptive(sinSqrt, 0, 1, 1e-3, core.WithBaseSlices(16), core.WithMaxSlices(16))
	require.NoError(t, err)
	assert.Equal(t, core.CapReached, res.Status)
	assert.Equal(t, 0, res.Level)
	assert.Equal(t, 16, res.Evaluations)
}

// TestAdaptive_Cancelled stops before the first doubling.
func TestAdaptive_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := gauss.Adaptive(sinSqrt, 0, 1, 1e-10, core.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 10, res.Slices)
	assert.Equal(t, 0, res.Level)
}
