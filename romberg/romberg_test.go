package romberg_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate"

	"github.com/katalvlaran/quadra/core"
	"github.com/katalvlaran/quadra/romberg"
	"github.com/katalvlaran/quadra/trapezoid"
)

func sinSqrt(x float64) float64 {
	s := math.Sin(math.Sqrt(100 * x))
	return s * s
}

// TestIntegrate_SinSqrt is the 1e-6 scenario on sin²(√(100x)).
func TestIntegrate_SinSqrt(t *testing.T) {
	res, err := romberg.Integrate(sinSqrt, 0, 1, 1e-6)
	require.NoError(t, err)

	assert.InDelta(t, 0.45583249446137863, res.Value, 1e-6)
	assert.InDelta(t, 0.45583249446137863, res.Value, 1e-15)
	assert.Equal(t, core.Converged, res.Status)
	assert.Equal(t, 6, res.Level)
	assert.Equal(t, 64, res.Slices)
	assert.Equal(t, 65, res.Evaluations)
	require.Len(t, res.Row, 7)
	assert.Equal(t, res.Value, res.Row[6])
	assert.InDelta(t, 0.4539129312153758, res.Row[0], 1e-15, "first column is the raw trapezoid estimate")
	assert.InDelta(t, 1.3428278877370225e-08, res.ErrorEstimate, 1e-16)
}

// TestIntegrate_MatchesGonum compares with gonum's Romberg on the same 2^k+1 samples.
func TestIntegrate_MatchesGonum(t *testing.T) {
	res, err := romberg.Integrate(sinSqrt, 0, 1, 1e-6)
	require.NoError(t, err)

	samples := make([]float64, res.Slices+1)
	for i := range samples {
		samples[i] = sinSqrt(float64(i) / float64(res.Slices))
	}
	assert.InDelta(t, integrate.Romberg(samples, 1/float64(res.Slices)), res.Value, 1e-12)
}

// TestIntegrate_FirstColumnIsTrapezoid: R[k][0] matches trapezoid on 2^k slices.
func TestIntegrate_FirstColumnIsTrapezoid(t *testing.T) {
	var rows []core.Step
	res, err := romberg.Integrate(math.Exp, 0, 1, 1e-12, core.WithOnStep(func(s core.Step) {
		rows = append(rows, s)
	}))
	require.NoError(t, err)

	want, err := trapezoid.Integrate(math.Exp, 0, 1, res.Slices)
	require.NoError(t, err)
	assert.InDelta(t, want, res.Row[0], 1e-14)
	assert.Len(t, rows, res.Level+1)
	assert.InDelta(t, math.E-1, res.Value, 1e-14)
}

// TestIntegrate_SuperExponential: the error shrinks faster at every level.
func TestIntegrate_SuperExponential(t *testing.T) {
	exact := math.E - 1
	var errs []float64
	_, err := romberg.Integrate(math.Exp, 0, 1, 1e-15, core.WithMaxSlices(16), core.WithOnStep(func(s core.Step) {
		errs = append(errs, math.Abs(s.Estimate-exact))
	}))
	require.NoError(t, err)
	require.Len(t, errs, 5)

	// Level ratios grow: ~16, ~64, ~256, … rather than a constant factor.
	ratios := make([]float64, 0, 3)
	for k := 1; k < 4; k++ {
		ratios = append(ratios, errs[k]/errs[k+1])
	}
	for i := 1; i < len(ratios); i++ {
		assert.Greater(t, ratios[i], ratios[i-1])
	}
}

// TestIntegrate_PolynomialExactEarly: a quartic is exact from row 2 onwards.
func TestIntegrate_PolynomialExactEarly(t *testing.T) {
	res, err := romberg.Integrate(func(x float64) float64 { return x*x*x*x - 2*x + 1 }, 0, 2, 1e-10)
	require.NoError(t, err)
	assert.True(t, res.Converged())
	assert.Equal(t, 3, res.Level)
	assert.InDelta(t, 4.4, res.Value, 1e-13)
}

// TestIntegrate_CapReached flags a run stopped by the slice cap.
func TestIntegrate_CapReached(t *testing.T) {
	res, err := romberg.Integrate(sinSqrt, 0, 1, 1e-15, core.WithMaxSlices(16))
	require.NoError(t, err)
	assert.Equal(t, core.CapReached, res.Status)
	assert.Equal(t, 4, res.Level)
	assert.Equal(t, 16, res.Slices)
	assert.InDelta(t, 0.4458037647108326, res.Value, 1e-15)
	assert.ErrorIs(t, res.Err(), core.ErrNotConverged)
}

// TestIntegrate_Errors covers tolerance, input and option errors.
func TestIntegrate_Errors(t *testing.T) {
	_, err := romberg.Integrate(sinSqrt, 0, 1, math.NaN())
	assert.ErrorIs(t, err, core.ErrBadTolerance)

	_, err = romberg.Integrate(nil, 0, 1, 1e-6)
	assert.ErrorIs(t, err, core.ErrNilFunc)

	_, err = romberg.Integrate(sinSqrt, 0, 1, 1e-6, core.WithMaxSlices(0))
	assert.ErrorIs(t, err, core.ErrOptionViolation)
}

// TestIntegrate_Cancelled keeps row 0 and reports ctx.Err().
func TestIntegrate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := romberg.Integrate(sinSqrt, 0, 1, 1e-6, core.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, res.Level)
	require.Len(t, res.Row, 1)
	assert.InDelta(t, 0.147979484546652, res.Row[0], 1e-15)
}
