// SPDX-License-Identifier: MIT

package legendre

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/quadra/core"
)

const (
	// Tolerance is the largest Newton update, over all roots of a sweep,
	// at which the iteration stops.
	Tolerance = 1e-15

	// MaxSweeps bounds the Newton iteration. Orders up to several
	// thousand converge in fewer than ten sweeps.
	MaxSweeps = 200
)

// ErrNoConvergence is returned when MaxSweeps Newton sweeps did not bring
// the largest update below Tolerance.
var ErrNoConvergence = errors.New("legendre: Newton iteration did not converge")

// NodeSet is a Gauss–Legendre rule: abscissas X and weights W, len(X) == len(W).
// Abscissas are ordered from near +1 down to near -1.
type NodeSet struct {
	X []float64
	W []float64
}

// Len returns the order of the rule.
func (s NodeSet) Len() int { return len(s.X) }

// Scale maps the rule from [-1, 1] onto [a, b]:
//
//	x' = ½(b−a)·x + ½(a+b),  w' = ½(b−a)·w
//
// The receiver is left untouched.
func (s NodeSet) Scale(a, b float64) NodeSet {
	var (
		half = 0.5 * (b - a)
		mid  = 0.5 * (a + b)
		out  = NodeSet{X: make([]float64, len(s.X)), W: make([]float64, len(s.W))}
		i    int
	)
	for i = range s.X {
		out.X[i] = half*s.X[i] + mid
		out.W[i] = half * s.W[i]
	}

	return out
}

// Nodes returns the order-n Gauss–Legendre node set on [-1, 1].
//
// Errors:
//   - core.ErrBadSlices: n < 1.
//   - ErrNoConvergence: Newton iteration exceeded MaxSweeps.
func Nodes(n int) (NodeSet, error) {
	// Stage 1: Validate order
	if n < 1 {
		return NodeSet{}, fmt.Errorf("legendre: order %d: %w", n, core.ErrBadSlices)
	}

	// Stage 2: Seed roots with the asymptotic approximation
	var (
		nf    = float64(n)
		x     = make([]float64, n) // root estimates
		dp    = make([]float64, n) // P_n' at the estimate of the last sweep
		i     int
		angle float64
	)
	for i = 0; i < n; i++ {
		angle = math.Pi * (4*float64(i+1) - 1) / (4*nf + 2)
		x[i] = math.Cos(angle + 1/(8*nf*nf*math.Tan(angle)))
	}

	// Stage 3: Newton sweeps over all roots
	var (
		sweep    int
		delta    float64
		p, d, dx float64
	)
	for sweep = 0; ; sweep++ {
		if sweep == MaxSweeps {
			return NodeSet{}, fmt.Errorf("legendre: order %d, last update %g: %w", n, delta, ErrNoConvergence)
		}
		delta = 0
		for i = 0; i < n; i++ {
			p, d = Eval(n, x[i])
			dx = p / d
			x[i] -= dx
			dp[i] = d
			delta = math.Max(delta, math.Abs(dx))
		}
		if delta < Tolerance {
			break
		}
	}

	// Stage 4: Weights from the derivative at the converged roots
	w := make([]float64, n)
	for i = 0; i < n; i++ {
		w[i] = 2 / ((1 - x[i]*x[i]) * dp[i] * dp[i])
	}

	return NodeSet{X: x, W: w}, nil
}

// Eval returns P_n(x) and P_n'(x).
//
// The derivative divides by x² − 1, so it is ±Inf or NaN at x = ±1;
// roots never sit there, and the degeneracy is left to propagate.
func Eval(n int, x float64) (p, dp float64) {
	if n <= 0 {
		return 1, 0
	}

	var (
		p0 = 1.0 // P_{k-1}
		p1 = x   // P_k
		k  int
		kf float64
	)
	for k = 1; k < n; k++ {
		kf = float64(k)
		p0, p1 = p1, ((2*kf+1)*x*p1-kf*p0)/(kf+1)
	}

	return p1, float64(n) * (x*p1 - p0) / (x*x - 1)
}
