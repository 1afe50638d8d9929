// SPDX-License-Identifier: MIT

package core

// Counter wraps a Func and counts how many times it was evaluated.
// It is not safe for concurrent use; engines are sequential.
type Counter struct {
	f     Func
	calls int
}

// NewCounter returns a Counter around f.
func NewCounter(f Func) *Counter {
	return &Counter{f: f}
}

// Eval calls the wrapped integrand and records the call.
func (c *Counter) Eval(x float64) float64 {
	c.calls++
	return c.f(x)
}

// Calls returns the number of evaluations so far.
func (c *Counter) Calls() int { return c.calls }

// SumStrided returns Σ f(a + i·h) for i = first, first+stride, …, i <= last,
// evaluated left to right. It returns 0 when first > last.
//
// Composite rules use it to add only the samples a refinement introduces:
// the odd indices 1, 3, …, n-1 of a doubled grid are exactly the midpoints
// of the previous one.
func SumStrided(f Func, a, h float64, first, last, stride int) float64 {
	var (
		total float64
		i     int
	)
	for i = first; i <= last; i += stride {
		total += f(a + float64(i)*h)
	}

	return total
}
