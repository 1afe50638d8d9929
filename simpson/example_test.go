package simpson_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quadra/simpson"
)

// ExampleIntegrate integrates x⁴ − 2x + 1 over [0, 2] with ten slices.
func ExampleIntegrate() {
	f := func(x float64) float64 { return x*x*x*x - 2*x + 1 }

	v, err := simpson.Integrate(f, 0, 2, 10)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.12f\n", v)
	// Output:
	// 4.400426666667
}

// ExampleAdaptive refines sin²(√(100x)) over [0, 1] to 1e-6.
func ExampleAdaptive() {
	f := func(x float64) float64 {
		s := math.Sin(math.Sqrt(100 * x))
		return s * s
	}

	res, err := simpson.Adaptive(f, 0, 1, 1e-6)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("value=%.12f slices=%d samples=%d\n", res.Value, res.Slices, res.Evaluations)
	// Output:
	// value=0.455832187147 slices=256 samples=257
}
