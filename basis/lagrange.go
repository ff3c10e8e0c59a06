package basis

import (
	"fmt"

	"github.com/npillmayer/curves"
)

// Lagrange computes the Lagrange basis weights for parameter t, given
// parameter values t.0 … t.n-1:
//
//	L.i(t) = ∏ (t - t.j) / (t.i - t.j),  j ≠ i
//
// Parameter values must be pairwise distinct (see CheckDistinct). The weights
// sum to 1. For widely spaced t.i the weights may grow large (Runge's
// phenomenon); this is inherent to the family.
func Lagrange(t float64, ts []float64) []float64 {
	n := len(ts)
	w := make([]float64, n)
	for i := 0; i < n; i++ {
		numerator, denominator := 1.0, 1.0
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			numerator *= t - ts[j]
			denominator *= ts[i] - ts[j]
		}
		w[i] = numerator / denominator
	}
	return w
}

// CheckDistinct returns an ErrSingularSystem error if two of the parameter
// values are equal. Values are compared exactly, closely spaced values pass.
func CheckDistinct(ts []float64) error {
	for i := 0; i < len(ts); i++ {
		for j := i + 1; j < len(ts); j++ {
			if ts[i] == ts[j] {
				tracer().Errorf("t.%d = t.%d = %g", i, j, ts[i])
				return fmt.Errorf("%w: t.%d and t.%d coincide at %g", curves.ErrSingularSystem, i, j, ts[i])
			}
		}
	}
	return nil
}
