package basis

import (
	"fmt"

	"github.com/npillmayer/curves"
)

// ClampedKnots returns a clamped knot vector of length n+k for n control
// points and order k: k knots at 0, k knots at 1 and n-k interior knots
// evenly spaced in between. A clamped B-spline interpolates its first and
// last control point.
func ClampedKnots(n, k int) []float64 {
	knots := make([]float64, n+k)
	spans := n - k + 1
	for i := range knots {
		switch {
		case i < k:
			knots[i] = 0
		case i >= n:
			knots[i] = 1
		default:
			knots[i] = float64(i-k+1) / float64(spans)
		}
	}
	return knots
}

// UniformKnots returns n+k knots evenly spread over [0,1].
func UniformKnots(n, k int) []float64 {
	m := n + k
	knots := make([]float64, m)
	for i := range knots {
		knots[i] = float64(i) / float64(m-1)
	}
	return knots
}

// Domain returns the valid parameter range [knot.k-1, knot.n] of a B-spline of
// order k with n = len(knots)-k control points. Within this range the basis
// weights form a partition of unity.
func Domain(knots []float64, k int) (float64, float64) {
	n := len(knots) - k
	return knots[k-1], knots[n]
}

// CheckKnots validates a knot vector for a B-spline of order k with n control
// points.
func CheckKnots(knots []float64, n, k int) error {
	if k < 1 || k > n {
		return fmt.Errorf("%w: k = %d, must be in [1,%d]", curves.ErrInvalidOrder, k, n)
	}
	if len(knots) != n+k {
		return fmt.Errorf("%w: need %d knots, got %d", curves.ErrDimensionMismatch, n+k, len(knots))
	}
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			return fmt.Errorf("%w: knots decrease at position %d", curves.ErrInvalidKnots, i)
		}
	}
	if lo, hi := Domain(knots, k); lo >= hi {
		return fmt.Errorf("%w: empty domain [%g,%g]", curves.ErrInvalidKnots, lo, hi)
	}
	return nil
}

// CoxDeBoor computes the B-spline basis weights N.i,k(t) for order k over a
// knot vector, using the Cox–de Boor recursion
//
//	N.i,1(t) = 1 if knot.i ≤ t < knot.i+1, 0 otherwise
//	N.i,p(t) = (t - knot.i)/(knot.i+p-1 - knot.i) ⋅ N.i,p-1(t)
//	         + (knot.i+p - t)/(knot.i+p - knot.i+1) ⋅ N.i+1,p-1(t)
//
// Terms with a zero denominator contribute 0. The result has
// n = len(knots)-k entries. At the right end of the domain, t = knot.n, the
// last non-empty span is treated as closed, so that weights still sum to 1.
func CoxDeBoor(t float64, knots []float64, k int) []float64 {
	m := len(knots) - 1 // number of spans
	n := len(knots) - k
	N := make([]float64, m)
	for i := 0; i < m; i++ {
		if knots[i] <= t && t < knots[i+1] {
			N[i] = 1
		}
	}
	if _, hi := Domain(knots, k); t == hi {
		for i := n - 1; i >= 0; i-- {
			if knots[i] < knots[i+1] {
				N[i] = 1
				break
			}
		}
		for i := n; i < m; i++ { // spans right of the domain
			N[i] = 0
		}
	}
	for p := 2; p <= k; p++ {
		for i := 0; i < m-p+1; i++ {
			var left, right float64
			if d := knots[i+p-1] - knots[i]; d != 0 {
				left = (t - knots[i]) / d * N[i]
			}
			if d := knots[i+p] - knots[i+1]; d != 0 {
				right = (knots[i+p] - t) / d * N[i+1]
			}
			N[i] = left + right
		}
	}
	return N[:n]
}
