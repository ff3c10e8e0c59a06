package basis

import (
	"github.com/npillmayer/curves"
	"gonum.org/v1/gonum/floats"
)

// Blend combines basis weights with control point coordinates:
//
//	P = ∑ w.i ⋅ (x.i, y.i)
//
// All three slices must have equal length.
func Blend(w, xs, ys []float64) curves.Pair {
	return curves.P(floats.Dot(w, xs), floats.Dot(w, ys))
}

// Sum returns the sum of basis weights.
func Sum(w []float64) float64 {
	return floats.Sum(w)
}
