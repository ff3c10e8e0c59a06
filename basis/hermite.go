package basis

import (
	"math"

	"github.com/npillmayer/curves"
)

// Hermite returns the cubic Hermite blending functions for a local
// parameter u ∈ [0,1]:
//
//	h00 = 2u³ - 3u² + 1
//	h10 = u³ - 2u² + u
//	h01 = -2u³ + 3u²
//	h11 = u³ - u²
func Hermite(u float64) (h00, h10, h01, h11 float64) {
	u2 := u * u
	u3 := u2 * u
	h00 = 2*u3 - 3*u2 + 1
	h10 = u3 - 2*u2 + u
	h01 = -2*u3 + 3*u2
	h11 = u3 - u2
	return
}

// HermiteBlend evaluates the cubic Hermite segment between p0 and p1 with
// tangents m0 and m1 at local parameter u.
func HermiteBlend(u float64, p0, m0, p1, m1 curves.Pair) curves.Pair {
	h00, h10, h01, h11 := Hermite(u)
	return p0.Scaled(h00) + m0.Scaled(h10) + p1.Scaled(h01) + m1.Scaled(h11)
}

// Segment maps a curve parameter t ∈ [0,1] onto a spline with n knots
// (n-1 segments). It returns the segment index s = ⌊t⋅(n-1)⌋ and the local
// parameter u = t⋅(n-1) - s. For t = 1 the result is the last segment with
// u = 1.
func Segment(t float64, n int) (int, float64) {
	segs := n - 1
	x := t * float64(segs)
	s := int(math.Floor(x))
	if s >= segs {
		s = segs - 1
	} else if s < 0 {
		s = 0
	}
	return s, x - float64(s)
}

// CardinalTangents estimates tangents for a cardinal spline through points.
// Interior tangents are (1-c)⋅(z.i+1 - z.i-1)/2, the tangents at both ends
// are one-sided differences (1-c)⋅(z.1 - z.0) and (1-c)⋅(z.n-1 - z.n-2).
// Tension c = 0 results in a Catmull-Rom spline.
func CardinalTangents(points []curves.Pair, c float64) []curves.Pair {
	n := len(points)
	ms := make([]curves.Pair, n)
	if n < 2 {
		return ms
	}
	f := 1 - c
	ms[0] = (points[1] - points[0]).Scaled(f)
	ms[n-1] = (points[n-1] - points[n-2]).Scaled(f)
	for i := 1; i < n-1; i++ {
		ms[i] = (points[i+1] - points[i-1]).Scaled(f / 2)
	}
	return ms
}
