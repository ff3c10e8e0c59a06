package curves

import (
	"fmt"
	"math/cmplx"
)

// ControlPoint is a knot of a curve, tagged with its position I within the
// sequence of control points and its parameter value T. Hermite curves
// additionally use the tangent vector M at the knot.
type ControlPoint struct {
	I int
	Z Pair
	T float64
	M Pair
}

// ControlPoints is an ordered set of control points together with their
// parameter values t.i. To construct a set, start with NoControls() and
// extend it:
//
//	cps := NoControls().Knot(P(0,0), 0).Knot(P(1,2), 0.5).Knot(P(2,0), 1)
//
// A CurveSpec takes a snapshot of the set, so clients may continue to use
// the builder after a spec has been created.
type ControlPoints struct {
	points   []Pair    // point i
	ts       []float64 // parameter value t.i at point i
	tangents []Pair    // explicit tangent at point i, NaN if not set
}

// NoControls creates an empty set of control points, to be extended by
// subsequent builder calls.
func NoControls() *ControlPoints {
	return &ControlPoints{}
}

// FromPoints creates a set of control points from parallel slices of points
// and parameter values.
func FromPoints(points []Pair, ts []float64) (*ControlPoints, error) {
	if len(points) != len(ts) {
		return nil, fmt.Errorf("%w: %d points, but %d parameter values",
			ErrDimensionMismatch, len(points), len(ts))
	}
	cps := NoControls()
	for i, pt := range points {
		cps.Knot(pt, ts[i])
	}
	return cps, nil
}

// EvenlySpaced creates a set of control points with parameter values
// t.i = i/(n-1), i.e. evenly distributed over [0,1].
func EvenlySpaced(points ...Pair) *ControlPoints {
	cps := NoControls()
	n := len(points)
	for i, pt := range points {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		cps.Knot(pt, t)
	}
	return cps
}

// Knot appends a control point with parameter value t. Part of builder functionality.
func (cps *ControlPoints) Knot(p Pair, t float64) *ControlPoints {
	cps.points = append(cps.points, p)
	cps.ts = append(cps.ts, t)
	return cps
}

// TangentKnot appends a control point with parameter value t and
// tangent vector m. Part of builder functionality.
func (cps *ControlPoints) TangentKnot(p Pair, t float64, m Pair) *ControlPoints {
	cps.Knot(p, t)
	return cps.SetTangent(cps.N()-1, m)
}

// SetTangent is a property setter.
func (cps *ControlPoints) SetTangent(i int, m Pair) *ControlPoints {
	cps.tangents = extendC(cps.tangents, i, Pair(cmplx.NaN()))
	cps.tangents[i] = m
	return cps
}

// N returns the number of control points.
func (cps *ControlPoints) N() int {
	if cps == nil {
		return 0
	}
	return len(cps.points)
}

// Z returns control point i.
func (cps *ControlPoints) Z(i int) Pair {
	return cps.points[i]
}

// T returns the parameter value t.i of control point i.
func (cps *ControlPoints) T(i int) float64 {
	return cps.ts[i]
}

// Tangent returns the explicit tangent at control point i, or NaN if none
// has been set.
func (cps *ControlPoints) Tangent(i int) Pair {
	return getC(cps.tangents, i, Pair(cmplx.NaN()))
}

// At returns control point i together with its tags.
func (cps *ControlPoints) At(i int) ControlPoint {
	return ControlPoint{I: i, Z: cps.Z(i), T: cps.T(i), M: cps.Tangent(i)}
}

// Points returns a copy of the control point coordinates.
func (cps *ControlPoints) Points() []Pair {
	return append([]Pair(nil), cps.points...)
}

// Params returns a copy of the parameter sequence t.0 … t.n-1.
func (cps *ControlPoints) Params() []float64 {
	return append([]float64(nil), cps.ts...)
}

// TangentCount returns the number of control points with an explicit tangent.
func (cps *ControlPoints) TangentCount() int {
	cnt := 0
	for i := 0; i < cps.N(); i++ {
		if !cmplx.IsNaN(cps.Tangent(i).C()) {
			cnt++
		}
	}
	return cnt
}

// XY extracts parallel slices of x- and y-coordinates from the control points.
func (cps *ControlPoints) XY() ([]float64, []float64) {
	return XY(cps.points)
}

// XY extracts parallel slices of x- and y-coordinates from a slice of pairs.
func XY(points []Pair) ([]float64, []float64) {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, pt := range points {
		xs[i], ys[i] = pt.F()
	}
	return xs, ys
}

func (cps *ControlPoints) clone() *ControlPoints {
	return &ControlPoints{
		points:   cps.Points(),
		ts:       cps.Params(),
		tangents: append([]Pair(nil), cps.tangents...),
	}
}

// Extend an array/slice of pairs to make room for index i.
// Will do nothing if the array is already large enough.
func extendC(arr []Pair, i int, deflt Pair) []Pair {
	l := len(arr)
	if i >= l {
		arr = append(arr, make([]Pair, i-l+1)...)
		for ; i >= l; i-- {
			arr[i] = deflt
		}
	}
	return arr
}

// Get a value from an array/slice if present, default value deflt otherwise.
func getC(arr []Pair, i int, deflt Pair) Pair {
	if i >= len(arr) {
		return deflt
	}
	return arr[i]
}
