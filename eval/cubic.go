package eval

import (
	"github.com/npillmayer/curves"
	"gonum.org/v1/gonum/interp"
)

// cubicPath is a piecewise cubic Hermite path through n points, one cubic
// segment per pair of neighbouring points. Point i sits at curve parameter
// t = i/(n-1). Each coordinate is a gonum piecewise cubic.
type cubicPath struct {
	x, y interp.PiecewiseCubic
}

// fitCubicPath fits a path through points with tangents given per unit of
// the local segment parameter u = t⋅(n-1) - s. Both slices must hold at
// least 2 entries and have equal length.
func fitCubicPath(points, tangents []curves.Pair) *cubicPath {
	n := len(points)
	segs := float64(n - 1)
	ts := make([]float64, n)
	dxs := make([]float64, n)
	dys := make([]float64, n)
	for i := range points {
		ts[i] = float64(i) / segs
		dxs[i] = tangents[i].X() * segs // dx/dt = dx/du ⋅ du/dt
		dys[i] = tangents[i].Y() * segs
	}
	ts[n-1] = 1
	xs, ys := curves.XY(points)
	path := &cubicPath{}
	path.x.FitWithDerivatives(ts, xs, dxs)
	path.y.FitWithDerivatives(ts, ys, dys)
	return path
}

// at returns the path point at t ∈ [0,1].
func (path *cubicPath) at(t float64) curves.Pair {
	return curves.P(path.x.Predict(t), path.y.Predict(t))
}
