package eval

import (
	"github.com/npillmayer/curves"
	"github.com/npillmayer/curves/basis"
)

// LagrangeCurve is a Lagrange polynomial through all control points.
type LagrangeCurve struct {
	stepper
	points []curves.Pair
	ts     []float64
	xs, ys []float64 // set by Build
}

// NewLagrange creates an evaluator for a Lagrange curve.
func NewLagrange(spec *curves.CurveSpec) (*LagrangeCurve, error) {
	if err := checkSpec(spec, curves.Lagrange); err != nil {
		return nil, err
	}
	return &LagrangeCurve{
		stepper: stepper{family: curves.Lagrange, steps: spec.Steps()},
		points:  spec.Points(),
		ts:      spec.Params(),
	}, nil
}

// Build checks the parameter values and extracts control point coordinates.
// Build fails with curves.ErrSingularSystem if two parameter values coincide.
func (lc *LagrangeCurve) Build() error {
	if err := basis.CheckDistinct(lc.ts); err != nil {
		return err
	}
	lc.xs, lc.ys = curves.XY(lc.points)
	lc.built = true
	tracer().Debugf("built Lagrange curve with %d control points", len(lc.points))
	return nil
}

// Basis returns the Lagrange basis weights at step.
func (lc *LagrangeCurve) Basis(step int) ([]float64, error) {
	t, err := lc.param(step)
	if err != nil {
		return nil, err
	}
	return basis.Lagrange(t, lc.ts), nil
}

// At returns the curve point at step.
func (lc *LagrangeCurve) At(step int) (curves.Pair, error) {
	w, err := lc.Basis(step)
	if err != nil {
		return curves.Origin, err
	}
	return basis.Blend(w, lc.xs, lc.ys), nil
}
