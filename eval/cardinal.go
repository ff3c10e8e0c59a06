package eval

import (
	"fmt"

	"github.com/npillmayer/curves"
	"github.com/npillmayer/curves/basis"
)

// CardinalCurve is a cardinal spline through all control points, with
// tangents estimated from neighbouring control points. With tension 0 this is
// a Catmull-Rom spline.
type CardinalCurve struct {
	stepper
	points   []curves.Pair
	tension  float64
	tangents []curves.Pair // set by Build
	path     *cubicPath    // set by Build
}

// NewCardinal creates an evaluator for a cardinal spline.
func NewCardinal(spec *curves.CurveSpec) (*CardinalCurve, error) {
	if err := checkSpec(spec, curves.Cardinal); err != nil {
		return nil, err
	}
	return &CardinalCurve{
		stepper: stepper{family: curves.Cardinal, steps: spec.Steps()},
		points:  spec.Points(),
		tension: spec.Tension(),
	}, nil
}

// Build estimates the tangents at the control points.
func (cc *CardinalCurve) Build() error {
	cc.tangents = basis.CardinalTangents(cc.points, cc.tension)
	if err := checkTangents(cc.points, cc.tangents); err != nil {
		return err
	}
	cc.path = fitCubicPath(cc.points, cc.tangents)
	cc.built = true
	tracer().Debugf("built cardinal spline with %d control points, tension %g",
		len(cc.points), cc.tension)
	return nil
}

// Drawable is true for cardinal splines.
func (cc *CardinalCurve) Drawable() bool {
	return true
}

// Tangents returns the estimated tangents.
func (cc *CardinalCurve) Tangents() ([]curves.Pair, error) {
	if !cc.built {
		return nil, curves.ErrNotBuilt
	}
	return append([]curves.Pair(nil), cc.tangents...), nil
}

// At returns the curve point at step.
func (cc *CardinalCurve) At(step int) (curves.Pair, error) {
	t, err := cc.param(step)
	if err != nil {
		return curves.Origin, err
	}
	return cc.path.at(t), nil
}

func checkTangents(points, tangents []curves.Pair) error {
	if len(points) < 2 {
		return fmt.Errorf("%w: need at least 2, got %d", curves.ErrTooFewPoints, len(points))
	}
	if len(tangents) != len(points) {
		tracer().Errorf("%d control points, but %d tangents", len(points), len(tangents))
		return fmt.Errorf("%w: %d control points, but %d tangents",
			curves.ErrDimensionMismatch, len(points), len(tangents))
	}
	return nil
}
