package eval

import "github.com/npillmayer/curves"

// HermiteCurve is a cubic Hermite spline through all control points, with
// tangents given by the client.
type HermiteCurve struct {
	stepper
	points   []curves.Pair
	tangents []curves.Pair
	path     *cubicPath // set by Build
}

// NewHermite creates an evaluator for a cubic Hermite spline.
func NewHermite(spec *curves.CurveSpec) (*HermiteCurve, error) {
	if err := checkSpec(spec, curves.Hermite); err != nil {
		return nil, err
	}
	return &HermiteCurve{
		stepper:  stepper{family: curves.Hermite, steps: spec.Steps()},
		points:   spec.Points(),
		tangents: spec.Tangents(),
	}, nil
}

// Build checks that there is a tangent for every control point and fits the
// cubic segments.
func (hc *HermiteCurve) Build() error {
	if err := checkTangents(hc.points, hc.tangents); err != nil {
		return err
	}
	hc.path = fitCubicPath(hc.points, hc.tangents)
	hc.built = true
	tracer().Debugf("built Hermite spline with %d control points", len(hc.points))
	return nil
}

// Drawable is true for Hermite splines.
func (hc *HermiteCurve) Drawable() bool {
	return true
}

// At returns the curve point at step.
func (hc *HermiteCurve) At(step int) (curves.Pair, error) {
	t, err := hc.param(step)
	if err != nil {
		return curves.Origin, err
	}
	return hc.path.at(t), nil
}
