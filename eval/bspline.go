package eval

import (
	"github.com/npillmayer/curves"
	"github.com/npillmayer/curves/basis"
)

// BSplineCurve is a B-spline of order k over a knot vector of length n+k.
// The curve parameter t ∈ [0,1] is mapped onto the domain [knot.k-1, knot.n].
type BSplineCurve struct {
	stepper
	k      int
	points []curves.Pair
	knots  []float64 // explicit knots, or derived by Build
	kconv  curves.KnotConvention
	xs, ys []float64 // set by Build
	lo, hi float64   // domain, set by Build
}

// NewBSpline creates an evaluator for a B-spline.
func NewBSpline(spec *curves.CurveSpec) (*BSplineCurve, error) {
	if err := checkSpec(spec, curves.BSpline); err != nil {
		return nil, err
	}
	return &BSplineCurve{
		stepper: stepper{family: curves.BSpline, steps: spec.Steps()},
		k:       spec.Order(),
		points:  spec.Points(),
		knots:   spec.Knots(),
		kconv:   spec.KnotConvention(),
	}, nil
}

// Build derives the knot vector, if none has been given, and extracts
// control point coordinates. It fails with curves.ErrInvalidOrder if
// k is not in [1,n].
func (bc *BSplineCurve) Build() error {
	n := len(bc.points)
	knots := bc.knots
	if knots == nil {
		if bc.k < 1 || bc.k > n {
			return basis.CheckKnots(nil, n, bc.k)
		}
		if bc.kconv == curves.UniformKnots {
			knots = basis.UniformKnots(n, bc.k)
		} else {
			knots = basis.ClampedKnots(n, bc.k)
		}
	}
	if err := basis.CheckKnots(knots, n, bc.k); err != nil {
		tracer().Errorf("cannot build B-spline: %v", err)
		return err
	}
	bc.knots = knots
	bc.lo, bc.hi = basis.Domain(knots, bc.k)
	bc.xs, bc.ys = curves.XY(bc.points)
	bc.built = true
	tracer().Debugf("built B-spline of order %d, %s knots %v", bc.k, bc.kconv, knots)
	return nil
}

// Knots returns the knot vector in use.
func (bc *BSplineCurve) Knots() ([]float64, error) {
	if !bc.built {
		return nil, curves.ErrNotBuilt
	}
	return append([]float64(nil), bc.knots...), nil
}

// Basis returns the B-spline basis weights at step.
func (bc *BSplineCurve) Basis(step int) ([]float64, error) {
	t, err := bc.param(step)
	if err != nil {
		return nil, err
	}
	u := bc.lo + t*(bc.hi-bc.lo)
	if t == 1 {
		u = bc.hi
	}
	return basis.CoxDeBoor(u, bc.knots, bc.k), nil
}

// At returns the curve point at step.
func (bc *BSplineCurve) At(step int) (curves.Pair, error) {
	w, err := bc.Basis(step)
	if err != nil {
		return curves.Origin, err
	}
	return basis.Blend(w, bc.xs, bc.ys), nil
}
