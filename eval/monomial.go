package eval

import (
	"fmt"

	"github.com/npillmayer/curves"
	"github.com/npillmayer/curves/polyn"
)

// MonomialCurve is a polynomial of degree k-1 in power basis {1, t, …, t^k-1},
// fitted through the first k control points.
type MonomialCurve struct {
	stepper
	k      int
	points []curves.Pair // first k control points
	ts     []float64     // first k parameter values
	px, py polyn.Polynomial
}

// NewMonomial creates an evaluator for a monomial-basis curve. It fails with
// curves.ErrInvalidOrder if k is not in [1,n].
func NewMonomial(spec *curves.CurveSpec) (*MonomialCurve, error) {
	if err := checkSpec(spec, curves.Monomial); err != nil {
		return nil, err
	}
	k := spec.Order()
	if k < 1 || k > spec.N() {
		return nil, fmt.Errorf("%w: k = %d, must be in [1,%d]", curves.ErrInvalidOrder, k, spec.N())
	}
	return &MonomialCurve{
		stepper: stepper{family: curves.Monomial, steps: spec.Steps()},
		k:       k,
		points:  spec.Points()[:k],
		ts:      spec.Params()[:k],
	}, nil
}

// Build solves the Vandermonde system for both coordinates. It fails with
// curves.ErrSingularSystem if two of the first k parameter values coincide.
func (mc *MonomialCurve) Build() error {
	xs, ys := curves.XY(mc.points)
	polys, err := polyn.Fit(mc.ts, xs, ys)
	if err != nil {
		return err
	}
	mc.px, mc.py = polys[0], polys[1]
	mc.built = true
	tracer().Debugf("built monomial curve of order %d: x(t) = %s, y(t) = %s", mc.k, mc.px, mc.py)
	return nil
}

// Polynomials returns the fitted coordinate polynomials x(t) and y(t).
func (mc *MonomialCurve) Polynomials() (polyn.Polynomial, polyn.Polynomial, error) {
	if !mc.built {
		return polyn.Polynomial{}, polyn.Polynomial{}, curves.ErrNotBuilt
	}
	return mc.px, mc.py, nil
}

// At returns the curve point at step.
func (mc *MonomialCurve) At(step int) (curves.Pair, error) {
	t, err := mc.param(step)
	if err != nil {
		return curves.Origin, err
	}
	return curves.P(mc.px.Eval(t), mc.py.Eval(t)), nil
}
