package curves

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func threePoints() *ControlPoints {
	return NoControls().Knot(P(0, 0), 0).Knot(P(1, 2), 0.5).Knot(P(2, 0), 1)
}

func TestNewSpec(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	spec, err := NewSpec(Lagrange, threePoints(), 3)
	assert.NoError(t, err)
	assert.Equal(t, Lagrange, spec.Family())
	assert.Equal(t, 3, spec.N())
	assert.Equal(t, 3, spec.Steps())
	assert.Equal(t, []float64{0, 0.5, 1}, spec.Params())
}

func TestSpecDefaults(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	spec, err := NewSpec(Monomial, threePoints(), 10)
	assert.NoError(t, err)
	assert.Equal(t, 3, spec.Order())
	spec, err = NewSpec(BSpline, threePoints(), 10)
	assert.NoError(t, err)
	assert.Equal(t, 3, spec.Order())
	assert.Equal(t, ClampedKnots, spec.KnotConvention())
	assert.Nil(t, spec.Knots())
	spec, err = NewSpec(Cardinal, threePoints(), 10, WithTension(0.5))
	assert.NoError(t, err)
	assert.Equal(t, 0.5, spec.Tension())
}

func TestSpecIsSnapshot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cps := threePoints()
	spec, err := NewSpec(Lagrange, cps, 3)
	assert.NoError(t, err)
	cps.Knot(P(5, 5), 2)
	assert.Equal(t, 3, spec.N())
}

func TestSpecErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	onePoint := NoControls().Knot(P(0, 0), 0)
	nanPoint := NoControls().Knot(P(0, 0), 0).Knot(P(math.NaN(), 1), 1)
	tests := []struct {
		name   string
		family Family
		cps    *ControlPoints
		steps  int
		opts   []Option
		want   error
	}{
		{"nil controls", Lagrange, nil, 3, nil, ErrTooFewPoints},
		{"one point", Lagrange, onePoint, 3, nil, ErrTooFewPoints},
		{"one step", Lagrange, threePoints(), 1, nil, ErrInvalidStepCount},
		{"NaN point", Cardinal, nanPoint, 3, nil, ErrInvalidCoordinate},
		{"monomial order 0", Monomial, threePoints(), 3, []Option{WithOrder(0)}, ErrInvalidOrder},
		{"B-spline order 4 of 3", BSpline, threePoints(), 3, []Option{WithOrder(4)}, ErrInvalidOrder},
		{"Hermite w/o tangents", Hermite, threePoints(), 3, nil, ErrDimensionMismatch},
		{"Hermite too few tangents", Hermite, threePoints(), 3,
			[]Option{WithTangents(P(1, 0), P(1, 0))}, ErrDimensionMismatch},
		{"knots of wrong length", BSpline, threePoints(), 3,
			[]Option{WithOrder(2), WithKnots(0, 0, 1, 1)}, ErrDimensionMismatch},
		{"decreasing knots", BSpline, threePoints(), 3,
			[]Option{WithOrder(2), WithKnots(0, 0, 0.7, 0.5, 1)}, ErrInvalidKnots},
		{"empty knot domain", BSpline, threePoints(), 3,
			[]Option{WithOrder(2), WithKnots(0, 1, 1, 1, 1)}, ErrInvalidKnots},
		{"unknown family", Family(42), threePoints(), 3, nil, ErrUnknownFamily},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSpec(tt.family, tt.cps, tt.steps, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestHermiteTangentsFromControls(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cps := NoControls().TangentKnot(P(0, 0), 0, P(1, 0)).TangentKnot(P(1, 1), 1, P(0, 1))
	spec, err := NewSpec(Hermite, cps, 5)
	assert.NoError(t, err)
	assert.Equal(t, []Pair{P(1, 0), P(0, 1)}, spec.Tangents())
	spec, err = NewSpec(Hermite, cps, 5, WithTangents(P(2, 0), P(0, 2)))
	assert.NoError(t, err)
	assert.Equal(t, []Pair{P(2, 0), P(0, 2)}, spec.Tangents())
}

func TestFamilyString(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, "CHSPL", Hermite.String())
	assert.Equal(t, "Family(42)", Family(42).String())
}
