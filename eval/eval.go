package eval

import (
	"fmt"

	"github.com/npillmayer/curves"
)

// New creates an evaluator for the family of spec. The evaluator still has
// to be built.
func New(spec *curves.CurveSpec) (curves.Evaluator, error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: cannot create evaluator", curves.ErrMissingSpec)
	}
	var ev curves.Evaluator
	var err error
	switch spec.Family() {
	case curves.Lagrange:
		ev, err = NewLagrange(spec)
	case curves.Monomial:
		ev, err = NewMonomial(spec)
	case curves.Cardinal:
		ev, err = NewCardinal(spec)
	case curves.Hermite:
		ev, err = NewHermite(spec)
	case curves.BSpline:
		ev, err = NewBSpline(spec)
	default:
		return nil, fmt.Errorf("%w: %s", curves.ErrUnknownFamily, spec.Family())
	}
	if err != nil {
		return nil, err
	}
	return ev, nil
}

// checkSpec makes sure a spec is present and describes a curve of family.
func checkSpec(spec *curves.CurveSpec, family curves.Family) error {
	if spec == nil {
		return fmt.Errorf("%w: cannot create %s curve", curves.ErrMissingSpec, family)
	}
	if spec.Family() != family {
		tracer().Errorf("%s spec passed to %s evaluator", spec.Family(), family)
		return fmt.Errorf("%w: %s spec for %s curve", curves.ErrFamilyMismatch, spec.Family(), family)
	}
	return nil
}

// Build creates and builds an evaluator for spec in one go.
func Build(spec *curves.CurveSpec) (curves.Evaluator, error) {
	ev, err := New(spec)
	if err != nil {
		return nil, err
	}
	if err = ev.Build(); err != nil {
		return nil, err
	}
	return ev, nil
}

// stepper holds the parameter handling common to all evaluators.
type stepper struct {
	family curves.Family
	steps  int
	built  bool
}

// Steps returns the total number of steps.
func (st *stepper) Steps() int {
	return st.steps
}

// Family returns the interpolation family.
func (st *stepper) Family() curves.Family {
	return st.family
}

// Drawable is false for all but the spline families.
func (st *stepper) Drawable() bool {
	return false
}

// param maps a step to the curve parameter t ∈ [0,1], checking that the
// evaluator has been built.
func (st *stepper) param(step int) (float64, error) {
	if !st.built {
		tracer().Errorf("%s curve evaluated before build", st.family)
		return 0, fmt.Errorf("%w: %s curve", curves.ErrNotBuilt, st.family)
	}
	return curves.StepParam(step, st.steps)
}
