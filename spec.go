package curves

import "fmt"

// Family selects an interpolation family.
type Family int8

// Interpolation families.
const (
	Lagrange Family = iota // Lagrange polynomial through all control points
	Monomial               // power-basis polynomial through the first k control points
	Cardinal               // cardinal (Catmull-Rom) spline
	Hermite                // cubic Hermite spline with explicit tangents
	BSpline                // B-spline of order k
)

func (f Family) String() string {
	switch f {
	case Lagrange:
		return "Lagrange"
	case Monomial:
		return "Monomial"
	case Cardinal:
		return "CSPL"
	case Hermite:
		return "CHSPL"
	case BSpline:
		return "BSPL"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// KnotConvention selects how a B-spline knot vector is derived if the client
// does not provide one.
type KnotConvention int8

const (
	// ClampedKnots repeats the end knots k times, letting the curve interpolate
	// the first and last control point.
	ClampedKnots KnotConvention = iota
	// UniformKnots spreads n+k knots evenly over [0,1].
	UniformKnots
)

func (kc KnotConvention) String() string {
	if kc == UniformKnots {
		return "uniform"
	}
	return "clamped"
}

// CurveSpec is an immutable description of a curve: control points, parameter
// sequence, number of steps and the family-specific data. Create it with
// NewSpec.
type CurveSpec struct {
	family   Family
	controls *ControlPoints
	steps    int
	order    int            // k for monomial and B-spline curves
	tangents []Pair         // m.i for Hermite curves
	knots    []float64      // explicit B-spline knots, may be nil
	kconv    KnotConvention // used if knots is nil
	tension  float64        // cardinal spline tension
}

// Option configures family-specific properties of a CurveSpec.
type Option func(*CurveSpec)

// WithOrder sets the order k (degree + 1) for monomial and B-spline curves.
// Monomial curves default to k = n, B-splines to k = min(4, n).
func WithOrder(k int) Option {
	return func(spec *CurveSpec) {
		spec.order = k
	}
}

// WithTangents sets the tangent vectors for a Hermite curve, one per control
// point. Overrides tangents set on the control points.
func WithTangents(ms ...Pair) Option {
	return func(spec *CurveSpec) {
		spec.tangents = append([]Pair(nil), ms...)
	}
}

// WithKnotConvention selects the derived knot vector of a B-spline curve.
func WithKnotConvention(kc KnotConvention) Option {
	return func(spec *CurveSpec) {
		spec.kconv = kc
	}
}

// WithKnots sets an explicit B-spline knot vector of length n+k.
func WithKnots(knots ...float64) Option {
	return func(spec *CurveSpec) {
		spec.knots = append([]float64(nil), knots...)
	}
}

// WithTension sets the tension c of a cardinal spline. Tangents are scaled
// by (1-c); c = 0 yields a Catmull-Rom spline.
func WithTension(c float64) Option {
	return func(spec *CurveSpec) {
		spec.tension = c
	}
}

// NewSpec creates a curve specification for a family, a set of control points
// and a total number of steps. The control points are copied.
func NewSpec(family Family, cps *ControlPoints, steps int, opts ...Option) (*CurveSpec, error) {
	if cps.N() < 2 {
		return nil, fmt.Errorf("%w: need at least 2, got %d", ErrTooFewPoints, cps.N())
	}
	spec := &CurveSpec{
		family:   family,
		controls: cps.clone(),
		steps:    steps,
	}
	n := spec.N()
	switch family {
	case Monomial:
		spec.order = n
	case BSpline:
		spec.order = min(4, n)
	}
	for _, opt := range opts {
		opt(spec)
	}
	if err := spec.validate(); err != nil {
		tracer().Errorf("invalid %s curve spec: %v", family, err)
		return nil, err
	}
	tracer().Debugf("created %s curve spec with %d control points, %d steps", family, n, steps)
	return spec, nil
}

func (spec *CurveSpec) validate() error {
	n := spec.N()
	if spec.steps < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidStepCount, spec.steps)
	}
	if len(spec.controls.ts) != n {
		return fmt.Errorf("%w: %d control points, but %d parameter values",
			ErrDimensionMismatch, n, len(spec.controls.ts))
	}
	for i := 0; i < n; i++ {
		if !spec.Z(i).IsFinite() || !IsFinite(spec.T(i)) {
			return fmt.Errorf("%w at control point %d", ErrInvalidCoordinate, i)
		}
	}
	switch spec.family {
	case Lagrange, Cardinal:
		return nil
	case Monomial:
		return spec.validateOrder()
	case Hermite:
		return spec.validateTangents()
	case BSpline:
		if err := spec.validateOrder(); err != nil {
			return err
		}
		return spec.validateKnots()
	}
	return fmt.Errorf("%w: %s", ErrUnknownFamily, spec.family)
}

func (spec *CurveSpec) validateOrder() error {
	if spec.order < 1 || spec.order > spec.N() {
		return fmt.Errorf("%w: k = %d, must be in [1,%d]", ErrInvalidOrder, spec.order, spec.N())
	}
	return nil
}

func (spec *CurveSpec) validateTangents() error {
	if spec.tangents == nil {
		if spec.controls.TangentCount() != spec.N() {
			return fmt.Errorf("%w: %d control points, but %d tangents",
				ErrDimensionMismatch, spec.N(), spec.controls.TangentCount())
		}
		spec.tangents = make([]Pair, spec.N())
		for i := range spec.tangents {
			spec.tangents[i] = spec.controls.Tangent(i)
		}
	}
	if len(spec.tangents) != spec.N() {
		return fmt.Errorf("%w: %d control points, but %d tangents",
			ErrDimensionMismatch, spec.N(), len(spec.tangents))
	}
	for i, m := range spec.tangents {
		if !m.IsFinite() {
			return fmt.Errorf("%w: tangent at control point %d", ErrInvalidCoordinate, i)
		}
	}
	return nil
}

func (spec *CurveSpec) validateKnots() error {
	if spec.knots == nil {
		return nil
	}
	n, k := spec.N(), spec.order
	if len(spec.knots) != n+k {
		return fmt.Errorf("%w: need %d knots, got %d", ErrDimensionMismatch, n+k, len(spec.knots))
	}
	for i, u := range spec.knots {
		if !IsFinite(u) {
			return fmt.Errorf("%w: knot %d is %g", ErrInvalidKnots, i, u)
		}
		if i > 0 && u < spec.knots[i-1] {
			return fmt.Errorf("%w: knots decrease at position %d", ErrInvalidKnots, i)
		}
	}
	if spec.knots[k-1] >= spec.knots[n] {
		return fmt.Errorf("%w: empty domain [%g,%g]", ErrInvalidKnots, spec.knots[k-1], spec.knots[n])
	}
	return nil
}

// Family returns the interpolation family of the curve.
func (spec *CurveSpec) Family() Family {
	return spec.family
}

// N returns the number of control points.
func (spec *CurveSpec) N() int {
	return spec.controls.N()
}

// Z returns control point i.
func (spec *CurveSpec) Z(i int) Pair {
	return spec.controls.Z(i)
}

// T returns the parameter value t.i.
func (spec *CurveSpec) T(i int) float64 {
	return spec.controls.T(i)
}

// Params returns a copy of the parameter sequence.
func (spec *CurveSpec) Params() []float64 {
	return spec.controls.Params()
}

// Points returns a copy of the control points.
func (spec *CurveSpec) Points() []Pair {
	return spec.controls.Points()
}

// XY returns parallel slices of the control points' x- and y-coordinates.
func (spec *CurveSpec) XY() ([]float64, []float64) {
	return spec.controls.XY()
}

// Steps returns the total number of steps num_steps.
func (spec *CurveSpec) Steps() int {
	return spec.steps
}

// Order returns the order k of monomial and B-spline curves, 0 for other families.
func (spec *CurveSpec) Order() int {
	return spec.order
}

// Tangents returns a copy of the tangent vectors of a Hermite curve.
func (spec *CurveSpec) Tangents() []Pair {
	return append([]Pair(nil), spec.tangents...)
}

// Knots returns a copy of the explicit knot vector, or nil if the knot
// vector is to be derived by the knot convention.
func (spec *CurveSpec) Knots() []float64 {
	if spec.knots == nil {
		return nil
	}
	return append([]float64(nil), spec.knots...)
}

// KnotConvention returns the convention for derived B-spline knot vectors.
func (spec *CurveSpec) KnotConvention() KnotConvention {
	return spec.kconv
}

// Tension returns the tension of a cardinal spline.
func (spec *CurveSpec) Tension() float64 {
	return spec.tension
}
