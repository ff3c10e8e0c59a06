/*
Package curves computes points along parametric curves, given a small set of
control points. Supported interpolation families are Lagrange polynomials,
monomial-basis polynomials, cardinal (Catmull-Rom) splines, cubic Hermite
splines and B-splines.

Clients build a set of control points, each tagged with its parameter value t.i,
and wrap it into a curve specification:

	cps := NoControls().Knot(P(0, 0), 0).Knot(P(1, 2), 0.5).Knot(P(2, 0), 1)
	spec, err := NewSpec(Lagrange, cps, 3)

Package eval turns a spec into an Evaluator, which has to be built once and may
then be asked for the curve point at any step 0 ≤ step < num_steps:

	ev, err := eval.New(spec)
	err = ev.Build()
	pt, err := ev.At(1)  // ≈ (1,2)

The mathematics of the basis functions lives in package basis, power-basis
polynomials in package polyn. Rendering is not a concern of this module;
package polygon offers some help for clients handing sampled curves to a
renderer.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curves

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'curves'
func tracer() tracing.Trace {
	return tracing.Select("curves")
}
