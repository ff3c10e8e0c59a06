/*
Package eval implements curve evaluators, one for each interpolation family
of package curves.

Every evaluator is created from a curves.CurveSpec, has to be built once and
may then be evaluated at any step:

	ev, err := eval.New(spec)
	if err != nil { ... }
	if err = ev.Build(); err != nil { ... }
	for step := 0; step < ev.Steps(); step++ {
		pt, _ := ev.At(step)
		...
	}

Evaluators copy what they need from the spec and never change after Build
has returned; At is a pure function of its step argument.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package eval

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}
