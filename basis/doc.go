// Package basis computes basis weights and blending functions for the
// interpolation families of package curves.
//
// All functions are pure: they depend on their arguments only and may be
// called concurrently.
package basis

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'curves'
func tracer() tracing.Trace {
	return tracing.Select("curves")
}
