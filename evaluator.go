package curves

import (
	"fmt"

	"github.com/remeh/sizedwaitgroup"
)

// Evaluator computes points along a curve. Implementations for the various
// families live in package eval.
//
// Build has to be called exactly once before any call to At. Build is not
// safe for concurrent use; after it has returned, At may be called
// concurrently for different (or equal) steps.
type Evaluator interface {
	Build() error              // one-time precomputation
	At(step int) (Pair, error) // point at step 0 ≤ step < Steps()
	Steps() int                // total number of steps
	Family() Family            // interpolation family
	Drawable() bool            // hint for renderers: curve may be drawn directly
}

// StepParam maps a step to the normalized curve parameter t = step/(steps-1).
// Step 0 maps to t = 0, the final step to t = 1.
func StepParam(step, steps int) (float64, error) {
	if steps < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidStepCount, steps)
	}
	if step < 0 || step >= steps {
		return 0, fmt.Errorf("%w: step %d not in [0,%d)", ErrInvalidStep, step, steps)
	}
	if step == steps-1 {
		return 1, nil
	}
	return float64(step) / float64(steps-1), nil
}

// Sample evaluates a built curve at every step and returns the points in
// step order. With workers > 1 steps are evaluated in parallel by at most
// that many goroutines. If evaluation fails, the error of the lowest failing
// step is returned and no points are delivered.
func Sample(ev Evaluator, workers int) ([]Pair, error) {
	steps := ev.Steps()
	points := make([]Pair, steps)
	if workers <= 1 {
		for step := 0; step < steps; step++ {
			pt, err := ev.At(step)
			if err != nil {
				return nil, err
			}
			points[step] = pt
		}
		return points, nil
	}
	errs := make([]error, steps)
	swg := sizedwaitgroup.New(workers)
	for step := 0; step < steps; step++ {
		swg.Add()
		go func(step int) {
			defer swg.Done()
			points[step], errs[step] = ev.At(step)
		}(step)
	}
	swg.Wait()
	for _, err := range errs {
		if err != nil {
			tracer().Errorf("sampling %s curve failed: %v", ev.Family(), err)
			return nil, err
		}
	}
	tracer().Debugf("sampled %d points of %s curve with %d workers", steps, ev.Family(), workers)
	return points, nil
}
