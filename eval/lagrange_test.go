package eval

import (
	"errors"
	"testing"

	"github.com/npillmayer/curves"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestLagrangeArch(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ev := mustBuild(t, mustSpec(t, curves.Lagrange, arch(), 3))
	assert.Equal(t, curves.P(0, 0), mustAt(t, ev, 0))
	assertNear(t, curves.P(1, 2), mustAt(t, ev, 1))
	assert.Equal(t, curves.P(2, 0), mustAt(t, ev, 2))
}

func TestLagrangeTwoPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cps := curves.NoControls().Knot(curves.P(1, 5), 0).Knot(curves.P(-2, 3), 1)
	ev := mustBuild(t, mustSpec(t, curves.Lagrange, cps, 2))
	points, err := curves.Sample(ev, 1)
	assert.NoError(t, err)
	assert.Equal(t, []curves.Pair{curves.P(1, 5), curves.P(-2, 3)}, points)
}

func TestLagrangeBasisSumsToOne(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cps := curves.NoControls().Knot(curves.P(0, 0), 0).Knot(curves.P(1, 3), 0.1).
		Knot(curves.P(2, -1), 0.45).Knot(curves.P(3, 0), 1)
	lc, err := NewLagrange(mustSpec(t, curves.Lagrange, cps, 21))
	assert.NoError(t, err)
	assert.NoError(t, lc.Build())
	for step := 0; step < 21; step++ {
		w, err := lc.Basis(step)
		assert.NoError(t, err)
		sum := 0.0
		for _, wi := range w {
			sum += wi
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "step %d", step)
	}
}

func TestLagrangeCoincidingParams(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cps := curves.NoControls().Knot(curves.P(0, 0), 0).Knot(curves.P(1, 2), 1).Knot(curves.P(2, 0), 1)
	ev, err := New(mustSpec(t, curves.Lagrange, cps, 3))
	assert.NoError(t, err)
	if err = ev.Build(); !errors.Is(err, curves.ErrSingularSystem) {
		t.Errorf("expected singular system, got %v", err)
	}
	_, err = ev.At(0)
	assert.True(t, errors.Is(err, curves.ErrNotBuilt))
}
