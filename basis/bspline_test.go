package basis

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/curves"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestClampedKnots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	want := []float64{0, 0, 0, 0.5, 1, 1, 1}
	if diff := cmp.Diff(want, ClampedKnots(4, 3)); diff != "" {
		t.Errorf("knots mismatch (-want +got):\n%s", diff)
	}
	want = []float64{0, 0, 0, 0, 1, 1, 1, 1}
	if diff := cmp.Diff(want, ClampedKnots(4, 4)); diff != "" {
		t.Errorf("knots mismatch (-want +got):\n%s", diff)
	}
}

func TestUniformKnots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	if diff := cmp.Diff(want, UniformKnots(3, 2)); diff != "" {
		t.Errorf("knots mismatch (-want +got):\n%s", diff)
	}
	lo, hi := Domain(UniformKnots(3, 2), 2)
	assert.Equal(t, 0.25, lo)
	assert.Equal(t, 0.75, hi)
}

func checkPartitionOfUnity(t *testing.T, knots []float64, k int) {
	t.Helper()
	lo, hi := Domain(knots, k)
	for i := 0; i <= 40; i++ {
		x := lo + float64(i)/40*(hi-lo)
		if i == 40 {
			x = hi
		}
		w := CoxDeBoor(x, knots, k)
		assert.Len(t, w, len(knots)-k)
		assert.InDelta(t, 1.0, Sum(w), 1e-9, "knots = %v, t = %g", knots, x)
		for j, wj := range w {
			assert.GreaterOrEqual(t, wj, 0.0, "N.%d(%g) negative", j, x)
		}
	}
}

func TestCoxDeBoorPartitionOfUnity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for n := 2; n <= 7; n++ {
		for k := 1; k <= n; k++ {
			checkPartitionOfUnity(t, ClampedKnots(n, k), k)
			checkPartitionOfUnity(t, UniformKnots(n, k), k)
		}
	}
	checkPartitionOfUnity(t, []float64{0, 0, 0, 0.2, 0.2, 0.9, 1, 1, 1}, 3)
}

func TestCoxDeBoorBezier(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	knots := ClampedKnots(4, 4)
	want := []float64{0.125, 0.375, 0.375, 0.125}
	if diff := cmp.Diff(want, CoxDeBoor(0.5, knots, 4), approx); diff != "" {
		t.Errorf("Bernstein weights mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{1, 0, 0, 0}, CoxDeBoor(0, knots, 4)); diff != "" {
		t.Errorf("weights at 0 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0, 0, 0, 1}, CoxDeBoor(1, knots, 4)); diff != "" {
		t.Errorf("weights at 1 mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckKnots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.NoError(t, CheckKnots(ClampedKnots(5, 3), 5, 3))
	if err := CheckKnots(nil, 3, 4); !errors.Is(err, curves.ErrInvalidOrder) {
		t.Errorf("expected invalid order, got %v", err)
	}
	if err := CheckKnots(nil, 3, 0); !errors.Is(err, curves.ErrInvalidOrder) {
		t.Errorf("expected invalid order, got %v", err)
	}
	if err := CheckKnots([]float64{0, 1}, 3, 2); !errors.Is(err, curves.ErrDimensionMismatch) {
		t.Errorf("expected dimension mismatch, got %v", err)
	}
	if err := CheckKnots([]float64{0, 0.5, 0.4, 1, 1}, 3, 2); !errors.Is(err, curves.ErrInvalidKnots) {
		t.Errorf("expected invalid knots, got %v", err)
	}
}
