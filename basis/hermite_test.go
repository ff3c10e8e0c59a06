package basis

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/curves"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestHermiteEnds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h00, h10, h01, h11 := Hermite(0)
	assert.Equal(t, []float64{1, 0, 0, 0}, []float64{h00, h10, h01, h11})
	h00, h10, h01, h11 = Hermite(1)
	assert.Equal(t, []float64{0, 0, 1, 0}, []float64{h00, h10, h01, h11})
	h00, h10, h01, h11 = Hermite(0.5)
	assert.Equal(t, []float64{0.5, 0.125, 0.5, -0.125}, []float64{h00, h10, h01, h11})
}

func TestHermiteBlend(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p0, p1 := curves.P(0, 0), curves.P(1, 0)
	m0, m1 := curves.P(0, 1), curves.P(0, -1)
	assert.Equal(t, p0, HermiteBlend(0, p0, m0, p1, m1))
	assert.Equal(t, p1, HermiteBlend(1, p0, m0, p1, m1))
	assert.Equal(t, curves.P(0.5, 0.25), HermiteBlend(0.5, p0, m0, p1, m1))
}

func TestSegment(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, u := Segment(0, 4)
	assert.Equal(t, 0, s)
	assert.Equal(t, 0.0, u)
	s, u = Segment(0.5, 4)
	assert.Equal(t, 1, s)
	assert.Equal(t, 0.5, u)
	s, u = Segment(1, 4)
	assert.Equal(t, 2, s)
	assert.Equal(t, 1.0, u)
	s, u = Segment(1, 2)
	assert.Equal(t, 0, s)
	assert.Equal(t, 1.0, u)
}

func TestCardinalTangents(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points := []curves.Pair{curves.P(0, 0), curves.P(1, 2), curves.P(2, 0), curves.P(4, 0)}
	want := []curves.Pair{curves.P(1, 2), curves.P(1, 0), curves.P(1.5, -1), curves.P(2, 0)}
	if diff := cmp.Diff(want, CardinalTangents(points, 0)); diff != "" {
		t.Errorf("Catmull-Rom tangents mismatch (-want +got):\n%s", diff)
	}
	half := CardinalTangents(points, 0.5)
	assert.Equal(t, curves.P(0.5, 1), half[0])
	assert.Equal(t, curves.P(0.5, 0), half[1])
}
