/*
Package polygon provides polygonal views on sampled curves: polylines for
open curves and closed polygons, which may be clipped against each other.

Renderers usually do not draw curves, but polylines through sample points.
Package polygon bridges package curves to polygon clipping, which is done by
github.com/akavel/polyclip-go.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"errors"
	"fmt"
	"math/cmplx"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/curves"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to the graphics tracer.
func L() tracing.Trace {
	return tracing.Select("graphics")
}

// ErrOpenPolygon indicates an area operation on a polygon which is not closed.
var ErrOpenPolygon = errors.New("polygon is not closed")

// Polygon is a sequence of knots, connected by straight lines. A polygon is
// either open (a polyline) or cyclic. To construct a polygon, start with
// NullPolygon() and extend it.
type Polygon struct {
	points []curves.Pair
	cycle  bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder calls.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// FromPoints creates an open polygon through the given points.
func FromPoints(points []curves.Pair) *Polygon {
	pg := NullPolygon()
	for _, pt := range points {
		pg.Knot(pt)
	}
	return pg.End()
}

// FromCurve samples a built curve at every step and creates an open polygon
// through the curve points. Sampling is done by at most workers goroutines.
func FromCurve(ev curves.Evaluator, workers int) (*Polygon, error) {
	points, err := curves.Sample(ev, workers)
	if err != nil {
		return nil, err
	}
	L().Debugf("polyline for %s curve has %d knots", ev.Family(), len(points))
	return FromPoints(points), nil
}

// Box creates a rectangular cyclic polygon, given two opposite corners.
func Box(a, b curves.Pair) *Polygon {
	x0, x1 := min(a.X(), b.X()), max(a.X(), b.X())
	y0, y1 := min(a.Y(), b.Y()), max(a.Y(), b.Y())
	return NullPolygon().Knot(curves.P(x0, y0)).Knot(curves.P(x1, y0)).
		Knot(curves.P(x1, y1)).Knot(curves.P(x0, y1)).Cycle()
}

// Knot adds a knot to a polygon. Part of builder functionality.
func (pg *Polygon) Knot(p curves.Pair) *Polygon {
	pg.points = append(pg.points, p)
	return pg
}

// End an open polygon. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	return pg
}

// Cycle closes a cyclic polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// IsCycle is a predicate: is this polygon cyclic?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.points)
}

// Z returns knot i (mod N). The empty polygon has no knots and returns the origin.
func (pg *Polygon) Z(i int) curves.Pair {
	if pg.N() == 0 {
		return curves.Origin
	}
	if i < 0 || i >= pg.N() {
		i = ((i % pg.N()) + pg.N()) % pg.N()
	}
	return pg.points[i]
}

// Points returns a copy of the knots.
func (pg *Polygon) Points() []curves.Pair {
	return append([]curves.Pair(nil), pg.points...)
}

// Length returns the length of the polyline, including the closing
// line for cyclic polygons.
func (pg *Polygon) Length() float64 {
	l := 0.0
	for i := 1; i < pg.N(); i++ {
		l += cmplx.Abs((pg.points[i] - pg.points[i-1]).C())
	}
	if pg.cycle && pg.N() > 1 {
		l += cmplx.Abs((pg.points[0] - pg.points[pg.N()-1]).C())
	}
	return l
}

// BoundingBox returns the lower left and upper right corner of the
// smallest axis-aligned rectangle containing all knots.
func (pg *Polygon) BoundingBox() (curves.Pair, curves.Pair) {
	if pg.N() == 0 {
		return curves.Origin, curves.Origin
	}
	bb := pg.contour().BoundingBox()
	return curves.P(bb.Min.X, bb.Min.Y), curves.P(bb.Max.X, bb.Max.Y)
}

// Contains is a predicate: is p inside the area of a cyclic polygon?
func (pg *Polygon) Contains(p curves.Pair) (bool, error) {
	if !pg.cycle {
		return false, ErrOpenPolygon
	}
	return pg.contour().Contains(polyclip.Point{X: p.X(), Y: p.Y()}), nil
}

// Intersection clips the area of pg by the area of another cyclic polygon.
// The result may consist of several disjoint polygons.
func (pg *Polygon) Intersection(other *Polygon) ([]*Polygon, error) {
	return pg.construct(polyclip.INTERSECTION, other)
}

// Union joins the area of pg with the area of another cyclic polygon.
func (pg *Polygon) Union(other *Polygon) ([]*Polygon, error) {
	return pg.construct(polyclip.UNION, other)
}

// Difference removes the area of another cyclic polygon from pg.
func (pg *Polygon) Difference(other *Polygon) ([]*Polygon, error) {
	return pg.construct(polyclip.DIFFERENCE, other)
}

func (pg *Polygon) construct(op polyclip.Op, other *Polygon) ([]*Polygon, error) {
	if !pg.cycle || !other.cycle {
		return nil, fmt.Errorf("%w: clipping needs closed polygons", ErrOpenPolygon)
	}
	subject := polyclip.Polygon{pg.contour()}
	clipping := polyclip.Polygon{other.contour()}
	result := subject.Construct(op, clipping)
	pgs := make([]*Polygon, 0, len(result))
	for _, c := range result {
		r := NullPolygon()
		for _, pt := range c {
			r.Knot(curves.P(pt.X, pt.Y))
		}
		pgs = append(pgs, r.Cycle())
	}
	L().Debugf("clipping resulted in %d polygon(s)", len(pgs))
	return pgs, nil
}

func (pg *Polygon) contour() polyclip.Contour {
	c := make(polyclip.Contour, 0, pg.N())
	for _, pt := range pg.points {
		c.Add(polyclip.Point{X: pt.X(), Y: pt.Y()})
	}
	return c
}

// AsString returns a polygon as a (debugging) string, in a MetaFont-like
// notation:
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg *Polygon) string {
	var sb strings.Builder
	for i, pt := range pg.points {
		if i > 0 {
			sb.WriteString(" -- ")
		}
		sb.WriteString(pt.String())
	}
	if pg.cycle {
		sb.WriteString(" -- cycle")
	}
	return sb.String()
}
