package eurorack

import (
	"math"

	"github.com/soypat/eurorack/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Corner indexes the four corners of a board.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top left"
	case TopRight:
		return "top right"
	case BottomLeft:
		return "bottom left"
	case BottomRight:
		return "bottom right"
	default:
		return "unknown corner"
	}
}

// cornerStartAngle is the start angle in degrees of each corner arc.
var cornerStartAngle = [4]float64{
	TopLeft:     -90,
	TopRight:    0,
	BottomLeft:  180,
	BottomRight: 90,
}

// ArcSweep is the sweep of every corner arc in degrees.
const ArcSweep = -90.0

// Segment is a straight outline edge.
type Segment struct {
	Start, End r2.Vec
}

// Arc is a quarter circle outline corner.
type Arc struct {
	Center r2.Vec
	Radius float64
	// StartAngle is in degrees.
	StartAngle float64
}

// Start returns the point the arc starts at.
func (a Arc) Start() r2.Vec {
	p := d2.Pol{R: a.Radius, Theta: d2.DtoR(a.StartAngle)}
	return r2.Add(a.Center, p.PolarToCartesian())
}

// End returns the point the arc ends at after sweeping ArcSweep degrees.
func (a Arc) End() r2.Vec {
	return r2.Add(a.Center, d2.Rotate(r2.Sub(a.Start(), a.Center), ArcSweep))
}

// Outline is a rounded rectangle made of four edges and four corner arcs.
// Segments are ordered top, bottom, left, right. Arcs are ordered by Corner.
type Outline struct {
	Segments [4]Segment
	Arcs     [4]Arc
}

// RoundedRect returns the outline of a w×h rectangle with corner radius r
// and its top left corner at the origin.
//
// Radius is not validated. With r <= 0 or r larger than half of w or h the
// edges cross and the arcs invert, but the formulas are still followed and
// the shapes still join end to end.
func RoundedRect(w, h, r float64) Outline {
	return Outline{
		Segments: [4]Segment{
			{r2.Vec{X: r, Y: 0}, r2.Vec{X: w - r, Y: 0}},
			{r2.Vec{X: r, Y: h}, r2.Vec{X: w - r, Y: h}},
			{r2.Vec{X: 0, Y: r}, r2.Vec{X: 0, Y: h - r}},
			{r2.Vec{X: w, Y: r}, r2.Vec{X: w, Y: h - r}},
		},
		Arcs: [4]Arc{
			TopLeft:     {Center: r2.Vec{X: r, Y: r}, Radius: r, StartAngle: cornerStartAngle[TopLeft]},
			TopRight:    {Center: r2.Vec{X: w - r, Y: r}, Radius: r, StartAngle: cornerStartAngle[TopRight]},
			BottomLeft:  {Center: r2.Vec{X: r, Y: h - r}, Radius: r, StartAngle: cornerStartAngle[BottomLeft]},
			BottomRight: {Center: r2.Vec{X: w - r, Y: h - r}, Radius: r, StartAngle: cornerStartAngle[BottomRight]},
		},
	}
}

// Translate returns the outline moved by v.
func (o Outline) Translate(v r2.Vec) Outline {
	for i := range o.Segments {
		o.Segments[i].Start = r2.Add(o.Segments[i].Start, v)
		o.Segments[i].End = r2.Add(o.Segments[i].End, v)
	}
	for i := range o.Arcs {
		o.Arcs[i].Center = r2.Add(o.Arcs[i].Center, v)
	}
	return o
}

// Shapes returns the outline as edge cut shapes, segments first.
func (o Outline) Shapes() []Shape {
	shapes := make([]Shape, 0, len(o.Segments)+len(o.Arcs))
	for _, s := range o.Segments {
		shapes = append(shapes, Shape{
			Kind:  ShapeSegment,
			Start: s.Start,
			End:   s.End,
			Layer: EdgeCuts,
			Width: OutlineWidth,
		})
	}
	for _, a := range o.Arcs {
		shapes = append(shapes, Shape{
			Kind:   ShapeArc,
			Start:  a.Start(),
			Center: a.Center,
			Angle:  ArcSweep,
			Layer:  EdgeCuts,
			Width:  OutlineWidth,
		})
	}
	return shapes
}

// arcJoints pairs every arc endpoint with the segment endpoint it meets.
// Arc start/end per corner: TL top.Start/left.Start, TR right.Start/top.End,
// BL left.End/bottom.Start, BR bottom.End/right.End.
var arcJoints = [4][2]struct{ seg, end int }{
	TopLeft:     {{0, 0}, {2, 0}},
	TopRight:    {{3, 0}, {0, 1}},
	BottomLeft:  {{2, 1}, {1, 0}},
	BottomRight: {{1, 1}, {3, 1}},
}

// Gaps returns the largest distance between an arc endpoint and the segment
// endpoint it joins. It is zero, up to rounding, for every outline built by
// RoundedRect.
func (o Outline) Gaps() float64 {
	var gap float64
	for c, a := range o.Arcs {
		ends := [2]r2.Vec{a.Start(), a.End()}
		for i, j := range arcJoints[c] {
			s := o.Segments[j.seg]
			p := s.Start
			if j.end == 1 {
				p = s.End
			}
			gap = math.Max(gap, r2.Norm(r2.Sub(ends[i], p)))
		}
	}
	return gap
}
