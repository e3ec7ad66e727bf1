package eurorack

import (
	"github.com/soypat/eurorack/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Board is the host document generated shapes are inserted into. The
// generator is its only writer while Generate runs.
type Board interface {
	// AddShape appends a graphic shape.
	AddShape(s Shape)
	// AddFootprint appends a footprint carrying its pads.
	AddFootprint(f Footprint)
	// Refresh is called once after all insertions.
	Refresh()
}

// Layer identifies a board layer.
type Layer int

const (
	// EdgeCuts is the board outline layer.
	EdgeCuts Layer = iota
)

func (l Layer) String() string {
	switch l {
	case EdgeCuts:
		return "Edge.Cuts"
	default:
		return "Unknown"
	}
}

// ShapeKind is the geometry of a Shape.
type ShapeKind int

const (
	ShapeSegment ShapeKind = iota
	ShapeArc
)

// Shape is a stroked line segment or circular arc.
type Shape struct {
	Kind ShapeKind
	// Start and End are the endpoints of a segment. For an arc Start is
	// the arc start point and End is unused.
	Start, End r2.Vec
	// Center is the arc center.
	Center r2.Vec
	// Angle is the arc sweep in degrees.
	Angle float64
	Layer Layer
	Width float64
}

// ArcEnd returns the point where an arc shape ends.
func (s Shape) ArcEnd() r2.Vec {
	return r2.Add(s.Center, d2.Rotate(r2.Sub(s.Start, s.Center), s.Angle))
}

// ArcMid returns the point halfway along an arc shape.
func (s Shape) ArcMid() r2.Vec {
	return r2.Add(s.Center, d2.Rotate(r2.Sub(s.Start, s.Center), s.Angle/2))
}

// Radius returns the distance from an arc's center to its start.
func (s Shape) Radius() float64 {
	return r2.Norm(r2.Sub(s.Start, s.Center))
}

// PadShape is the copper/drill shape of a pad.
type PadShape int

const (
	PadOval PadShape = iota
	PadCircle
)

// PadAttr is the electrical attribute of a pad.
type PadAttr int

const (
	// PadNPTH is a non-plated through hole with no electrical function.
	PadNPTH PadAttr = iota
	PadPTH
)

// Pad is a single drilled pad in document coordinates.
type Pad struct {
	Position r2.Vec
	// Size is the pad extent: X is the oval length, Y its width.
	Size  r2.Vec
	Drill r2.Vec
	Shape PadShape
	Attr  PadAttr
}

// Footprint is a carrier for pads placed at Position.
type Footprint struct {
	Position r2.Vec
	Pads     []Pad
}

// Document is an in-memory Board.
type Document struct {
	Shapes     []Shape
	Footprints []Footprint
	// Refreshes counts calls to Refresh.
	Refreshes int
}

var _ Board = (*Document)(nil)

// AddShape implements Board.
func (d *Document) AddShape(s Shape) { d.Shapes = append(d.Shapes, s) }

// AddFootprint implements Board.
func (d *Document) AddFootprint(f Footprint) { d.Footprints = append(d.Footprints, f) }

// Refresh implements Board.
func (d *Document) Refresh() { d.Refreshes++ }

// Bounds returns the box enclosing every shape and pad of the document.
// Arcs contribute their endpoints and midpoint. An empty document returns an
// empty box.
func (d *Document) Bounds() r2.Box {
	bb := d2.EmptyBox()
	for _, s := range d.Shapes {
		switch s.Kind {
		case ShapeSegment:
			bb = bb.Include(s.Start).Include(s.End)
		case ShapeArc:
			bb = bb.Include(s.Start).Include(s.ArcEnd()).Include(s.ArcMid())
		}
	}
	for _, f := range d.Footprints {
		for _, p := range f.Pads {
			bb = bb.Extend(d2.NewBox2(p.Position, p.Size))
		}
	}
	if bb.Empty() {
		return r2.Box{}
	}
	return r2.Box(bb)
}
