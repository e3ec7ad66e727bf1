package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo/float"
	"github.com/soypat/eurorack"
)

const (
	svgOutlineStyle = "fill:none;stroke:black;stroke-linecap:round"
	svgHoleStyle    = "fill:none;stroke:red;stroke-width:0.1"
)

// WriteSVG writes doc as an SVG drawing in millimetres. The viewBox is the
// document bounds plus a margin so coordinates are written unchanged.
func WriteSVG(w io.Writer, doc *eurorack.Document) error {
	ew := &errWriter{w: w}
	bb := drawingBox(doc)
	sz := bb.Size()
	canvas := svg.New(ew)
	canvas.Decimals = 4
	canvas.StartviewUnit(sz.X, sz.Y, "mm", bb.Min.X, bb.Min.Y, sz.X, sz.Y)
	canvas.Title("eurorack outline")

	if len(doc.Shapes) > 0 {
		canvas.Gstyle(fmt.Sprintf("%s;stroke-width:%s", svgOutlineStyle, mm(doc.Shapes[0].Width)))
		for _, s := range doc.Shapes {
			switch s.Kind {
			case eurorack.ShapeSegment:
				canvas.Line(s.Start.X, s.Start.Y, s.End.X, s.End.Y)
			case eurorack.ShapeArc:
				end := s.ArcEnd()
				canvas.Arc(s.Start.X, s.Start.Y, s.Radius(), s.Radius(), 0,
					math.Abs(s.Angle) > 180, s.Angle > 0, end.X, end.Y)
			}
		}
		canvas.Gend()
	}

	if len(doc.Footprints) > 0 {
		canvas.Gstyle(svgHoleStyle)
		for _, fp := range doc.Footprints {
			for _, p := range fp.Pads {
				st := padStadium(p)
				if st.l == 0 {
					canvas.Circle(st.center.X, st.center.Y, st.r)
					continue
				}
				canvas.Path(stadiumPath(st))
			}
		}
		canvas.Gend()
	}
	canvas.End()
	return ew.err
}

// stadiumPath returns SVG path data tracing the outline of st.
func stadiumPath(st stadium) string {
	a, b := st.ends()
	r := st.r
	if st.vert {
		return fmt.Sprintf("M%s,%s L%s,%s A%s,%s 0 0 1 %s,%s L%s,%s A%s,%s 0 0 1 %s,%s Z",
			mm(a.X+r), mm(a.Y), mm(b.X+r), mm(b.Y),
			mm(r), mm(r), mm(b.X-r), mm(b.Y),
			mm(a.X-r), mm(a.Y),
			mm(r), mm(r), mm(a.X+r), mm(a.Y),
		)
	}
	return fmt.Sprintf("M%s,%s L%s,%s A%s,%s 0 0 1 %s,%s L%s,%s A%s,%s 0 0 1 %s,%s Z",
		mm(a.X), mm(a.Y-r), mm(b.X), mm(b.Y-r),
		mm(r), mm(r), mm(b.X), mm(b.Y+r),
		mm(a.X), mm(a.Y+r),
		mm(r), mm(r), mm(a.X), mm(a.Y-r),
	)
}
