package render

import (
	"math"

	"github.com/soypat/eurorack"
	"github.com/soypat/eurorack/internal/d2"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	dxfOutlineLayer = "EDGE_CUTS"
	dxfHoleLayer    = "NPTH"
)

// CreateDXF writes doc as a DXF drawing at path. DXF is Y-up so document
// coordinates are mirrored about the X axis.
func CreateDXF(path string, doc *eurorack.Document) error {
	d := dxf.NewDrawing()
	if _, err := d.AddLayer(dxfOutlineLayer, dxf.DefaultColor, dxf.DefaultLineType, false); err != nil {
		return err
	}
	if _, err := d.AddLayer(dxfHoleLayer, color.Red, dxf.DefaultLineType, false); err != nil {
		return err
	}
	if err := d.ChangeLayer(dxfOutlineLayer); err != nil {
		return err
	}
	for _, s := range doc.Shapes {
		if err := dxfShape(d, s); err != nil {
			return err
		}
	}
	if err := d.ChangeLayer(dxfHoleLayer); err != nil {
		return err
	}
	for _, fp := range doc.Footprints {
		for _, p := range fp.Pads {
			if err := dxfPad(d, p); err != nil {
				return err
			}
		}
	}
	return d.SaveAs(path)
}

// dxfFrame maps document coordinates to the Y-up DXF frame.
var dxfFrame = d2.Scaling(r2.Vec{X: 1, Y: -1})

func flipY(v r2.Vec) r2.Vec { return dxfFrame.ApplyPos(v) }

func dxfShape(d *drawing.Drawing, s eurorack.Shape) (err error) {
	switch s.Kind {
	case eurorack.ShapeSegment:
		a, b := flipY(s.Start), flipY(s.End)
		_, err = d.Line(a.X, a.Y, 0, b.X, b.Y, 0)
	case eurorack.ShapeArc:
		c := flipY(s.Center)
		// Mirroring negates angles. DXF arcs always run counter clockwise.
		start, end := startAngle(s), startAngle(s)+s.Angle
		if dxfFrame.Mirrors() {
			start, end = -start, -end
		}
		if end < start {
			start, end = end, start
		}
		_, err = d.Arc(c.X, c.Y, 0, s.Radius(), normDeg(start), normDeg(end))
	}
	return err
}

func dxfPad(d *drawing.Drawing, p eurorack.Pad) error {
	st := padStadium(p)
	c := flipY(st.center)
	if st.l == 0 {
		_, err := d.Circle(c.X, c.Y, 0, st.r)
		return err
	}
	a, b := st.ends()
	a, b = flipY(a), flipY(b)
	r := st.r
	var err error
	if st.vert {
		// a is above b once mirrored.
		if _, err = d.Line(a.X-r, a.Y, 0, b.X-r, b.Y, 0); err != nil {
			return err
		}
		if _, err = d.Line(a.X+r, a.Y, 0, b.X+r, b.Y, 0); err != nil {
			return err
		}
		if _, err = d.Arc(a.X, a.Y, 0, r, 0, 180); err != nil {
			return err
		}
		_, err = d.Arc(b.X, b.Y, 0, r, 180, 360)
		return err
	}
	if _, err = d.Line(a.X, a.Y+r, 0, b.X, b.Y+r, 0); err != nil {
		return err
	}
	if _, err = d.Line(a.X, a.Y-r, 0, b.X, b.Y-r, 0); err != nil {
		return err
	}
	if _, err = d.Arc(b.X, b.Y, 0, r, 270, 90); err != nil {
		return err
	}
	_, err = d.Arc(a.X, a.Y, 0, r, 90, 270)
	return err
}

// normDeg maps a in degrees to [0, 360).
func normDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
