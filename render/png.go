package render

import (
	"errors"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/nfnt/resize"
	"github.com/soypat/eurorack"
	"github.com/soypat/eurorack/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
)

// DefaultDPI is the preview resolution used when PNGOptions.DPI is unset.
const DefaultDPI = 150

// PNGOptions configures raster previews.
type PNGOptions struct {
	// DPI is the rasterization resolution. Zero means DefaultDPI.
	DPI int
	// Width, if positive, resamples the preview to this many pixels wide
	// keeping the aspect ratio.
	Width int
}

var (
	pngOutline = color.Black
	pngHole    = color.RGBA{R: 0xd0, G: 0x20, B: 0x20, A: 0xff}
)

// WritePNG rasterizes doc and writes it to w as a PNG image.
func WritePNG(w io.Writer, doc *eurorack.Document, opts PNGOptions) error {
	if opts.DPI < 0 || opts.Width < 0 {
		return errors.New("negative png dpi or width")
	}
	dpi := opts.DPI
	if dpi == 0 {
		dpi = DefaultDPI
	}
	bb := drawingBox(doc)
	sz := bb.Size()
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(sz.X)*vg.Millimeter, vg.Length(sz.Y)*vg.Millimeter),
		vgimg.UseDPI(dpi),
		vgimg.UseBackgroundColor(color.White),
	)
	p := newPreviewer(bb)
	onePixel := vg.Inch / vg.Length(dpi)

	c.SetColor(pngOutline)
	for _, s := range doc.Shapes {
		c.SetLineWidth(vg.Length(math.Max(float64(vg.Length(s.Width)*vg.Millimeter), float64(onePixel))))
		c.Stroke(p.shapePath(s))
	}
	c.SetColor(pngHole)
	for _, fp := range doc.Footprints {
		for _, pad := range fp.Pads {
			c.Fill(p.stadiumPath(padStadium(pad)))
		}
	}

	if opts.Width == 0 {
		_, err := vgimg.PngCanvas{Canvas: c}.WriteTo(w)
		return err
	}
	img := resize.Resize(uint(opts.Width), 0, c.Image(), resize.Lanczos3)
	return png.Encode(w, img)
}

// previewer maps document millimetres onto the Y-up canvas.
type previewer struct {
	xf d2.Transform
}

func newPreviewer(bb d2.Box) previewer {
	// Mirror about X, then move the drawing box to the canvas origin.
	mirror := d2.Scaling(r2.Vec{X: 1, Y: -1})
	return previewer{xf: d2.Translation(r2.Vec{X: -bb.Min.X, Y: bb.Max.Y}).Mul(mirror)}
}

func (p previewer) pt(v r2.Vec) vg.Point {
	v = p.xf.ApplyPos(v)
	return vg.Point{X: p.length(v.X), Y: p.length(v.Y)}
}

func (p previewer) length(l float64) vg.Length { return vg.Length(l) * vg.Millimeter }

func (p previewer) shapePath(s eurorack.Shape) vg.Path {
	var path vg.Path
	path.Move(p.pt(s.Start))
	switch s.Kind {
	case eurorack.ShapeSegment:
		path.Line(p.pt(s.End))
	case eurorack.ShapeArc:
		a, sweep := startAngle(s), s.Angle
		if p.xf.Mirrors() {
			a, sweep = -a, -sweep
		}
		path.Arc(p.pt(s.Center), p.length(s.Radius()), a*math.Pi/180, sweep*math.Pi/180)
	}
	return path
}

func (p previewer) stadiumPath(st stadium) vg.Path {
	var path vg.Path
	a, b := st.ends()
	r := p.length(st.r)
	if st.l == 0 {
		path.Move(p.pt(r2.Add(st.center, r2.Vec{X: st.r})))
		path.Arc(p.pt(st.center), r, 0, 2*math.Pi)
		path.Close()
		return path
	}
	// Canvas angles: a is left (or above) b.
	if st.vert {
		path.Move(p.pt(r2.Add(a, r2.Vec{X: st.r})))
		path.Arc(p.pt(a), r, 0, math.Pi)
		path.Line(p.pt(r2.Sub(b, r2.Vec{X: st.r})))
		path.Arc(p.pt(b), r, math.Pi, math.Pi)
	} else {
		path.Move(p.pt(r2.Add(b, r2.Vec{Y: st.r})))
		path.Arc(p.pt(b), r, -math.Pi/2, math.Pi)
		path.Line(p.pt(r2.Sub(a, r2.Vec{Y: st.r})))
		path.Arc(p.pt(a), r, math.Pi/2, math.Pi)
	}
	path.Close()
	return path
}
