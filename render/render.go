// Package render writes generated board documents to files that CAD, CAM
// and image tools understand.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/soypat/eurorack"
	"github.com/soypat/eurorack/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Format is an output file format.
type Format int

const (
	KiCad Format = iota
	SVG
	DXF
	PNG
	Excellon
)

var formatNames = [...]string{
	KiCad:    "kicad",
	SVG:      "svg",
	DXF:      "dxf",
	PNG:      "png",
	Excellon: "drl",
}

var formatExts = [...]string{
	KiCad:    ".kicad_pcb",
	SVG:      ".svg",
	DXF:      ".dxf",
	PNG:      ".png",
	Excellon: ".drl",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// Ext returns the file extension of f including the dot.
func (f Format) Ext() string {
	if f < 0 || int(f) >= len(formatExts) {
		return ""
	}
	return formatExts[f]
}

// Formats returns every supported format.
func Formats() []Format {
	return []Format{KiCad, SVG, DXF, PNG, Excellon}
}

// ParseFormat returns the format named s. "excellon" is accepted for drl.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "excellon" {
		return Excellon, nil
	}
	for i, name := range formatNames {
		if s == name {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("unsupported format %q (expected one of %s)", s, strings.Join(formatNames[:], "|"))
}

// Options configures writers that take parameters.
type Options struct {
	PNG PNGOptions
}

// Create writes doc to path in format f.
func Create(path string, f Format, doc *eurorack.Document, opts Options) error {
	if f == DXF {
		return CreateDXF(path, doc)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	err = Write(file, f, doc, opts)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}

// Write writes doc to w in format f. DXF is not supported, use CreateDXF.
func Write(w io.Writer, f Format, doc *eurorack.Document, opts Options) error {
	switch f {
	case KiCad:
		return WriteKiCad(w, doc)
	case SVG:
		return WriteSVG(w, doc)
	case PNG:
		return WritePNG(w, doc, opts.PNG)
	case Excellon:
		return WriteExcellon(w, doc)
	case DXF:
		return errors.New("dxf can only be written to a file")
	default:
		return fmt.Errorf("unsupported format %v", f)
	}
}

// errWriter keeps the first write error so formatting code can write
// unconditionally and check once.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(b)
	e.err = err
	return n, err
}

func (e *errWriter) printf(format string, args ...any) {
	fmt.Fprintf(e, format, args...)
}

// mm formats a length in millimetres with nanometre resolution.
func mm(v float64) string {
	v = math.Round(v*1e6) / 1e6
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// margin is the blank border around drawings and previews.
const margin = 2.0

// drawingBox returns the document bounds with margin on every side.
func drawingBox(doc *eurorack.Document) d2.Box {
	bb := d2.Box(doc.Bounds())
	return bb.Enlarge(d2.Elem(2 * margin))
}

// stadium describes an oval pad as the segment its end circles slide along.
type stadium struct {
	center r2.Vec
	l      float64 // half length of the straight part
	r      float64 // end radius
	vert   bool    // elongated along Y
}

func padStadium(p eurorack.Pad) stadium {
	s := stadium{center: p.Position}
	size := p.Drill
	if size == (r2.Vec{}) {
		size = p.Size
	}
	if size.Y > size.X {
		s.vert = true
		size.X, size.Y = size.Y, size.X
	}
	s.r = size.Y / 2
	s.l = math.Max(size.X-size.Y, 0) / 2
	return s
}

// ends returns the centers of the two end circles.
func (s stadium) ends() (a, b r2.Vec) {
	off := r2.Vec{X: s.l}
	if s.vert {
		off = r2.Vec{Y: s.l}
	}
	return r2.Sub(s.center, off), r2.Add(s.center, off)
}

// startAngle returns the angle in degrees of an arc shape's start point
// about its center, measured in the document frame.
func startAngle(s eurorack.Shape) float64 {
	v := r2.Sub(s.Start, s.Center)
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}
