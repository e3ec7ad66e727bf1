package render

import (
	"io"

	"github.com/soypat/eurorack"
	"gonum.org/v1/gonum/spatial/r2"
)

// kicadVersion is the board file format version written (KiCad 7).
const kicadVersion = 20221018

// mountFootprint names mounting hole footprints.
const mountFootprint = "MountingHole:MountingHole_3.2mm_M3"

// WriteKiCad writes doc as a KiCad board file. Outline shapes become
// gr_line/gr_arc items and footprints carry their pads relative to the
// footprint position.
func WriteKiCad(w io.Writer, doc *eurorack.Document) error {
	ew := &errWriter{w: w}
	ew.printf("(kicad_pcb (version %d) (generator ephelper)\n\n", kicadVersion)
	ew.printf("  (general\n    (thickness 1.6)\n  )\n\n")
	ew.printf("  (paper \"A4\")\n")
	ew.printf("  (layers\n")
	ew.printf("    (0 \"F.Cu\" signal)\n")
	ew.printf("    (31 \"B.Cu\" signal)\n")
	ew.printf("    (38 \"B.Mask\" user)\n")
	ew.printf("    (39 \"F.Mask\" user)\n")
	ew.printf("    (44 \"Edge.Cuts\" user)\n")
	ew.printf("  )\n\n")
	ew.printf("  (net 0 \"\")\n\n")

	for _, fp := range doc.Footprints {
		writeKiCadFootprint(ew, fp)
	}
	for _, s := range doc.Shapes {
		writeKiCadShape(ew, s)
	}
	ew.printf(")\n")
	return ew.err
}

func writeKiCadFootprint(ew *errWriter, fp eurorack.Footprint) {
	ew.printf("  (footprint %q (layer \"F.Cu\")\n", mountFootprint)
	ew.printf("    (at %s %s)\n", mm(fp.Position.X), mm(fp.Position.Y))
	ew.printf("    (attr exclude_from_pos_files exclude_from_bom)\n")
	for _, p := range fp.Pads {
		rel := r2.Sub(p.Position, fp.Position)
		ew.printf("    (pad \"\" %s %s (at %s %s) (size %s %s) %s (layers \"*.Cu\" \"*.Mask\"))\n",
			kicadPadAttr(p.Attr), kicadPadShape(p),
			mm(rel.X), mm(rel.Y),
			mm(p.Size.X), mm(p.Size.Y),
			kicadDrill(p.Drill),
		)
	}
	ew.printf("  )\n")
}

func writeKiCadShape(ew *errWriter, s eurorack.Shape) {
	stroke := "(stroke (width " + mm(s.Width) + ") (type default))"
	switch s.Kind {
	case eurorack.ShapeSegment:
		ew.printf("  (gr_line (start %s %s) (end %s %s) %s (layer %q))\n",
			mm(s.Start.X), mm(s.Start.Y), mm(s.End.X), mm(s.End.Y), stroke, s.Layer.String())
	case eurorack.ShapeArc:
		mid, end := s.ArcMid(), s.ArcEnd()
		ew.printf("  (gr_arc (start %s %s) (mid %s %s) (end %s %s) %s (layer %q))\n",
			mm(s.Start.X), mm(s.Start.Y), mm(mid.X), mm(mid.Y), mm(end.X), mm(end.Y), stroke, s.Layer.String())
	}
}

func kicadPadAttr(a eurorack.PadAttr) string {
	if a == eurorack.PadNPTH {
		return "np_thru_hole"
	}
	return "thru_hole"
}

func kicadPadShape(p eurorack.Pad) string {
	if p.Shape == eurorack.PadCircle {
		return "circle"
	}
	return "oval"
}

func kicadDrill(d r2.Vec) string {
	if d.X == d.Y {
		return "(drill " + mm(d.X) + ")"
	}
	return "(drill oval " + mm(d.X) + " " + mm(d.Y) + ")"
}
