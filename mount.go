package eurorack

import "gonum.org/v1/gonum/spatial/r2"

// MountSet is one group of four mounting holes.
type MountSet struct {
	// Origin is the board frame origin in the document.
	Origin r2.Vec
	// Holes are hole centers in the board frame, ordered by Corner.
	Holes [4]r2.Vec
	// Size is the oval hole length (X) and width (Y).
	Size r2.Vec
	// Board is the width and height of the board the holes are inset into.
	Board r2.Vec
}

// FaceplateMounts returns the faceplate mounting hole centers for a w×h
// faceplate, ordered by Corner.
func FaceplateMounts(w, h float64) [4]r2.Vec {
	return insetCorners(w, h, FaceplateMountOffset)
}

// PCBMounts returns the rear PCB mounting hole centers for a w×h PCB,
// ordered by Corner.
func PCBMounts(w, h float64) [4]r2.Vec {
	return insetCorners(w, h, PCBMountOffset)
}

func insetCorners(w, h float64, off r2.Vec) [4]r2.Vec {
	return [4]r2.Vec{
		TopLeft:     {X: off.X, Y: off.Y},
		TopRight:    {X: w - off.X, Y: off.Y},
		BottomLeft:  {X: off.X, Y: h - off.Y},
		BottomRight: {X: w - off.X, Y: h - off.Y},
	}
}

// HoleSize returns the oval size of an M3 mounting hole lengthened
// horizontally by elongation.
func HoleSize(elongation float64) r2.Vec {
	return r2.Vec{X: M3Diameter + elongation, Y: M3Diameter}
}

// Footprints returns one footprint per hole, each holding a single NPTH
// oval pad drilled to the hole size.
func (m MountSet) Footprints() []Footprint {
	fps := make([]Footprint, 0, len(m.Holes))
	for _, h := range m.Holes {
		pos := r2.Add(m.Origin, h)
		fps = append(fps, Footprint{
			Position: pos,
			Pads: []Pad{{
				Position: pos,
				Size:     m.Size,
				Drill:    m.Size,
				Shape:    PadOval,
				Attr:     PadNPTH,
			}},
		})
	}
	return fps
}
