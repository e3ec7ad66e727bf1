// Package eurorack generates board outlines and mounting-hole patterns for
// Eurorack synthesizer module faceplates and their rear PCBs.
//
// All lengths are in millimetres and all coordinates are in the host
// document frame: x grows to the right and y grows downwards.
//
// EuroRack module panels: http://www.doepfer.de/a100_man/a100m_e.htm
package eurorack

import "gonum.org/v1/gonum/spatial/r2"

const (
	// HP is the Eurorack horizontal pitch in millimetres.
	HP = 5.08
	// FaceplateHeight is the height of a 3U faceplate.
	FaceplateHeight = 128.5

	// HorizontalEdgeExpansion is added to each left/right side of the
	// faceplate to obtain the rear PCB. Negative values shrink the PCB.
	HorizontalEdgeExpansion = -3.0
	// VerticalEdgeExpansion is added to each top/bottom side of the
	// faceplate to obtain the rear PCB. Negative values shrink the PCB
	// to clear the rails.
	VerticalEdgeExpansion = -14.5

	// M3Diameter is the diameter of a standard mounting hole.
	M3Diameter = 3.2

	// OutlineWidth is the stroke width of outline shapes.
	OutlineWidth = 0.15
)

var (
	// FaceplateMountOffset is the inset of faceplate mounting holes from
	// the faceplate corners.
	FaceplateMountOffset = r2.Vec{X: 7.5, Y: 3}
	// PCBMountOffset is the inset of rear PCB mounting holes from the
	// PCB corners.
	PCBMountOffset = r2.Vec{X: 3, Y: 3}
	// LocalOrigin is where the faceplate frame starts in the document.
	LocalOrigin = r2.Vec{X: 50, Y: 40}
)

// edgeExpansion returns the per side expansion as a vector.
func edgeExpansion() r2.Vec {
	return r2.Vec{X: HorizontalEdgeExpansion, Y: VerticalEdgeExpansion}
}
