package eurorack

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Dimensions are the board sizes and document origins derived from a Request.
type Dimensions struct {
	// StandardWidth is the faceplate width.
	StandardWidth float64
	// StandardHeight is the faceplate height.
	StandardHeight float64
	PCBWidth       float64
	PCBHeight      float64
	// FaceplateOrigin and PCBOrigin place each board frame in the document
	// so that a PCB drawn next to its faceplate overlays it.
	FaceplateOrigin r2.Vec
	PCBOrigin       r2.Vec
}

// StandardWidth returns the faceplate width for hp units, rounded down to
// the nearest 0.5mm so a panel never exceeds its rail slot.
func StandardWidth(hp float64) float64 {
	return math.Floor(hp*HP*2) / 2
}

// Derive computes the board dimensions for req.
func Derive(req Request) Dimensions {
	exp := edgeExpansion()
	w := StandardWidth(req.HP)
	return Dimensions{
		StandardWidth:   w,
		StandardHeight:  FaceplateHeight,
		PCBWidth:        w + 2*exp.X,
		PCBHeight:       FaceplateHeight + 2*exp.Y,
		FaceplateOrigin: LocalOrigin,
		PCBOrigin:       r2.Sub(LocalOrigin, exp),
	}
}

// FaceplateSize returns the faceplate width and height as a vector.
func (d Dimensions) FaceplateSize() r2.Vec {
	return r2.Vec{X: d.StandardWidth, Y: d.StandardHeight}
}

// PCBSize returns the rear PCB width and height as a vector.
func (d Dimensions) PCBSize() r2.Vec {
	return r2.Vec{X: d.PCBWidth, Y: d.PCBHeight}
}
