package eurorack

import "gonum.org/v1/gonum/spatial/r2"

// Design is everything one generation inserts into a document.
type Design struct {
	Request Request
	Dims    Dimensions
	// Size is the outlined board width and height.
	Size r2.Vec
	// Origin is where the outline's top left corner sits in the document.
	Origin  r2.Vec
	Outline Outline
	Mounts  []MountSet
}

// Build computes the design for req without touching any document.
func Build(req Request) Design {
	dims := Derive(req)
	d := Design{Request: req, Dims: dims}
	switch req.Kind {
	case Faceplate:
		d.Size = dims.FaceplateSize()
		d.Origin = dims.FaceplateOrigin
		d.Mounts = append(d.Mounts, MountSet{
			Origin: dims.FaceplateOrigin,
			Holes:  FaceplateMounts(dims.StandardWidth, dims.StandardHeight),
			Size:   HoleSize(req.SlotLength),
			Board:  dims.FaceplateSize(),
		})
	default:
		d.Size = dims.PCBSize()
		d.Origin = dims.PCBOrigin
	}
	d.Outline = RoundedRect(d.Size.X, d.Size.Y, req.Radius)
	if req.PCBMounts {
		d.Mounts = append(d.Mounts, MountSet{
			Origin: dims.PCBOrigin,
			Holes:  PCBMounts(dims.PCBWidth, dims.PCBHeight),
			Size:   HoleSize(0),
			Board:  dims.PCBSize(),
		})
	}
	return d
}

// Apply inserts the design's outline and mounting holes into b.
// It does not refresh b.
func (d Design) Apply(b Board) {
	for _, s := range d.Outline.Translate(d.Origin).Shapes() {
		b.AddShape(s)
	}
	for _, m := range d.Mounts {
		for _, fp := range m.Footprints() {
			b.AddFootprint(fp)
		}
	}
}

// Generate builds the design for req, inserts it into b and refreshes b
// once. It returns the design it inserted.
func Generate(b Board, req Request) Design {
	d := Build(req)
	d.Apply(b)
	b.Refresh()
	return d
}
