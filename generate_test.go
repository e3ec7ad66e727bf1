package eurorack_test

import (
	"math"
	"testing"

	"github.com/soypat/eurorack"
	"github.com/soypat/eurorack/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// callLog records Board calls in order.
type callLog struct {
	eurorack.Document
	calls []string
}

func (c *callLog) AddShape(s eurorack.Shape) {
	c.calls = append(c.calls, "shape")
	c.Document.AddShape(s)
}

func (c *callLog) AddFootprint(f eurorack.Footprint) {
	c.calls = append(c.calls, "footprint")
	c.Document.AddFootprint(f)
}

func (c *callLog) Refresh() {
	c.calls = append(c.calls, "refresh")
	c.Document.Refresh()
}

func TestGenerateFaceplateScenario(t *testing.T) {
	var doc callLog
	in := eurorack.Input{Type: "Faceplate", HP: "12", Rad: "2", MHW: "1", PCBMounts: true}
	d := eurorack.Generate(&doc, eurorack.ParseRequest(in))

	if d.Dims.StandardWidth != 60.5 {
		t.Fatalf("standard width got %g. want 60.5", d.Dims.StandardWidth)
	}
	if d.Size != (r2.Vec{X: 60.5, Y: 128.5}) {
		t.Errorf("outline size got %v. want 60.5x128.5", d.Size)
	}
	if len(doc.Shapes) != 8 {
		t.Fatalf("got %d outline shapes. want 8", len(doc.Shapes))
	}
	if len(doc.Footprints) != 8 {
		t.Fatalf("got %d footprints. want 8", len(doc.Footprints))
	}
	if doc.Refreshes != 1 || doc.calls[len(doc.calls)-1] != "refresh" {
		t.Errorf("refresh must happen exactly once and last, calls: %v", doc.calls)
	}
	// Outline occupies the faceplate frame.
	bb := d2.EmptyBox()
	for _, s := range doc.Shapes {
		bb = bb.Include(s.Start)
		if s.Kind == eurorack.ShapeArc {
			bb = bb.Include(s.ArcEnd())
		} else {
			bb = bb.Include(s.End)
		}
	}
	want := d2.Box{Min: r2.Vec{X: 50, Y: 40}, Max: r2.Vec{X: 110.5, Y: 168.5}}
	if !bb.Equals(want, 1e-9) {
		t.Errorf("outline bounds got %v. want %v", bb, want)
	}

	fpHoles := []r2.Vec{{X: 57.5, Y: 43}, {X: 103, Y: 43}, {X: 57.5, Y: 165.5}, {X: 103, Y: 165.5}}
	pcbHoles := []r2.Vec{{X: 56, Y: 57.5}, {X: 104.5, Y: 57.5}, {X: 56, Y: 151}, {X: 104.5, Y: 151}}
	for i, fp := range doc.Footprints {
		wantPos, wantLen := fpHoles[i%4], 4.2
		if i >= 4 {
			wantPos, wantLen = pcbHoles[i%4], 3.2
		}
		if !d2.EqualWithin(fp.Position, wantPos, 1e-9) {
			t.Errorf("footprint %d at %v. want %v", i, fp.Position, wantPos)
		}
		if len(fp.Pads) != 1 {
			t.Fatalf("footprint %d has %d pads", i, len(fp.Pads))
		}
		pad := fp.Pads[0]
		if pad.Attr != eurorack.PadNPTH || pad.Shape != eurorack.PadOval {
			t.Errorf("footprint %d pad is not an NPTH oval: %+v", i, pad)
		}
		if math.Abs(pad.Size.X-wantLen) > 1e-9 || pad.Size.Y != eurorack.M3Diameter {
			t.Errorf("footprint %d pad size %v. want %gx3.2", i, pad.Size, wantLen)
		}
		if pad.Drill != pad.Size || pad.Position != fp.Position {
			t.Errorf("footprint %d pad drill/position mismatch: %+v", i, pad)
		}
	}
}

func TestGeneratePCBScenario(t *testing.T) {
	var doc eurorack.Document
	in := eurorack.Input{Type: "PCB", HP: "8", Rad: "1.5", MHW: "", PCBMounts: false}
	d := eurorack.Generate(&doc, eurorack.ParseRequest(in))

	if d.Dims.StandardWidth != 40.5 {
		t.Errorf("standard width got %g. want 40.5", d.Dims.StandardWidth)
	}
	if d.Dims.PCBWidth != 34.5 || d.Dims.PCBHeight != 99.5 {
		t.Errorf("pcb size got %gx%g. want 34.5x99.5", d.Dims.PCBWidth, d.Dims.PCBHeight)
	}
	if len(doc.Shapes) != 8 {
		t.Errorf("got %d outline shapes. want 8", len(doc.Shapes))
	}
	if len(doc.Footprints) != 0 {
		t.Errorf("got %d footprints. want none", len(doc.Footprints))
	}
	if doc.Refreshes != 1 {
		t.Errorf("got %d refreshes. want 1", doc.Refreshes)
	}
	bounds := doc.Bounds()
	want := r2.Box{Min: r2.Vec{X: 53, Y: 54.5}, Max: r2.Vec{X: 87.5, Y: 154}}
	if !d2.Box(bounds).Equals(d2.Box(want), 1e-9) {
		t.Errorf("document bounds got %v. want %v", bounds, want)
	}
}

func TestGeneratePCBWithMounts(t *testing.T) {
	var doc eurorack.Document
	d := eurorack.Generate(&doc, eurorack.Request{Kind: eurorack.PCB, HP: 10, Radius: 1, SlotLength: 3, PCBMounts: true})
	if len(d.Mounts) != 1 || len(doc.Footprints) != 4 {
		t.Fatalf("got %d mount sets and %d footprints. want 1 and 4", len(d.Mounts), len(doc.Footprints))
	}
	if d.Mounts[0].Origin != d.Dims.PCBOrigin {
		t.Errorf("pcb mounts anchored at %v. want %v", d.Mounts[0].Origin, d.Dims.PCBOrigin)
	}
	for _, fp := range doc.Footprints {
		if fp.Pads[0].Size != eurorack.HoleSize(0) {
			t.Errorf("pcb mount size got %v", fp.Pads[0].Size)
		}
	}
}

func TestGenerateDegenerate(t *testing.T) {
	// Empty form: everything zero, nothing rejected.
	var doc eurorack.Document
	d := eurorack.Generate(&doc, eurorack.ParseRequest(eurorack.Input{}))
	if d.Request.Kind != eurorack.PCB {
		t.Errorf("empty type got %v. want PCB", d.Request.Kind)
	}
	if len(doc.Shapes) != 8 || doc.Refreshes != 1 {
		t.Errorf("degenerate input must still produce 8 shapes and one refresh, got %d, %d", len(doc.Shapes), doc.Refreshes)
	}
	for _, s := range doc.Shapes {
		for _, v := range []float64{s.Start.X, s.Start.Y, s.End.X, s.End.Y} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("non finite coordinate in %+v", s)
			}
		}
	}
}

func TestBuildDoesNotTouchDocument(t *testing.T) {
	d := eurorack.Build(eurorack.Request{Kind: eurorack.Faceplate, HP: 4, Radius: 1})
	var doc eurorack.Document
	if doc.Refreshes != 0 || len(doc.Shapes) != 0 {
		t.Fatal("zero document not empty")
	}
	d.Apply(&doc)
	if doc.Refreshes != 0 {
		t.Errorf("Apply must not refresh, got %d", doc.Refreshes)
	}
	if len(doc.Shapes) != 8 || len(doc.Footprints) != 4 {
		t.Errorf("got %d shapes %d footprints", len(doc.Shapes), len(doc.Footprints))
	}
}

func TestClearances(t *testing.T) {
	d := eurorack.Build(eurorack.Request{Kind: eurorack.Faceplate, HP: 12, Radius: 2, SlotLength: 1, PCBMounts: true})
	got := d.Clearances()
	if len(got) != 8 {
		t.Fatalf("got %d clearances. want 8", len(got))
	}
	// Faceplate holes: 3mm from the top/bottom edge, 1.6mm hole half width.
	for i := 0; i < 4; i++ {
		if math.Abs(got[i]-1.4) > 1e-9 {
			t.Errorf("faceplate hole %d clearance got %g. want 1.4", i, got[i])
		}
	}
	for i := 4; i < 8; i++ {
		if math.Abs(got[i]-1.4) > 1e-9 {
			t.Errorf("pcb hole %d clearance got %g. want 1.4", i, got[i])
		}
	}
	// Holes sit inside the board and outside the material.
	s := d.SDF()
	for _, m := range d.Mounts[:1] {
		for _, h := range m.Holes {
			if v := s.Evaluate(r2.Add(m.Origin, h)); v <= 0 {
				t.Errorf("hole center %v evaluates to material (%g)", h, v)
			}
		}
	}
	if v := s.Evaluate(r2.Add(d.Origin, r2.Scale(0.5, d.Size))); v >= 0 {
		t.Errorf("board center must be inside, got %g", v)
	}
}

func TestClearanceBreakout(t *testing.T) {
	// A 1HP faceplate is narrower than twice the hole inset.
	d := eurorack.Build(eurorack.Request{Kind: eurorack.Faceplate, HP: 1, Radius: 0.5, SlotLength: 0})
	for i, c := range d.Clearances() {
		if c >= 0 {
			t.Errorf("hole %d on a 5mm panel must break out, clearance %g", i, c)
		}
	}
}
