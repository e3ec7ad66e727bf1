package eurorack

import (
	"math"

	"github.com/soypat/eurorack/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// SDF2 is a 2d signed distance function. Evaluate is negative inside the
// shape, zero on its boundary and positive outside.
type SDF2 interface {
	Evaluate(p r2.Vec) float64
	Bounds() r2.Box
}

func sdfBox2d(p, s r2.Vec) float64 {
	p = d2.AbsElem(p)
	d := r2.Sub(p, s)
	k := s.Y - s.X
	if d.X > 0 && d.Y > 0 {
		return r2.Norm(d)
	}
	if p.Y-p.X > k {
		return d.Y
	}
	return d.X
}

// roundBox is a rectangle with rounded corners.
type roundBox struct {
	center r2.Vec
	half   r2.Vec // half size minus rounding
	round  float64
	bb     r2.Box
}

// RoundBox returns the SDF2 of a size.X×size.Y rectangle with corner radius
// round and its top left corner at min.
func RoundBox(min, size r2.Vec, round float64) SDF2 {
	half := r2.Scale(0.5, size)
	return &roundBox{
		center: r2.Add(min, half),
		half:   r2.Sub(half, d2.Elem(round)),
		round:  round,
		bb:     r2.Box{Min: min, Max: r2.Add(min, size)},
	}
}

func (s *roundBox) Evaluate(p r2.Vec) float64 {
	return sdfBox2d(r2.Sub(p, s.center), s.half) - s.round
}

func (s *roundBox) Bounds() r2.Box { return s.bb }

// slot is a horizontal stadium: a line of length l rounded by width/2.
type slot struct {
	center r2.Vec
	l      float64 // half the straight length
	round  float64
	bb     r2.Box
}

// Slot returns the SDF2 of an oval hole of the given size centered at c.
// The oval is elongated along X; size.Y is its width.
func Slot(c, size r2.Vec) SDF2 {
	round := size.Y / 2
	l := math.Max(size.X-size.Y, 0) / 2
	return &slot{
		center: c,
		l:      l,
		round:  round,
		bb:     r2.Box(d2.NewBox2(c, r2.Vec{X: 2 * (l + round), Y: 2 * round})),
	}
}

func (s *slot) Evaluate(p r2.Vec) float64 {
	p = d2.AbsElem(r2.Sub(p, s.center))
	if p.X <= s.l {
		return p.Y - s.round
	}
	return r2.Norm(r2.Sub(p, r2.Vec{X: s.l})) - s.round
}

func (s *slot) Bounds() r2.Box { return s.bb }

// holes is the union of several SDF2s.
type holes struct {
	sdf []SDF2
	bb  r2.Box
}

// Union returns the union of sdfs. At least one is required.
func Union(sdf ...SDF2) SDF2 {
	if len(sdf) == 0 {
		panic("union requires at least 1 sdf")
	}
	bb := d2.Box(sdf[0].Bounds())
	for _, x := range sdf[1:] {
		bb = bb.Extend(d2.Box(x.Bounds()))
	}
	return &holes{sdf: sdf, bb: r2.Box(bb)}
}

func (s *holes) Evaluate(p r2.Vec) float64 {
	d := math.Inf(1)
	for _, x := range s.sdf {
		d = math.Min(d, x.Evaluate(p))
	}
	return d
}

func (s *holes) Bounds() r2.Box { return s.bb }

// diff is s0 with s1 removed.
type diff struct {
	s0, s1 SDF2
}

// Difference returns s0 - s1.
func Difference(s0, s1 SDF2) SDF2 {
	if s0 == nil || s1 == nil {
		panic("nil sdf argument")
	}
	return &diff{s0: s0, s1: s1}
}

func (s *diff) Evaluate(p r2.Vec) float64 {
	return math.Max(s.s0.Evaluate(p), -s.s1.Evaluate(p))
}

func (s *diff) Bounds() r2.Box { return s.s0.Bounds() }

// SDF returns the outlined board with its mounting holes cut out, in
// document coordinates. Mount sets inset into another board are cut too.
func (d Design) SDF() SDF2 {
	board := RoundBox(d.Origin, d.Size, d.Request.Radius)
	var cut []SDF2
	for _, m := range d.Mounts {
		for _, h := range m.Holes {
			cut = append(cut, Slot(r2.Add(m.Origin, h), m.Size))
		}
	}
	if len(cut) == 0 {
		return board
	}
	return Difference(board, Union(cut...))
}

// Clearances returns, for every mounting hole in Mounts order, the distance
// between the hole edge and the edge of the board it is inset into, rounded
// by the requested corner radius. Negative values mean the hole breaks out
// of the board. Nothing is rejected; the values are informational.
func (d Design) Clearances() []float64 {
	var out []float64
	for _, m := range d.Mounts {
		board := RoundBox(m.Origin, m.Board, d.Request.Radius)
		l := math.Max(m.Size.X-m.Size.Y, 0) / 2
		for _, h := range m.Holes {
			c := r2.Add(m.Origin, h)
			// The board is convex so the slot's nearest approach to the
			// edge is at one of its end circles.
			left := board.Evaluate(r2.Sub(c, r2.Vec{X: l}))
			right := board.Evaluate(r2.Add(c, r2.Vec{X: l}))
			out = append(out, -math.Max(left, right)-m.Size.Y/2)
		}
	}
	return out
}
