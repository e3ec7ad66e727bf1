package d2

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Transform represents a 2D affine transformation as a 3x3 homogeneous
// matrix.
type Transform struct {
	data [3 * 3]float64
}

// Identity returns the transform that leaves points unchanged.
func Identity() Transform {
	return Transform{data: [9]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}}
}

// Translation returns a transform that moves points by v.
func Translation(v r2.Vec) Transform {
	t := Identity()
	t.Set(0, 2, v.X)
	t.Set(1, 2, v.Y)
	return t
}

// Scaling returns a transform that scales X and Y independently. A negative
// component mirrors about the corresponding axis.
func Scaling(k r2.Vec) Transform {
	t := Identity()
	t.Set(0, 0, k.X)
	t.Set(1, 1, k.Y)
	return t
}

func (t *Transform) At(i, j int) float64 {
	return t.data[i*3+j]
}

func (t *Transform) Set(i, j int, v float64) {
	t.data[i*3+j] = v
}

// Mul multiplies 3x3 matrices. The result applies b first, then a.
func (a Transform) Mul(b Transform) Transform {
	var m Transform
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			m.Set(i, j, sum)
		}
	}
	return m
}

func (t Transform) ApplyPos(b r2.Vec) r2.Vec {
	return r2.Vec{
		X: t.At(0, 0)*b.X + t.At(0, 1)*b.Y + t.At(0, 2),
		Y: t.At(1, 0)*b.X + t.At(1, 1)*b.Y + t.At(1, 2),
	}
}

// Determinant returns the determinant of the 3x3 matrix.
func (a Transform) Determinant() float64 {
	return a.At(0, 0)*(a.At(1, 1)*a.At(2, 2)-a.At(1, 2)*a.At(2, 1)) -
		a.At(0, 1)*(a.At(1, 0)*a.At(2, 2)-a.At(1, 2)*a.At(2, 0)) +
		a.At(0, 2)*(a.At(1, 0)*a.At(2, 1)-a.At(1, 1)*a.At(2, 0))
}

// Mirrors reports whether the transform flips orientation, which reverses
// the direction arcs are swept in.
func (a Transform) Mirrors() bool {
	return a.Determinant() < 0
}
