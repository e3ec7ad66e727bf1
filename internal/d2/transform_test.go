package d2

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestTransformCompose(t *testing.T) {
	const tol = 1e-12
	mirror := Scaling(r2.Vec{X: 1, Y: -1})
	xf := Translation(r2.Vec{X: -50, Y: 170}).Mul(mirror)
	got := xf.ApplyPos(r2.Vec{X: 60, Y: 40})
	if want := (r2.Vec{X: 10, Y: 130}); !EqualWithin(got, want, tol) {
		t.Errorf("got %v, want %v", got, want)
	}
	if !mirror.Mirrors() || !xf.Mirrors() {
		t.Error("mirror transform must report orientation flip")
	}
	if Identity().Mirrors() || Translation(r2.Vec{X: 1}).Mirrors() {
		t.Error("identity and translation must not mirror")
	}
	if d := Scaling(r2.Vec{X: 2, Y: 3}).Determinant(); d != 6 {
		t.Errorf("determinant got %g, want 6", d)
	}
	p := r2.Vec{X: 3, Y: -4}
	if got := Identity().Mul(xf).ApplyPos(p); !EqualWithin(got, xf.ApplyPos(p), tol) {
		t.Errorf("identity product changed the transform: %v", got)
	}
}

func TestRotate(t *testing.T) {
	got := Rotate(r2.Vec{X: 0, Y: -2}, -90)
	if want := (r2.Vec{X: -2}); !EqualWithin(got, want, 1e-12) {
		t.Errorf("got %v, want %v", got, want)
	}
}
