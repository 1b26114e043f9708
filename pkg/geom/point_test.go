package geom

import (
	"math"
	"testing"
)

func TestNewPointRejectsNonPlanar(t *testing.T) {
	if _, err := NewPoint(1, 2, 0); err != nil {
		t.Fatalf("NewPoint(1,2,0): unexpected error %v", err)
	}
	if _, err := NewPoint(1, 2, 3); err != ErrNonPlanar {
		t.Fatalf("NewPoint(1,2,3): got %v, want ErrNonPlanar", err)
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Point{X: 1, Y: 2, Z: 0}
	q := Point{X: 3, Y: -1, Z: 0}

	if got := p.Add(q); got != (Point{X: 4, Y: 1, Z: 0}) {
		t.Errorf("Add: got %+v", got)
	}
	if got := p.Sub(q); got != (Point{X: -2, Y: 3, Z: 0}) {
		t.Errorf("Sub: got %+v", got)
	}
	if got := p.Scale(2); got != (Point{X: 2, Y: 4, Z: 0}) {
		t.Errorf("Scale: got %+v", got)
	}
	if got := p.Dot(q); got != 1*3+2*(-1) {
		t.Errorf("Dot: got %v", got)
	}
}

func TestPointDistanceAndEqual(t *testing.T) {
	p := Point{X: 0, Y: 0, Z: 0}
	q := Point{X: 3, Y: 4, Z: 0}
	if got := p.Distance(q); math.Abs(got-5) > 1e-12 {
		t.Errorf("Distance: got %v, want 5", got)
	}

	near := Point{X: 1e-9, Y: 0, Z: 0}
	if !p.Equal(near) {
		t.Error("Equal: expected points within Epsilon to be equal")
	}
	far := Point{X: 1e-3, Y: 0, Z: 0}
	if p.Equal(far) {
		t.Error("Equal: expected points beyond Epsilon to be unequal")
	}
}

func TestAngle(t *testing.T) {
	center := Point{X: 0, Y: 0, Z: 0}
	cases := []struct {
		p    Point
		want float64
	}{
		{Point{X: 1, Y: 0, Z: 0}, 0},
		{Point{X: 0, Y: 1, Z: 0}, math.Pi / 2},
		{Point{X: -1, Y: 0, Z: 0}, math.Pi},
		{Point{X: 0, Y: -1, Z: 0}, 3 * math.Pi / 2},
	}
	for _, c := range cases {
		if got := center.Angle(c.p); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Angle(%+v) = %v, want %v", c.p, got, c.want)
		}
	}
}
