package geom

import (
	"math"
	"testing"
)

func TestBoundsLine(t *testing.T) {
	line, _ := NewLine(Point{X: 0, Y: 0, Z: 0}, Point{X: 3, Y: 4, Z: 0})
	tl, br := line.Bounds()
	if tl != (Point{X: 0, Y: 4, Z: 0}) || br != (Point{X: 3, Y: 0, Z: 0}) {
		t.Errorf("Bounds = (%+v,%+v)", tl, br)
	}
}

func TestBoundsCircle(t *testing.T) {
	c, _ := NewCircle(Point{X: 1, Y: 1, Z: 0}, 2)
	tl, br := c.Bounds()
	if tl != (Point{X: -1, Y: 3, Z: 0}) || br != (Point{X: 3, Y: -1, Z: 0}) {
		t.Errorf("Bounds = (%+v,%+v), want (-1,3)/(3,-1)", tl, br)
	}
}

func TestBoundsArcExcludesUnreachedExtrema(t *testing.T) {
	// A quarter arc from angle 0 to pi/2 should not include the left or
	// bottom cardinal points, only the right and top ones (which coincide
	// with its own endpoints here).
	arc, _ := NewArc(Point{X: 0, Y: 0, Z: 0}, Point{X: 1, Y: 0, Z: 0}, Point{X: 0, Y: 1, Z: 0}, false)
	tl, br := arc.Bounds()
	if tl != (Point{X: 0, Y: 1, Z: 0}) || br != (Point{X: 1, Y: 0, Z: 0}) {
		t.Errorf("Bounds = (%+v,%+v), want (0,1)/(1,0)", tl, br)
	}
}

func TestBoundsArcIncludesCardinalExtremum(t *testing.T) {
	// Arc spanning from angle pi/4 to 3pi/4 straddles the top cardinal point
	// (pi/2), which must be included even though it is not an endpoint.
	center := Point{X: 0, Y: 0, Z: 0}
	start := Point{X: 1, Y: 1, Z: 0}
	end := Point{X: -1, Y: 1, Z: 0}
	arc, err := NewArc(center, start, end, false)
	if err != nil {
		t.Fatalf("NewArc: %v", err)
	}
	_, br := arc.Bounds()
	if math.Abs(br.Y-1) > 1e-9 {
		t.Errorf("expected bounds bottom at the endpoints' y = 1, got bottomRight.Y=%v", br.Y)
	}
	tl, _ := arc.Bounds()
	radius := arc.Radius
	if tl.Y < radius-1e-9 {
		t.Errorf("expected top cardinal extremum y=%v to be included, got topLeft.Y=%v", radius, tl.Y)
	}
}
