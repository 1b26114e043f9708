package geom

import (
	"math"
	"testing"
)

// S1: two orthogonal line segments crossing at a single interior point.
func TestIntersectLineLineCross(t *testing.T) {
	horiz, _ := NewLine(Point{X: -1, Y: 0, Z: 0}, Point{X: 1, Y: 0, Z: 0})
	vert, _ := NewLine(Point{X: 0, Y: -1, Z: 0}, Point{X: 0, Y: 1, Z: 0})

	pts, flag := horiz.Intersect(vert)
	if flag != FlagNone {
		t.Fatalf("flag = %v, want FlagNone", flag)
	}
	if len(pts) != 1 || !pts[0].Equal(Point{X: 0, Y: 0, Z: 0}) {
		t.Fatalf("pts = %+v, want [(0,0,0)]", pts)
	}
}

func TestIntersectLineLineParallelDistinct(t *testing.T) {
	a, _ := NewLine(Point{X: 0, Y: 0, Z: 0}, Point{X: 1, Y: 0, Z: 0})
	b, _ := NewLine(Point{X: 0, Y: 1, Z: 0}, Point{X: 1, Y: 1, Z: 0})
	pts, flag := a.Intersect(b)
	if flag != FlagNone || len(pts) != 0 {
		t.Fatalf("parallel distinct lines: pts=%+v flag=%v", pts, flag)
	}
}

func TestIntersectLineLineCollinearOverlap(t *testing.T) {
	a, _ := NewLine(Point{X: 0, Y: 0, Z: 0}, Point{X: 2, Y: 0, Z: 0})
	b, _ := NewLine(Point{X: 1, Y: 0, Z: 0}, Point{X: 3, Y: 0, Z: 0})
	pts, flag := a.Intersect(b)
	if flag != FlagEdgeOverlap {
		t.Fatalf("flag = %v, want FlagEdgeOverlap", flag)
	}
	if len(pts) != 2 {
		t.Fatalf("pts = %+v, want 2 boundary points", pts)
	}
}

// S2: two circles tangent externally.
func TestIntersectCirclesTangent(t *testing.T) {
	c1, _ := NewCircle(Point{X: 0, Y: 0, Z: 0}, 1)
	c2, _ := NewCircle(Point{X: 2, Y: 0, Z: 0}, 1)
	pts, flag := c1.Intersect(c2)
	if flag != FlagTangent {
		t.Fatalf("flag = %v, want FlagTangent", flag)
	}
	if len(pts) != 0 {
		t.Fatalf("pts = %+v, want none for tangent", pts)
	}
}

func TestIntersectCirclesCrossing(t *testing.T) {
	c1, _ := NewCircle(Point{X: 0, Y: 0, Z: 0}, 1)
	c2, _ := NewCircle(Point{X: 1, Y: 0, Z: 0}, 1)
	pts, flag := c1.Intersect(c2)
	if flag != FlagNone {
		t.Fatalf("flag = %v, want FlagNone", flag)
	}
	if len(pts) != 2 {
		t.Fatalf("pts = %+v, want 2 crossing points", pts)
	}
	for _, p := range pts {
		if math.Abs(c1.Center.Distance(p)-1) > 1e-6 {
			t.Errorf("point %+v not on circle 1", p)
		}
		if math.Abs(c2.Center.Distance(p)-1) > 1e-6 {
			t.Errorf("point %+v not on circle 2", p)
		}
	}
}

// S3: concentric circles, one strictly inside the other.
func TestIntersectConcentricCircles(t *testing.T) {
	outer, _ := NewCircle(Point{X: 0, Y: 0, Z: 0}, 5)
	inner, _ := NewCircle(Point{X: 0, Y: 0, Z: 0}, 2)
	// outer (the receiver) has the larger radius, so inner (other) is the
	// one wholly contained: FlagOtherInsideSegment.
	pts, flag := outer.Intersect(inner)
	if flag != FlagOtherInsideSegment {
		t.Fatalf("flag = %v, want FlagOtherInsideSegment", flag)
	}
	if len(pts) != 0 {
		t.Fatalf("pts = %+v, want none", pts)
	}

	// Called the other way round, the receiver (inner) is the one wholly
	// contained: FlagSegmentInsideOther.
	pts2, flag2 := inner.Intersect(outer)
	if flag2 != FlagSegmentInsideOther {
		t.Fatalf("flag = %v, want FlagSegmentInsideOther", flag2)
	}
	if len(pts2) != 0 {
		t.Fatalf("pts = %+v, want none", pts2)
	}
}

func TestIntersectCoincidentCircles(t *testing.T) {
	c1, _ := NewCircle(Point{X: 0, Y: 0, Z: 0}, 3)
	c2, _ := NewCircle(Point{X: 0, Y: 0, Z: 0}, 3)
	_, flag := c1.Intersect(c2)
	if flag != FlagCoincident {
		t.Fatalf("flag = %v, want FlagCoincident", flag)
	}
}

func TestIntersectArcWithLine(t *testing.T) {
	arc, _ := NewArc(Point{X: 0, Y: 0, Z: 0}, Point{X: 1, Y: 0, Z: 0}, Point{X: -1, Y: 0, Z: 0}, false)
	line, _ := NewLine(Point{X: 0, Y: -2, Z: 0}, Point{X: 0, Y: 2, Z: 0})
	pts, flag := arc.Intersect(line)
	if flag != FlagNone {
		t.Fatalf("flag = %v, want FlagNone", flag)
	}
	if len(pts) != 1 || !pts[0].Equal(Point{X: 0, Y: 1, Z: 0}) {
		t.Fatalf("pts = %+v, want [(0,1,0)] (upper half only, per arc interval)", pts)
	}
}

func TestIntersectLineTangentToCircle(t *testing.T) {
	circle, _ := NewCircle(Point{X: 0, Y: 0, Z: 0}, 1)
	line, _ := NewLine(Point{X: -2, Y: 1, Z: 0}, Point{X: 2, Y: 1, Z: 0})
	_, flag := circle.Intersect(line)
	if flag != FlagTangent {
		t.Fatalf("flag = %v, want FlagTangent", flag)
	}
}

// Property: self-intersection of a full circle reports Coincident; an arc,
// lying on the same underlying circle as itself, reports EdgeOverlap.
func TestPropertySelfIntersectionCoincident(t *testing.T) {
	c, _ := NewCircle(Point{X: 1, Y: -2, Z: 0}, 4)
	_, flag := c.Intersect(c)
	if flag != FlagCoincident {
		t.Fatalf("self-intersection flag = %v, want FlagCoincident", flag)
	}

	arc, _ := NewArc(Point{X: 0, Y: 0, Z: 0}, Point{X: 1, Y: 0, Z: 0}, Point{X: -1, Y: 0, Z: 0}, false)
	_, flag = arc.Intersect(arc)
	if flag != FlagEdgeOverlap {
		t.Fatalf("self-intersecting arc flag = %v, want FlagEdgeOverlap", flag)
	}
}

// Property: the intersection point set is symmetric regardless of call order.
func TestPropertyIntersectionSymmetric(t *testing.T) {
	a, _ := NewLine(Point{X: -1, Y: 0, Z: 0}, Point{X: 1, Y: 0, Z: 0})
	b, _ := NewLine(Point{X: 0, Y: -1, Z: 0}, Point{X: 0, Y: 1, Z: 0})

	ptsAB, flagAB := a.Intersect(b)
	ptsBA, flagBA := b.Intersect(a)
	if flagAB != flagBA {
		t.Fatalf("flags differ: %v vs %v", flagAB, flagBA)
	}
	if len(ptsAB) != len(ptsBA) {
		t.Fatalf("point counts differ: %d vs %d", len(ptsAB), len(ptsBA))
	}
	for i := range ptsAB {
		if !ptsAB[i].Equal(ptsBA[i]) {
			t.Errorf("point %d differs: %+v vs %+v", i, ptsAB[i], ptsBA[i])
		}
	}
}
