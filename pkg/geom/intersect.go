package geom

import (
	"math"
	"sort"
)

// Flag classifies the result of Segment.Intersect beyond the plain point
// list: it distinguishes ordinary crossings from tangencies, coincidence,
// containment, and edge overlap, none of which are errors — Intersect never
// fails, it only ever classifies.
type Flag int

const (
	// FlagNone means either no intersection, or an ordinary transversal
	// crossing — check len(points) to tell the two apart.
	FlagNone Flag = iota
	// FlagTangent means the two segments touch at exactly one point where
	// their tangents coincide; no points are reported.
	FlagTangent
	// FlagCoincident means the two segments lie on the identical circle
	// (same center and radius); no points are reported.
	FlagCoincident
	// FlagSegmentInsideOther means the receiver's circle lies entirely
	// inside other's, with no intersection.
	FlagSegmentInsideOther
	// FlagOtherInsideSegment means other's circle lies entirely inside the
	// receiver's, with no intersection.
	FlagOtherInsideSegment
	// FlagEdgeOverlap means the two segments share a sub-chain (collinear
	// overlapping lines, or arcs/circles on the same underlying circle).
	// The two points bounding the shared sub-chain are reported.
	FlagEdgeOverlap
)

// String implements fmt.Stringer for diagnostic output.
func (f Flag) String() string {
	switch f {
	case FlagNone:
		return "none"
	case FlagTangent:
		return "tangent"
	case FlagCoincident:
		return "coincident"
	case FlagSegmentInsideOther:
		return "segment-inside-other"
	case FlagOtherInsideSegment:
		return "other-inside-segment"
	case FlagEdgeOverlap:
		return "edge-overlap"
	default:
		return "unknown"
	}
}

// Intersect computes the intersection of s with other, dispatching on the
// pair of kinds. It never fails; degeneracy is reported entirely through the
// returned Flag. Calling s.Intersect(s) reports FlagCoincident for a full
// circle; for an arc or a line it reports FlagEdgeOverlap with the
// segment's own two endpoints (see the package tests for the exact
// self-intersection contract).
func (s Segment) Intersect(other Segment) ([]Point, Flag) {
	switch {
	case s.Kind == KindLine && other.Kind == KindLine:
		return lineLine(s, other)
	case s.Kind == KindLine:
		return arcLine(other, s)
	case other.Kind == KindLine:
		return arcLine(s, other)
	default:
		return curveCurve(s, other)
	}
}

// sameCircle reports whether a and b (both Arc or Circle) lie on the same
// underlying circle, within RadialTolerance.
func sameCircle(a, b Segment) bool {
	return a.Center.Distance(b.Center) < RadialTolerance && math.Abs(a.Radius-b.Radius) < RadialTolerance
}

// curveCurve handles Arc x Arc, Arc x Circle, and Circle x Circle.
func curveCurve(s, other Segment) ([]Point, Flag) {
	if s.Kind == KindCircle && other.Kind == KindCircle {
		return circleCircle(s.Center, s.Radius, other.Center, other.Radius)
	}

	if sameCircle(s, other) {
		return edgeOverlapCurves(s, other)
	}

	pts, flag := circleCircle(s.Center, s.Radius, other.Center, other.Radius)
	if flag != FlagNone || len(pts) == 0 {
		return nil, flag
	}

	var kept []Point
	for _, p := range pts {
		theta := s.Center.Angle(p)
		if !s.InAngularInterval(theta) {
			continue
		}
		theta = other.Center.Angle(p)
		if !other.InAngularInterval(theta) {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return nil, FlagNone
	}

	sortByAngle(kept, s)
	return kept, FlagNone
}

// edgeOverlapCurves reports the two endpoints bounding the enveloped arc
// when two curves on the same underlying circle overlap. If one side is a
// full circle, the other (necessarily an Arc) is the enveloped participant.
// If both are arcs, the one whose angular interval is the subset is
// enveloped; for a genuine partial overlap (neither contains the other)
// the shared sub-interval's boundary points are returned instead.
func edgeOverlapCurves(s, other Segment) ([]Point, Flag) {
	if s.Kind == KindCircle {
		return []Point{other.Start, other.End}, FlagEdgeOverlap
	}
	if other.Kind == KindCircle {
		return []Point{s.Start, s.End}, FlagEdgeOverlap
	}

	switch {
	case s.StartAngle >= other.StartAngle-Epsilon && s.EndAngle <= other.EndAngle+Epsilon:
		return []Point{s.Start, s.End}, FlagEdgeOverlap
	case other.StartAngle >= s.StartAngle-Epsilon && other.EndAngle <= s.EndAngle+Epsilon:
		return []Point{other.Start, other.End}, FlagEdgeOverlap
	default:
		lo := math.Max(s.StartAngle, other.StartAngle)
		hi := math.Min(s.EndAngle, other.EndAngle)
		if lo >= hi-Epsilon {
			return nil, FlagNone
		}
		return []Point{s.PointAt(lo), s.PointAt(hi)}, FlagEdgeOverlap
	}
}

// circleCircle implements the radical-line construction of two full circles
// with centers c1, c2 and radii r1, r2.
func circleCircle(c1 Point, r1 float64, c2 Point, r2 float64) ([]Point, Flag) {
	d := c1.Distance(c2)

	if d < RadialTolerance && math.Abs(r1-r2) < RadialTolerance {
		return nil, FlagCoincident
	}
	if d > r1+r2+RadialTolerance {
		return nil, FlagNone
	}
	if math.Abs(d-(r1+r2)) < RadialTolerance {
		return nil, FlagTangent
	}
	if d <= r1-r2 {
		return nil, FlagOtherInsideSegment
	}
	if d <= r2-r1 {
		return nil, FlagSegmentInsideOther
	}

	a := (d*d - r2*r2 + r1*r1) / (2 * d)
	h2 := r1*r1 - a*a
	if h2 < 0 {
		h2 = 0
	}
	h := math.Sqrt(h2)

	dir := c2.Sub(c1).Scale(1 / d)
	// perpCW rotates dir by -90 degrees: walking from c1 in direction dir and
	// then turning right reaches perpCW first, giving a CW traversal
	// ordering on the first circle.
	perpCW := Point{X: dir.Y, Y: -dir.X}
	mid := c1.Add(dir.Scale(a))

	p1 := mid.Add(perpCW.Scale(h))
	p2 := mid.Sub(perpCW.Scale(h))
	return []Point{p1, p2}, FlagNone
}

// arcLine handles Arc/Circle x Line, regardless of which side of Intersect
// each participant came in on.
func arcLine(curve, line Segment) ([]Point, Flag) {
	d := line.Start.Sub(line.End)
	e := line.End.Sub(curve.Center)

	A := d.Dot(d)
	B := 2 * d.Dot(e)
	C := e.Dot(e) - curve.Radius*curve.Radius

	disc := B*B - 4*A*C
	if disc < 0 {
		return nil, FlagNone
	}
	if math.Abs(disc) < RadialTolerance {
		return nil, FlagTangent
	}

	sq := math.Sqrt(disc)
	roots := [2]float64{(-B + sq) / (2 * A), (-B - sq) / (2 * A)}

	var kept []Point
	for _, t := range roots {
		if t < -Epsilon || t > 1+Epsilon {
			continue
		}
		p := line.End.Add(d.Scale(t))
		theta := curve.Center.Angle(p)
		if !curve.InAngularInterval(theta) {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return nil, FlagNone
	}

	sortByAngle(kept, curve)
	return kept, FlagNone
}

// lineLine solves the 2x2 parametric system for two line segments.
func lineLine(s, other Segment) ([]Point, Flag) {
	d1 := s.End.Sub(s.Start)
	d2 := other.End.Sub(other.Start)

	denom := d1.X*d2.Y - d1.Y*d2.X
	if math.Abs(denom) < Epsilon {
		return parallelLines(s, other, d1)
	}

	diff := other.Start.Sub(s.Start)
	t := (diff.X*d2.Y - diff.Y*d2.X) / denom
	u := (diff.X*d1.Y - diff.Y*d1.X) / denom

	if t < -Epsilon || t > 1+Epsilon || u < -Epsilon || u > 1+Epsilon {
		return nil, FlagNone
	}
	return []Point{s.Start.Add(d1.Scale(t))}, FlagNone
}

// parallelLines handles the denom ~ 0 branch of lineLine: either the lines
// are parallel but distinct (no intersection) or collinear, in which case
// an overlapping sub-range is reported via FlagEdgeOverlap.
func parallelLines(s, other Segment, dir Point) ([]Point, Flag) {
	// Collinearity test: the vector from s.Start to other.Start must be
	// parallel to dir as well.
	toOther := other.Start.Sub(s.Start)
	cross := dir.X*toOther.Y - dir.Y*toOther.X
	length := math.Hypot(dir.X, dir.Y)
	if length == 0 || math.Abs(cross)/length > Epsilon {
		return nil, FlagNone
	}

	// Project every endpoint onto the s direction to find the overlap.
	proj := func(p Point) float64 {
		return p.Sub(s.Start).Dot(dir) / dir.Dot(dir)
	}
	t0, t1 := 0.0, 1.0
	u0, u1 := proj(other.Start), proj(other.End)
	if u0 > u1 {
		u0, u1 = u1, u0
	}

	lo := math.Max(t0, u0)
	hi := math.Min(t1, u1)
	if lo >= hi-Epsilon {
		return nil, FlagNone
	}

	return []Point{s.Start.Add(dir.Scale(lo)), s.Start.Add(dir.Scale(hi))}, FlagEdgeOverlap
}

// sortByAngle sorts pts by their angular position around ref's center,
// measured counter-clockwise from ref.StartAngle.
func sortByAngle(pts []Point, ref Segment) {
	key := func(p Point) float64 {
		theta := ref.Center.Angle(p)
		if theta < ref.StartAngle {
			theta += 2 * math.Pi
		}
		return theta
	}
	sort.Slice(pts, func(i, j int) bool { return key(pts[i]) < key(pts[j]) })
}
