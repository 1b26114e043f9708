package geom

import "math"

// RadialTolerance bounds how far an arc's endpoints may stray from the
// circle implied by its center and nominal radius before construction
// fails with ErrDegenerateGeometry. It also bounds the absolute radial
// tolerance invariant of Segment (see package doc). A program may assign it
// at startup; pkg/config does not set it.
var RadialTolerance = 1e-3

// Kind distinguishes the three Segment variants. A Segment's Kind is fixed
// at construction and never changes.
type Kind int

const (
	// KindLine is a straight segment between two distinct points.
	KindLine Kind = iota
	// KindArc is a circular arc strictly shorter than a full turn.
	KindArc
	// KindCircle is a full circle; Start and End both equal
	// Center + (Radius, 0, 0).
	KindCircle
)

// String implements fmt.Stringer for diagnostic output.
func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindArc:
		return "arc"
	case KindCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// Segment is a planar (z = 0) primitive of one of three kinds. Only the
// fields relevant to Kind are meaningful; the others are zero. A Segment's
// Kind is immutable after construction — there is deliberately no setter,
// only the NewLine/NewArc/NewCircle constructors.
//
// For Arc, StartAngle and EndAngle are always expressed in the
// counter-clockwise convention with EndAngle > StartAngle; CW records
// whether the outline traverses the arc clockwise, independent of how the
// angular interval is stored.
type Segment struct {
	Kind Kind

	// Line and Arc endpoints. For Circle, Start == End == Center + (r, 0, 0).
	Start, End Point

	// Arc and Circle only.
	Center             Point
	Radius             float64
	StartAngle, EndAngle float64
	CW                 bool
}

// NewLine constructs a line segment. It fails with ErrDegenerateGeometry if
// start and end coincide within Epsilon, or ErrNonPlanar if either point has
// z != 0.
func NewLine(start, end Point) (Segment, error) {
	if start.Z != 0 || end.Z != 0 {
		return Segment{}, ErrNonPlanar
	}
	if start.Equal(end) {
		return Segment{}, ErrDegenerateGeometry
	}
	return Segment{Kind: KindLine, Start: start, End: end}, nil
}

// NewArc constructs an arc (or, if start and end coincide, a full circle)
// about center. cw records the traversal direction an enclosing outline
// uses; it does not affect the stored angular interval, which is always
// normalized to the counter-clockwise convention.
//
// NewArc fails with ErrNonPlanar if any point has z != 0, and with
// ErrDegenerateGeometry if |start-center| - |end-center| exceeds
// RadialTolerance.
func NewArc(center, start, end Point, cw bool) (Segment, error) {
	if center.Z != 0 || start.Z != 0 || end.Z != 0 {
		return Segment{}, ErrNonPlanar
	}

	rStart := center.Distance(start)
	rEnd := center.Distance(end)
	if math.Abs(rStart-rEnd) > RadialTolerance {
		return Segment{}, ErrDegenerateGeometry
	}
	if rStart == 0 {
		return Segment{}, ErrDegenerateGeometry
	}

	if start.Equal(end) {
		return NewCircle(center, rStart)
	}

	radius := (rStart + rEnd) / 2
	a0 := center.Angle(start)
	a1 := center.Angle(end)
	if a1 <= a0 {
		a1 += 2 * math.Pi
	}

	return Segment{
		Kind:       KindArc,
		Start:      start,
		End:        end,
		Center:     center,
		Radius:     radius,
		StartAngle: a0,
		EndAngle:   a1,
		CW:         cw,
	}, nil
}

// NewCircle constructs a full circle about center with the given radius.
// It fails with ErrDegenerateGeometry if radius is not strictly positive, or
// ErrNonPlanar if center has z != 0. The canonical start/end point is
// center + (radius, 0, 0).
func NewCircle(center Point, radius float64) (Segment, error) {
	if center.Z != 0 {
		return Segment{}, ErrNonPlanar
	}
	if radius <= 0 {
		return Segment{}, ErrDegenerateGeometry
	}
	canonical := Point{X: center.X + radius, Y: center.Y, Z: center.Z}
	return Segment{
		Kind:       KindCircle,
		Start:      canonical,
		End:        canonical,
		Center:     center,
		Radius:     radius,
		StartAngle: 0,
		EndAngle:   2 * math.Pi,
	}, nil
}

// InAngularInterval reports whether angle theta (in [0, 2π)) lies within the
// segment's [StartAngle, EndAngle] interval, normalizing theta by adding 2π
// when it falls short of StartAngle. Circles accept any angle.
func (s Segment) InAngularInterval(theta float64) bool {
	if s.Kind == KindCircle {
		return true
	}
	if theta < s.StartAngle {
		theta += 2 * math.Pi
	}
	return theta >= s.StartAngle-Epsilon && theta <= s.EndAngle+Epsilon
}

// PointAt returns the point on the segment at the given parameter t.
// For Line, t in [0, 1] interpolates start->end. For Arc/Circle, t is an
// absolute angle in radians (typically produced by InAngularInterval's
// normalization).
func (s Segment) PointAt(t float64) Point {
	switch s.Kind {
	case KindLine:
		return s.Start.Scale(1 - t).Add(s.End.Scale(t))
	default:
		return Point{
			X: s.Center.X + s.Radius*math.Cos(t),
			Y: s.Center.Y + s.Radius*math.Sin(t),
			Z: s.Center.Z,
		}
	}
}

// Midpoint returns a representative interior point of the segment: the
// parametric midpoint for a line, and the point at the angular midpoint for
// an arc or circle. Used by pkg/outline's orientation computation to sample
// arcs rather than relying solely on endpoints.
func (s Segment) Midpoint() Point {
	switch s.Kind {
	case KindLine:
		return s.PointAt(0.5)
	default:
		return s.PointAt((s.StartAngle + s.EndAngle) / 2)
	}
}

// Reversed returns the segment traversed in the opposite direction: Start
// and End are swapped, and for arcs CW is inverted while the stored angular
// interval (always CCW-normalized) is left untouched — traversal order is
// a property of the chain, not of the stored geometry.
func (s Segment) Reversed() Segment {
	r := s
	r.Start, r.End = s.End, s.Start
	if s.Kind == KindArc {
		r.CW = !s.CW
	}
	return r
}
