package geom

import "math"

// Epsilon is the default tolerance used by Point equality and by the
// continuity checks in pkg/outline. A program may assign it at startup
// (pkg/config does not), but it must not change concurrently with use.
var Epsilon = 1e-8

// Point is an ordered triple of double-precision coordinates. Planar
// primitives always carry Z == 0; Point itself does not enforce this so
// that Transform (pkg/iges) can compose rigid-body motions that temporarily
// leave the z = 0 plane before projection.
type Point struct {
	X, Y, Z float64
}

// NewPoint constructs a Point, returning ErrNonPlanar if z is non-zero.
// Use this constructor (rather than a Point literal) wherever a planar
// primitive is being built, so the invariant is checked at the boundary.
func NewPoint(x, y, z float64) (Point, error) {
	if z != 0 {
		return Point{}, ErrNonPlanar
	}
	return Point{X: x, Y: y, Z: z}, nil
}

// Add returns the componentwise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns the componentwise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Scale returns p scaled by the scalar s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Sqrt(p.Sub(q).Dot(p.Sub(q)))
}

// Equal reports whether p and q are equal within Epsilon on every axis.
func (p Point) Equal(q Point) bool {
	return math.Abs(p.X-q.X) < Epsilon && math.Abs(p.Y-q.Y) < Epsilon && math.Abs(p.Z-q.Z) < Epsilon
}

// IsNaN reports whether any coordinate of p is NaN. Constructors must never
// produce a Point for which this is true.
func (p Point) IsNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z)
}

// Angle returns the angle, in radians and in [0, 2π), of p relative to
// center, measured counter-clockwise from the positive X axis. It is used to
// place a point within an arc's angular interval.
func (center Point) Angle(p Point) float64 {
	a := math.Atan2(p.Y-center.Y, p.X-center.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
