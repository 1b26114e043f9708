package geom

import "math"

// Bounds returns the axis-aligned bounding rectangle of the segment as
// (topLeft, bottomRight), where topLeft has the smaller X and larger Y (the
// conventional screen/CAD "upper-left" corner) and bottomRight the larger X
// and smaller Y.
//
// For a Line, the two endpoints are sufficient. For an Arc, the endpoints
// alone can under-count the extent: any of the four axis-aligned extrema
// (center ± (radius, 0) and center ± (0, radius)) that falls within the
// arc's angular interval must also be included. A Circle always includes
// all four.
func (s Segment) Bounds() (topLeft, bottomRight Point) {
	switch s.Kind {
	case KindLine:
		return boundsOf(s.Start, s.End)
	default:
		pts := []Point{s.Start, s.End}
		for _, extreme := range s.axisExtrema() {
			pts = append(pts, extreme)
		}
		return boundsOf(pts...)
	}
}

// axisExtrema returns the subset of the four cardinal points on the
// segment's circle (right, top, left, bottom) that lie within its angular
// interval. For a full circle every extremum qualifies.
func (s Segment) axisExtrema() []Point {
	candidates := []struct {
		angle float64
		pt    Point
	}{
		{0, Point{X: s.Center.X + s.Radius, Y: s.Center.Y, Z: s.Center.Z}},
		{math.Pi / 2, Point{X: s.Center.X, Y: s.Center.Y + s.Radius, Z: s.Center.Z}},
		{math.Pi, Point{X: s.Center.X - s.Radius, Y: s.Center.Y, Z: s.Center.Z}},
		{3 * math.Pi / 2, Point{X: s.Center.X, Y: s.Center.Y - s.Radius, Z: s.Center.Z}},
	}

	var out []Point
	for _, c := range candidates {
		if s.InAngularInterval(c.angle) {
			out = append(out, c.pt)
		}
	}
	return out
}

// boundsOf computes the bounding rectangle spanning every point given.
func boundsOf(pts ...Point) (topLeft, bottomRight Point) {
	if len(pts) == 0 {
		return Point{}, Point{}
	}
	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return Point{X: minX, Y: maxY}, Point{X: maxX, Y: minY}
}
