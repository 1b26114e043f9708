package outline

import "github.com/ironplane/ironplane/pkg/geom"

// arcSamples is the number of straight-line subdivisions used to
// approximate an arc or circle for the point-in-outline ray cast. The
// outlines this package targets are PCB board edges, not adversarial
// curves, so a fixed subdivision count is sufficient without per-arc error
// bounds.
const arcSamples = 32

// Contains reports whether p lies inside the outline (and outside every
// hole) using horizontal ray casting. Only meaningful once Closed. Ties —
// the ray passing exactly through a vertex shared by two segments — are
// broken by the standard half-open edge-interval rule, which counts the
// vertex exactly once rather than zero or two times.
func (o *Outline) Contains(p geom.Point) bool {
	if !rayCastContains(polyline(o.segments), p) {
		return false
	}
	for _, hole := range o.holes {
		if hole.Contains(p) {
			return false
		}
	}
	return true
}

// InteriorSample returns a point known to lie inside the outline: the
// centroid of the polyline approximation, nudged toward a hole-free
// location if the plain centroid happens to fall inside a hole. It serves
// callers needing a representative interior point (e.g. for labeling).
func (o *Outline) InteriorSample() geom.Point {
	verts := polyline(o.segments)
	var sum geom.Point
	for _, v := range verts {
		sum = sum.Add(v)
	}
	centroid := sum.Scale(1 / float64(len(verts)))
	if o.Contains(centroid) {
		return centroid
	}
	// Fall back to scanning a small grid within bounds for a point the
	// outline actually contains; boards are rarely so convoluted that the
	// centroid itself lands in a hole, but this keeps the contract honest.
	tl, br := o.Bounds()
	const steps = 20
	for i := 1; i < steps; i++ {
		for j := 1; j < steps; j++ {
			x := tl.X + (br.X-tl.X)*float64(i)/steps
			y := br.Y + (tl.Y-br.Y)*float64(j)/steps
			cand := geom.Point{X: x, Y: y}
			if o.Contains(cand) {
				return cand
			}
		}
	}
	return centroid
}

// polyline flattens a segment chain into a closed vertex list, subdividing
// arcs and circles into arcSamples straight chords.
func polyline(segs []geom.Segment) []geom.Point {
	var verts []geom.Point
	for _, s := range segs {
		switch s.Kind {
		case geom.KindLine:
			verts = append(verts, s.Start)
		default:
			span := s.EndAngle - s.StartAngle
			steps := arcSamples
			for i := 0; i < steps; i++ {
				t := s.StartAngle + span*float64(i)/float64(steps)
				verts = append(verts, s.PointAt(t))
			}
		}
	}
	return verts
}

// rayCastContains implements the standard PNPOLY horizontal ray-casting
// test over a closed polygon's vertex list.
func rayCastContains(verts []geom.Point, p geom.Point) bool {
	inside := false
	n := len(verts)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := verts[i], verts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xIntersect := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}
