package outline

import "github.com/ironplane/ironplane/pkg/geom"

// pairIntersections computes every intersection point between the segments
// of a and b, deduplicated within geom.Epsilon, along with whether any pair
// reported a degenerate flag (Tangent, Coincident, or EdgeOverlap) other
// than a plain transversal crossing. Degenerate flags always make the
// boolean operation invalid — a tangency is itself exactly one point of
// contact, and an edge overlap is not a finite point set — so callers
// short-circuit to ErrInvalidIntersection whenever degenerate is true,
// without needing the (unreported) tangent point itself.
func pairIntersections(a, b *Outline) (points []geom.Point, degenerate bool) {
	for _, segA := range a.segments {
		for _, segB := range b.segments {
			pts, flag := segA.Intersect(segB)
			switch flag {
			case geom.FlagNone:
				for _, p := range pts {
					points = appendUnique(points, p)
				}
			case geom.FlagTangent, geom.FlagCoincident, geom.FlagEdgeOverlap:
				degenerate = true
			default:
				// FlagSegmentInsideOther / FlagOtherInsideSegment carry no
				// points and do not by themselves invalidate the op; nesting
				// is resolved separately via Contains sampling.
			}
		}
	}
	return points, degenerate
}

func appendUnique(points []geom.Point, p geom.Point) []geom.Point {
	for _, existing := range points {
		if existing.Equal(p) {
			return points
		}
	}
	return append(points, p)
}
