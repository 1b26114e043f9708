package outline

import "github.com/ironplane/ironplane/pkg/geom"

// computeOrientation returns the winding direction of a closed chain via
// the shoelace sum.
//
// A plain endpoint-only shoelace sum is unreliable whenever a segment is an
// arc that bulges well past the chord joining its endpoints: the sign of
// the sum can flip even though the visual winding hasn't. This package
// resolves that by always including each segment's midpoint (see
// geom.Segment.Midpoint, which samples the angular midpoint for arcs and
// circles) as an extra vertex in the sum, not just for "large" arcs —
// there's no reliable small/large threshold to gate the sampling on, and
// the extra vertex costs nothing for a line (its midpoint lies on the
// chord, contributing zero net signed area).
func computeOrientation(segs []geom.Segment) Orientation {
	var sum float64
	for _, s := range segs {
		sum += shoelaceTerm(s.Start, s.Midpoint())
		sum += shoelaceTerm(s.Midpoint(), s.End)
	}
	if sum < 0 {
		return OrientationCW
	}
	return OrientationCCW
}

// shoelaceTerm returns one cross-product term of the shoelace formula for
// the edge from a to b.
func shoelaceTerm(a, b geom.Point) float64 {
	return a.X*b.Y - b.X*a.Y
}
