package outline

import "github.com/ironplane/ironplane/pkg/geom"

// requireClosed returns ErrWrongState unless o is Closed or Finalized —
// the only states boolean operations are permitted in.
func requireClosed(o *Outline) error {
	if o.state == StateOpen {
		return ErrWrongState
	}
	return nil
}

// clone returns a shallow copy of o in the Closed state, sharing segment
// and hole slices with the original (segments and holes are themselves
// immutable once an outline is closed, so sharing is safe).
func (o *Outline) clone() *Outline {
	c := &Outline{
		segments:    o.segments,
		state:       StateClosed,
		orientation: o.orientation,
		topLeft:     o.topLeft,
		bottomRight: o.bottomRight,
		holes:       o.holes,
	}
	return c
}

// Subtract returns a new outline equal to self with other's area removed.
// See the package doc for the exactly-zero-or-two-points policy; any other
// configuration fails with ErrInvalidIntersection.
func (o *Outline) Subtract(other *Outline) (*Outline, error) {
	if err := requireClosed(o); err != nil {
		return nil, err
	}
	if err := requireClosed(other); err != nil {
		return nil, err
	}

	points, degenerate := pairIntersections(o, other)
	if degenerate {
		return nil, ErrInvalidIntersection
	}

	switch len(points) {
	case 0:
		otherInsideSelf := o.Contains(sampleVertex(other))
		if otherInsideSelf {
			result := o.clone()
			hole := other.clone()
			hole.orientation = opposite(o.orientation)
			result.holes = append(append([]*Outline{}, o.holes...), hole)
			return result, nil
		}
		return nil, ErrInvalidIntersection
	case 2:
		return stitchSubtract(o, other, points[0], points[1])
	default:
		return nil, ErrInvalidIntersection
	}
}

// Add returns a new outline equal to the union of self and other. Per the
// package policy, a disjoint other is a no-op (this data structure
// represents a single closed loop, so a genuine union producing two
// disjoint bodies cannot be expressed) and an other wholly inside self
// fails, since merging it would change nothing geometrically meaningful
// but the caller's intent ("add a piece already covered") is almost always
// a mistake worth surfacing.
func (o *Outline) Add(other *Outline) (*Outline, error) {
	if err := requireClosed(o); err != nil {
		return nil, err
	}
	if err := requireClosed(other); err != nil {
		return nil, err
	}

	points, degenerate := pairIntersections(o, other)
	if degenerate {
		return nil, ErrInvalidIntersection
	}

	switch len(points) {
	case 0:
		if o.Contains(sampleVertex(other)) {
			return nil, ErrInvalidIntersection
		}
		return o.clone(), nil
	case 2:
		return stitchAdd(o, other, points[0], points[1])
	default:
		return nil, ErrInvalidIntersection
	}
}

// AddCircle is a convenience wrapper for Add with a single-circle outline.
func (o *Outline) AddCircle(circle geom.Segment) (*Outline, error) {
	other, err := FromSegments([]geom.Segment{circle})
	if err != nil {
		return nil, err
	}
	return o.Add(other)
}

// SubtractCircle is a convenience wrapper for Subtract with a single-circle
// outline — the common case of cutting a mounting hole from a board.
func (o *Outline) SubtractCircle(circle geom.Segment) (*Outline, error) {
	other, err := FromSegments([]geom.Segment{circle})
	if err != nil {
		return nil, err
	}
	return o.Subtract(other)
}

// Split divides self into two open chains at the two given points, which
// must each lie on self's perimeter. It is exposed directly for callers
// that need the raw split (e.g. board outlines authored as two mating
// halves) rather than a boolean composition.
func (o *Outline) Split(p1, p2 geom.Point) (chainFwd, chainBack []geom.Segment, err error) {
	if err := requireClosed(o); err != nil {
		return nil, nil, err
	}
	loc1, ok := locate(o.segments, p1)
	if !ok {
		return nil, nil, ErrInvalidIntersection
	}
	loc2, ok := locate(o.segments, p2)
	if !ok {
		return nil, nil, ErrInvalidIntersection
	}
	return splitChain(o.segments, loc1, loc2)
}

func sampleVertex(o *Outline) geom.Point {
	return o.segments[0].Start
}

func opposite(o Orientation) Orientation {
	if o == OrientationCW {
		return OrientationCCW
	}
	return OrientationCW
}

// stitchSubtract implements the two-intersection subtract case: the
// portion of self outside other, joined with the portion of other inside
// self traversed in reverse.
func stitchSubtract(self, other *Outline, p1, p2 geom.Point) (*Outline, error) {
	selfLoc1, ok := locate(self.segments, p1)
	if !ok {
		return nil, ErrInvalidIntersection
	}
	selfLoc2, ok := locate(self.segments, p2)
	if !ok {
		return nil, ErrInvalidIntersection
	}
	otherLoc1, ok := locate(other.segments, p1)
	if !ok {
		return nil, ErrInvalidIntersection
	}
	otherLoc2, ok := locate(other.segments, p2)
	if !ok {
		return nil, ErrInvalidIntersection
	}

	selfFwd, selfBack, err := splitChain(self.segments, selfLoc1, selfLoc2)
	if err != nil {
		return nil, err
	}
	otherFwd, otherBack, err := splitChain(other.segments, otherLoc1, otherLoc2)
	if err != nil {
		return nil, err
	}

	selfOutsideChain := selfBack
	if chainOutside(self, selfFwd, other) {
		selfOutsideChain = selfFwd
	}
	otherInsideChain := otherFwd
	if chainOutside(other, otherFwd, self) {
		otherInsideChain = otherBack
	}

	combined := append(append([]geom.Segment{}, selfOutsideChain...), reverseChain(otherInsideChain)...)

	result := New()
	for _, seg := range combined {
		if err := result.AddSegment(seg); err != nil {
			return nil, err
		}
	}
	if err := result.Close(); err != nil {
		return nil, err
	}
	result.holes = self.holes
	return result, nil
}

// stitchAdd implements the two-intersection add case: the portion of self
// outside other, joined with the portion of other outside self.
func stitchAdd(self, other *Outline, p1, p2 geom.Point) (*Outline, error) {
	selfLoc1, ok := locate(self.segments, p1)
	if !ok {
		return nil, ErrInvalidIntersection
	}
	selfLoc2, ok := locate(self.segments, p2)
	if !ok {
		return nil, ErrInvalidIntersection
	}
	otherLoc1, ok := locate(other.segments, p1)
	if !ok {
		return nil, ErrInvalidIntersection
	}
	otherLoc2, ok := locate(other.segments, p2)
	if !ok {
		return nil, ErrInvalidIntersection
	}

	selfFwd, selfBack, err := splitChain(self.segments, selfLoc1, selfLoc2)
	if err != nil {
		return nil, err
	}
	otherFwd, otherBack, err := splitChain(other.segments, otherLoc1, otherLoc2)
	if err != nil {
		return nil, err
	}

	selfOutside := selfFwd
	if chainOutside(self, selfBack, other) {
		selfOutside = selfBack
	}
	otherOutside := otherFwd
	if chainOutside(other, otherBack, self) {
		otherOutside = otherBack
	}

	combined := append(append([]geom.Segment{}, selfOutside...), otherOutside...)

	result := New()
	for _, seg := range combined {
		if err := result.AddSegment(seg); err != nil {
			return nil, err
		}
	}
	if err := result.Close(); err != nil {
		return nil, err
	}
	return result, nil
}

// chainOutside reports whether chain (a partial open chain of parent's
// segments) lies outside other, sampled at the chain's first segment's
// midpoint.
func chainOutside(parent *Outline, chain []geom.Segment, other *Outline) bool {
	if len(chain) == 0 {
		return false
	}
	sample := chain[0].Midpoint()
	return !other.Contains(sample)
}

func reverseChain(segs []geom.Segment) []geom.Segment {
	out := make([]geom.Segment, len(segs))
	for i, s := range segs {
		out[len(segs)-1-i] = s.Reversed()
	}
	return out
}
