package outline

import "github.com/ironplane/ironplane/pkg/geom"

// State is the outline's position in its Open -> Closed -> Finalized
// lifecycle.
type State int

const (
	// StateOpen accepts AddSegment calls; no other operation is valid.
	StateOpen State = iota
	// StateClosed is a verified cyclic chain; boolean operations and reads
	// are valid, further AddSegment calls are not.
	StateClosed
	// StateFinalized is terminal: read-only, set by Finalize.
	StateFinalized
)

// String implements fmt.Stringer for diagnostic output.
func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	case StateFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Orientation is the winding direction of a closed outline.
type Orientation int

const (
	// OrientationCCW is counter-clockwise winding.
	OrientationCCW Orientation = iota
	// OrientationCW is clockwise winding.
	OrientationCW
)

// Outline is an ordered cyclic chain of segments forming a closed planar
// loop. Self-intersection is the caller's responsibility to avoid; this
// package never checks for it (see the package doc on boolean operations).
type Outline struct {
	segments    []geom.Segment
	state       State
	orientation Orientation
	topLeft     geom.Point
	bottomRight geom.Point

	// holes records inner boundaries produced by a Subtract that left a
	// fully-enclosed hole (the S4 scenario): a circle or outline wholly
	// inside self with zero intersections. Each hole is itself a closed
	// outline, oriented opposite self.
	holes []*Outline
}

// New starts building an outline in the Open state.
func New() *Outline {
	return &Outline{state: StateOpen}
}

// FromSegments is a convenience constructor that appends every segment in
// order and then closes the outline.
func FromSegments(segs []geom.Segment) (*Outline, error) {
	o := New()
	for _, s := range segs {
		if err := o.AddSegment(s); err != nil {
			return nil, err
		}
	}
	if err := o.Close(); err != nil {
		return nil, err
	}
	return o, nil
}

// AddSegment appends seg to the open end of the chain. It fails with
// ErrWrongState if the outline is not Open, and ErrDiscontinuous if seg's
// start does not coincide (within geom.Epsilon) with the chain's current
// open end.
func (o *Outline) AddSegment(seg geom.Segment) error {
	if o.state != StateOpen {
		return ErrWrongState
	}
	if len(o.segments) > 0 {
		last := o.segments[len(o.segments)-1]
		if !last.End.Equal(seg.Start) {
			return ErrDiscontinuous
		}
	}
	o.segments = append(o.segments, seg)
	return nil
}

// Close verifies the chain is cyclic (last segment's end meets first
// segment's start), computes orientation and the bounding rectangle, and
// transitions to Closed. It fails with ErrNotClosed if the chain is empty
// or not cyclic, and ErrWrongState if not currently Open.
func (o *Outline) Close() error {
	if o.state != StateOpen {
		return ErrWrongState
	}
	if len(o.segments) == 0 {
		return ErrNotClosed
	}
	first := o.segments[0]
	last := o.segments[len(o.segments)-1]
	if !last.End.Equal(first.Start) {
		return ErrNotClosed
	}

	o.orientation = computeOrientation(o.segments)
	o.topLeft, o.bottomRight = computeBounds(o.segments)
	o.state = StateClosed
	return nil
}

// Finalize transitions a Closed outline to Finalized, after which it is
// read-only. It fails with ErrWrongState if the outline is Open.
func (o *Outline) Finalize() error {
	if o.state == StateOpen {
		return ErrWrongState
	}
	o.state = StateFinalized
	return nil
}

// State reports the outline's current lifecycle state.
func (o *Outline) State() State { return o.state }

// Orientation reports the outline's winding direction. Only meaningful once
// Closed.
func (o *Outline) Orientation() Orientation { return o.orientation }

// Segments returns the outline's chain of segments in traversal order. The
// returned slice must not be mutated by the caller.
func (o *Outline) Segments() []geom.Segment { return o.segments }

// Holes returns the nested inner-boundary outlines produced by prior
// Subtract operations. The returned slice must not be mutated by the caller.
func (o *Outline) Holes() []*Outline { return o.holes }

// Bounds returns the outline's cached axis-aligned bounding rectangle,
// computed at Close time. Calling Bounds before Close returns the zero
// rectangle.
func (o *Outline) Bounds() (topLeft, bottomRight geom.Point) {
	return o.topLeft, o.bottomRight
}

func computeBounds(segs []geom.Segment) (topLeft, bottomRight geom.Point) {
	if len(segs) == 0 {
		return geom.Point{}, geom.Point{}
	}
	topLeft, bottomRight = segs[0].Bounds()
	for _, s := range segs[1:] {
		tl, br := s.Bounds()
		if tl.X < topLeft.X {
			topLeft.X = tl.X
		}
		if tl.Y > topLeft.Y {
			topLeft.Y = tl.Y
		}
		if br.X > bottomRight.X {
			bottomRight.X = br.X
		}
		if br.Y < bottomRight.Y {
			bottomRight.Y = br.Y
		}
	}
	return topLeft, bottomRight
}
