package outline

import "errors"

// Sentinel errors returned by this package's constructors and operations.
// Callers at the CLI/HTTP boundary classify these with pkg/ierrors.Classify.
var (
	// ErrDiscontinuous is returned by AddSegment when the new segment's
	// start does not coincide with the chain's current open end.
	ErrDiscontinuous = errors.New("outline: discontinuous chain")

	// ErrNotClosed is returned by Close when the last segment's end does
	// not coincide with the first segment's start, or the chain is empty.
	ErrNotClosed = errors.New("outline: chain is not cyclic")

	// ErrWrongState is returned when an operation is attempted in a state
	// that does not permit it (e.g. AddSegment after Close, or a boolean
	// operation before Close).
	ErrWrongState = errors.New("outline: operation not permitted in current state")

	// ErrInvalidIntersection is returned by a boolean operation when the
	// two outlines intersect at a point count other than exactly zero or
	// exactly two, or the intersection is an edge overlap/tangency rather
	// than a transversal crossing.
	ErrInvalidIntersection = errors.New("outline: invalid intersection for boolean operation")
)
