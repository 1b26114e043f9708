package geom

import "errors"

// Sentinel errors returned by the constructors in this package. Callers at
// the CLI/HTTP boundary classify these with pkg/ierrors.Classify.
var (
	// ErrDegenerateGeometry is returned when a segment would have zero
	// length, coincident points where distinctness is required, or
	// mismatched radii between an arc's endpoints.
	ErrDegenerateGeometry = errors.New("geom: degenerate geometry")

	// ErrNonPlanar is returned when a coordinate has z != 0.
	ErrNonPlanar = errors.New("geom: non-planar point")
)
