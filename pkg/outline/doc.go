// Package outline implements the planar outline engine: closed, oriented
// chains of pkg/geom segments supporting point-in-outline tests and boolean
// composition, per the "exactly zero or two unique intersections" policy.
//
// # Lifecycle
//
// An [Outline] moves through three states: Open (segments are still being
// appended via [Outline.AddSegment]), Closed ([Outline.Close] has verified
// the chain is cyclic and computed its orientation and bounding box), and
// Finalized ([Outline.Finalize], terminal — read-only from then on). Boolean
// operations ([Outline.Add], [Outline.Subtract], [Outline.AddCircle],
// [Outline.SubtractCircle]) are only permitted once Closed.
//
// # Boolean composition
//
// Composition never attempts general polygon clipping. It requires the two
// outlines to intersect at exactly zero points (one wholly inside the
// other, or wholly disjoint) or exactly two points (split-and-stitch). Any
// other configuration — one point, three or more points, or an edge overlap
// — fails with [ErrInvalidIntersection]; this scopes out self-intersection
// detection and general MCAD robustness by design, not by omission.
//
// # Extrusion
//
// [Outline.ExtrudeToTrimmedSurfaces] is the seam between this package and
// pkg/iges: it walks the outline's segments (and any nested holes) and
// populates an [*iges.Model] with the side, top, and bottom trimmed
// surfaces of the solid obtained by extruding the outline between two z
// planes.
package outline
