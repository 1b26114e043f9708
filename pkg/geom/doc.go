// Package geom provides the planar geometric primitives that feed the
// outline engine (pkg/outline) and, ultimately, the IGES entity graph
// (pkg/iges).
//
// # Overview
//
// Every primitive lives at z = 0. A [Point] is an ordered triple compared
// with tolerance, never exact equality. A [Segment] is one of three kinds —
// line, arc, or circle — constructed through [NewLine], [NewArc], or
// [NewCircle] and, once constructed, immutable.
//
// # Intersection
//
// [Segment.Intersect] dispatches on the pair of kinds and returns both the
// intersection points (if any) and a [Flag] classifying degenerate
// configurations (tangency, coincidence, containment, edge overlap).
// Intersection never panics or returns an error — geometric degeneracy is
// communicated entirely through the Flag, per the package's determinism
// contract.
//
// # Tolerances
//
// Two tolerances govern every comparison in this package:
//
//   - Epsilon (default 1e-8): point/coordinate equality.
//   - RadialTolerance (default 1e-3): how far an arc's endpoints may stray
//     from its nominal radius before construction fails.
//
// Both are package-level variables that a program may assign at startup;
// pkg/config does not set them. They are not safe to change concurrently
// with use.
//
// # Concurrency
//
// All types in this package are value types with no shared mutable state;
// they may be freely copied and used from multiple goroutines as long as no
// goroutine mutates the package-level tolerance variables concurrently with
// use elsewhere.
package geom
