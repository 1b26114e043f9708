// Package pkg has no Go files of its own; this file only documents how
// ironplane's library packages fit together.
//
// # Overview
//
// ironplane turns a planar board outline description into an IGES CAD
// interchange file. The pkg directory is organized into three areas:
//
//  1. Planar geometry ([geom], [outline])
//  2. IGES entity graph ([iges], [iges/entities], [iges/cardio])
//  3. Service plumbing ([boardspec], [boardbuild], [boardstore], [modelcache], [config])
//
// # Architecture
//
// The typical data flow through ironplane:
//
//	boardspec JSON
//	         ↓
//	    [boardspec] package (parse into an [outline.Outline])
//	         ↓
//	    [outline] package (boolean ops, extrusion to trimmed surfaces)
//	         ↓
//	    [iges] package (entity graph: associate, rescale, validate, write-out)
//	         ↓
//	    [iges/cardio] package (fixed-width card rendering)
//	         ↓
//	    .igs file
//
// [boardbuild] wires the last four steps into a single call used by both
// internal/cli and internal/api. [boardstore] persists board records
// (spec + built IGES); [modelcache] caches the IGES render by spec content
// hash so an unchanged board never re-extrudes.
//
// # Main Packages
//
// ## Planar Geometry
//
// [geom] - Points and segments (line, arc, circle) with tolerance-based
// equality and pairwise intersection classification.
//
// [outline] - Closed planar chains: an Open → Closed → Finalized lifecycle,
// boolean add/subtract with hole tracking, and extrusion to IGES trimmed
// surfaces.
//
// ## IGES Entity Graph
//
// [iges] - The Model: entity registration, two-phase load/associate,
// dependency classification (physical/logical/none), cycle detection,
// rescale, validation, and topological write-out.
//
// [iges/entities] - Concrete entity types (Line, Circular Arc, Composite
// Curve, Plane, Rational B-Spline Surface, Trimmed Surface, the BREP
// family, Transformation Matrix, Color, Subfigure Definition).
//
// [iges/cardio] - Renders a Model to the fixed 80-column IGES card format.
//
// ## Service Plumbing
//
// [boardspec] - JSON import/export for board outline documents.
//
// [boardbuild] - The extrude → validate → render pipeline.
//
// [boardstore] - Durable board record storage (in-memory or MongoDB).
//
// [modelcache] - Content-addressed caching of rendered IGES/DOT output
// (null, file, or Redis backed).
//
// [config] - TOML configuration for the ironplaned service.
package pkg
