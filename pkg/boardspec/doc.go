// Package boardspec provides JSON import and export for board outlines.
//
// # Overview
//
// A board spec is ironplane's authoring format: a JSON document describing
// one outer outline, zero or more hole outlines cut from it, and the Z
// range to extrude between. This lets a board be authored as data (by a
// script, a UI, or hand-edited) without writing Go, then turned into an
// Entity Graph with a single pkg/outline.ExtrudeToTrimmedSurfaces call.
//
// # JSON Format
//
//	{
//	  "outline": {
//	    "segments": [
//	      {"kind": "line", "start": {"x": 0, "y": 0}, "end": {"x": 10, "y": 0}},
//	      {"kind": "arc", "center": {"x": 10, "y": 5}, "start": {"x": 10, "y": 0}, "end": {"x": 10, "y": 10}, "cw": false},
//	      {"kind": "line", "start": {"x": 10, "y": 10}, "end": {"x": 0, "y": 10}},
//	      {"kind": "line", "start": {"x": 0, "y": 10}, "end": {"x": 0, "y": 0}}
//	    ]
//	  },
//	  "holes": [
//	    {"segments": [{"kind": "circle", "center": {"x": 5, "y": 5}, "radius": 1}]}
//	  ],
//	  "bottom_z": 0,
//	  "top_z": 1.6
//	}
//
// Segment kind is one of "line", "arc", or "circle". An arc's cw field
// records the traversal direction used to close the outline; a circle
// needs only center and radius. Units follow the Model's Global.Units the
// caller intends to write out with (typically millimeters, per IGES
// convention for PCB work).
//
// # Import
//
// Use [ImportBoardSpec] to read from a file path, or [ReadBoardSpec] to
// read from any io.Reader. Both construct and Close the outer outline
// (and every hole) via pkg/outline, so a malformed or self-discontinuous
// chain is rejected at import time rather than surfacing later during
// extrusion.
//
// # Export
//
// Use [ExportBoardSpec] to write to a file, or [WriteBoardSpec] to write to
// any io.Writer. The exported outline's segments round-trip exactly: a
// board re-imported after export produces the same geometry.
package boardspec
