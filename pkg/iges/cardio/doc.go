// Package cardio renders an [iges.Model] to the fixed 80-column card format
// ANSI/US PRO/IPO-100 IGES files use on disk: a Start section, a Global
// section, then one Directory Entry / Parameter Data pair per entity (in
// the topological order [iges.Model.WriteToRecords] computes), closed out
// by a Terminate section with the section line counts.
//
// cardio implements [iges.RecordSink] against a [bufio.Writer]; it never
// touches entity internals beyond the already-formatted [iges.DirectoryEntry]
// and [iges.PDRecord] values WriteToRecords hands it, matching the decision
// (see pkg/iges/doc.go) to keep the fixed-width card layout out of the
// entity package entirely.
package cardio
