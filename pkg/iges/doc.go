// Package iges implements the entity-graph manager (EG): the model
// container for an IGES file's directory-entry/parameter-data records, the
// two-phase load (parse, then associate), reference-counted parent/child
// tracking, transform composition, rescaling, and topological write-out.
//
// # Scope
//
// This package owns the graph; it does not own the IGES character grammar.
// [RecordIterator] and [RecordSink] are the seam to an external
// parser/serializer that tokenizes the fixed-width Start/Global/Directory
// Entry/Parameter Data/Terminate sections — this package only ever sees
// structured [DirectoryEntry]/[PDRecord] values, never raw bytes.
//
// Concrete entity-type implementations (Transformation Matrix, Composite
// Curve, Trimmed Surface, and so on) live in pkg/iges/entities; this
// package defines the [Entity] capability interface they implement and the
// [Model] that owns and drives them.
//
// # Two-phase load
//
// [Model.LoadFromRecords] first creates and populates every entity from its
// DE/PD records (pointer fields are retained as raw sequence-number
// integers), then runs the associate pass: each entity resolves its
// pointer fields into handles via [Model.HandleForSequence] and registers
// itself as a parent of each referenced entity. Associate is idempotent and
// recursion-safe — an entity's Associate implementation may call
// [Model.AssociateEntity] on a dependency before itself, which is exactly
// what an E102 Composite Curve does for the E142 it depends on when the
// E142's DE record appears later in the file.
//
// # Concurrency
//
// A Model, like an outline.Outline, is single-owner: no method is safe for
// concurrent use on the same Model from multiple goroutines. Separate
// Models are fully independent.
package iges
