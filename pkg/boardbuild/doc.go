// Package boardbuild wires boardspec, outline, and iges together into the
// single build pipeline both internal/cli's "build" command and
// internal/api's board handlers need: extrude a board outline into
// trimmed surfaces, validate the resulting entity graph, and render it to
// the fixed-width IGES card format.
package boardbuild
