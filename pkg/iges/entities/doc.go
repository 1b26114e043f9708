// Package entities implements the concrete IGES entity types the
// entity-graph manager (pkg/iges) needs to load, associate, rescale, and
// write out a board model: Transformation Matrix (124), Composite Curve
// (102), Curve-on-Parametric-Surface (142), Trimmed Surface (144), Color
// (314), Conic Arc (104), Circular Arc (100), Line (110), Plane (108),
// Rational B-Spline Surface (128), Vertex List (502), Edge List (504),
// Loop (508), Face (510), Shell (514), and Subfigure Definition (308).
//
// Every type embeds iges.BaseEntity for handle identity and parent/child
// bookkeeping and implements iges.Entity's behavioral methods itself.
// RegisterAll installs a factory for each type code on a fresh
// *iges.Model; a client that only needs a subset of the type-code universe
// may instead call the individual Register* functions.
package entities

import "github.com/ironplane/ironplane/pkg/iges"

// RegisterAll installs every entity factory defined by this package onto m.
func RegisterAll(m *iges.Model) {
	m.RegisterFactory(iges.TypeCircularArc, NewCircularArc)
	m.RegisterFactory(iges.TypeCompositeCurve, NewCompositeCurve)
	m.RegisterFactory(iges.TypeConicArc, NewConicArc)
	m.RegisterFactory(iges.TypeLine, NewLine)
	m.RegisterFactory(iges.TypePlane, NewPlane)
	m.RegisterFactory(iges.TypeRationalBSplineSurface, NewRationalBSplineSurface)
	m.RegisterFactory(iges.TypeTransformationMatrix, NewTransformationMatrix)
	m.RegisterFactory(iges.TypeCurveOnSurface, NewCurveOnSurface)
	m.RegisterFactory(iges.TypeTrimmedSurface, NewTrimmedSurface)
	m.RegisterFactory(iges.TypeColor, NewColor)
	m.RegisterFactory(iges.TypeSubfigureDefinition, NewSubfigureDefinition)
	m.RegisterFactory(iges.TypeVertexList, NewVertexList)
	m.RegisterFactory(iges.TypeEdgeList, NewEdgeList)
	m.RegisterFactory(iges.TypeLoop, NewLoop)
	m.RegisterFactory(iges.TypeFace, NewFace)
	m.RegisterFactory(iges.TypeShell, NewShell)
}
