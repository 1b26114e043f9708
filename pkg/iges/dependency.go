package iges

// Dependency classification rules per IGES Section 2.2.4.5.2, as applied by
// this package's concrete entities (pkg/iges/entities) when they build
// their child edges during Associate.

// CompositeCurveMemberKind is the DependencyKind every curve added to an
// E102 Composite Curve's member list receives: the member is physically
// dependent on the composite (TODO item 1 in the project's own history —
// every Composite Curve member is Physical, unconditionally).
const CompositeCurveMemberKind = DependencyPhysical

// BPointerKindFor returns the DependencyKind an E142 Curve-on-Parametric-
// Surface assigns to its B-pointer child: if that child is itself an E102
// Composite Curve, the dependency is inherited as Physical (the composite
// curve exists only to describe this surface's boundary); any other curve
// type is treated as Logical, since it may be shared by other surfaces.
func BPointerKindFor(childTypeCode int) DependencyKind {
	if childTypeCode == TypeCompositeCurve {
		return DependencyPhysical
	}
	return DependencyLogical
}

// Entity type codes this package's entities (pkg/iges/entities) implement.
const (
	TypeCircularArc       = 100
	TypeCompositeCurve    = 102
	TypeConicArc          = 104
	TypeLine              = 110
	TypePlane             = 108
	TypeRationalBSplineSurface = 128
	TypeTransformationMatrix   = 124
	TypeCurveOnSurface         = 142
	TypeTrimmedSurface         = 144
	TypeColor                  = 314
	TypeSubfigureDefinition    = 308
	TypeVertexList             = 502
	TypeEdgeList               = 504
	TypeLoop                   = 508
	TypeFace                   = 510
	TypeShell                  = 514
)
