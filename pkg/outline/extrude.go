package outline

import (
	"fmt"
	"math"

	"github.com/ironplane/ironplane/pkg/geom"
	"github.com/ironplane/ironplane/pkg/iges"
	"github.com/ironplane/ironplane/pkg/iges/entities"
)

// maxPatchSpan is the widest angular span (radians) a single circular
// four-patch may cover: beyond this the rational-quadratic construction's
// outer control point moves to infinity as the half-angle approaches 90
// degrees, so a fuller arc is subdivided into multiple patches first.
const maxPatchSpan = math.Pi / 2

// ToCompositeCurve emits one child curve entity per segment (a Circular
// Arc 100 for each Arc or Circle, a Line 110 for each Line) and wraps them
// in a Composite Curve 102, returning its handle. Used both directly by a
// client wanting a 2D boundary curve and internally by
// ExtrudeToTrimmedSurfaces for each cap's boundary.
func (o *Outline) ToCompositeCurve(model *iges.Model) (int, error) {
	if o.state == StateOpen {
		return 0, ErrWrongState
	}
	members := make([]int, 0, len(o.segments))
	for _, seg := range o.segments {
		handle, err := createPlanarCurveEntity(model, seg)
		if err != nil {
			return 0, err
		}
		members = append(members, handle)
	}

	ccEntity, err := model.CreateEntity(iges.TypeCompositeCurve)
	if err != nil {
		return 0, err
	}
	cc := ccEntity.(*entities.CompositeCurve)
	if err := cc.LinkMembers(model, members); err != nil {
		return 0, err
	}
	return cc.Handle(), nil
}

// createPlanarCurveEntity creates the 3D curve entity matching seg's kind.
func createPlanarCurveEntity(model *iges.Model, seg geom.Segment) (int, error) {
	switch seg.Kind {
	case geom.KindLine:
		e, err := model.CreateEntity(iges.TypeLine)
		if err != nil {
			return 0, err
		}
		line := e.(*entities.Line)
		line.X1, line.Y1, line.Z1 = seg.Start.X, seg.Start.Y, seg.Start.Z
		line.X2, line.Y2, line.Z2 = seg.End.X, seg.End.Y, seg.End.Z
		if err := line.Associate(model); err != nil {
			return 0, err
		}
		return line.Handle(), nil
	default:
		e, err := model.CreateEntity(iges.TypeCircularArc)
		if err != nil {
			return 0, err
		}
		arc := e.(*entities.CircularArc)
		arc.ZT = seg.Center.Z
		arc.CenterX, arc.CenterY = seg.Center.X, seg.Center.Y
		arc.StartX, arc.StartY = seg.Start.X, seg.Start.Y
		arc.EndX, arc.EndY = seg.End.X, seg.End.Y
		if err := arc.Associate(model); err != nil {
			return 0, err
		}
		return arc.Handle(), nil
	}
}

// ExtrudeToTrimmedSurfaces emits the solid obtained by extruding o (with
// its holes as cutouts) from botZ to topZ: one Trimmed Surface 144 per
// outline segment for the vertical walls (planar bilinear patches for
// lines, ruled cylindrical four-patch surfaces for arcs and circles), plus
// one Trimmed Surface for the top cap and one for the bottom cap, each
// bounded by o's own composite curve with any holes attached as inner
// boundaries. It returns the handles of every Trimmed Surface created, in
// no particular order.
func (o *Outline) ExtrudeToTrimmedSurfaces(botZ, topZ float64, model *iges.Model) ([]int, error) {
	if o.state == StateOpen {
		return nil, ErrWrongState
	}
	if topZ <= botZ {
		return nil, fmt.Errorf("outline: extrude topZ %v must exceed botZ %v", topZ, botZ)
	}

	var handles []int

	for _, seg := range o.segments {
		wallHandles, err := extrudeWall(model, seg, botZ, topZ)
		if err != nil {
			return nil, err
		}
		handles = append(handles, wallHandles...)
	}
	for _, hole := range o.holes {
		for _, seg := range hole.segments {
			wallHandles, err := extrudeWall(model, seg, botZ, topZ)
			if err != nil {
				return nil, err
			}
			handles = append(handles, wallHandles...)
		}
	}

	topHandle, err := o.extrudeCap(model, topZ)
	if err != nil {
		return nil, err
	}
	botHandle, err := o.extrudeCap(model, botZ)
	if err != nil {
		return nil, err
	}
	handles = append(handles, topHandle, botHandle)

	return handles, nil
}

// extrudeWall emits the Trimmed Surface(s) for the vertical wall swept by
// seg between botZ and topZ: a single bilinear patch for a Line, or one
// four-patch-subdivided quadratic-rational patch per <=90-degree arc
// sector for an Arc or Circle.
func extrudeWall(model *iges.Model, seg geom.Segment, botZ, topZ float64) ([]int, error) {
	if seg.Kind == geom.KindLine {
		handle, err := wrapSurfaceAsUntrimmed(model, func(s *entities.RationalBSplineSurface) {
			populateLineWallSurface(s, seg, botZ, topZ)
		})
		if err != nil {
			return nil, err
		}
		return []int{handle}, nil
	}

	sectors := subdivideArc(seg.StartAngle, seg.EndAngle)
	handles := make([]int, 0, len(sectors))
	for _, sec := range sectors {
		a0, a1 := sec[0], sec[1]
		handle, err := wrapSurfaceAsUntrimmed(model, func(s *entities.RationalBSplineSurface) {
			populateArcWallSurface(s, seg.Center, seg.Radius, a0, a1, botZ, topZ)
		})
		if err != nil {
			return nil, err
		}
		handles = append(handles, handle)
	}
	return handles, nil
}

// subdivideArc splits [a0, a1] into sectors no wider than maxPatchSpan.
func subdivideArc(a0, a1 float64) [][2]float64 {
	span := a1 - a0
	n := int(math.Ceil(span/maxPatchSpan - 1e-9))
	if n < 1 {
		n = 1
	}
	step := span / float64(n)
	sectors := make([][2]float64, n)
	for i := 0; i < n; i++ {
		sectors[i] = [2]float64{a0 + float64(i)*step, a0 + float64(i+1)*step}
	}
	return sectors
}

// populateLineWallSurface fills s with the degree-1x1 bilinear patch for a
// straight vertical wall over seg.
func populateLineWallSurface(s *entities.RationalBSplineSurface, seg geom.Segment, botZ, topZ float64) {
	s.K1, s.K2, s.M1, s.M2 = 1, 1, 1, 1
	s.KnotsU = []float64{0, 0, 1, 1}
	s.KnotsV = []float64{0, 0, 1, 1}
	s.Weights = []float64{1, 1, 1, 1}
	s.ControlPoints = []float64{
		seg.Start.X, seg.Start.Y, botZ,
		seg.Start.X, seg.Start.Y, topZ,
		seg.End.X, seg.End.Y, botZ,
		seg.End.X, seg.End.Y, topZ,
	}
	s.U0, s.U1, s.V0, s.V1 = 0, 1, 0, 1
}

// populateArcWallSurface fills s with the rational-quadratic-by-linear
// four-patch surface for a <=90-degree cylindrical wall sector about
// center.
func populateArcWallSurface(s *entities.RationalBSplineSurface, center geom.Point, radius, a0, a1, botZ, topZ float64) {
	mid := (a0 + a1) / 2
	half := (a1 - a0) / 2
	cosHalf := math.Cos(half)

	pStart := geom.Point{X: center.X + radius*math.Cos(a0), Y: center.Y + radius*math.Sin(a0)}
	pEnd := geom.Point{X: center.X + radius*math.Cos(a1), Y: center.Y + radius*math.Sin(a1)}
	pMid := geom.Point{X: center.X + (radius/cosHalf)*math.Cos(mid), Y: center.Y + (radius/cosHalf)*math.Sin(mid)}

	s.K1, s.K2, s.M1, s.M2 = 2, 1, 2, 1
	s.KnotsU = []float64{0, 0, 0, 1, 1, 1}
	s.KnotsV = []float64{0, 0, 1, 1}
	s.Weights = []float64{
		1, 1,
		cosHalf, cosHalf,
		1, 1,
	}
	s.ControlPoints = []float64{
		pStart.X, pStart.Y, botZ,
		pStart.X, pStart.Y, topZ,
		pMid.X, pMid.Y, botZ,
		pMid.X, pMid.Y, topZ,
		pEnd.X, pEnd.Y, botZ,
		pEnd.X, pEnd.Y, topZ,
	}
	s.U0, s.U1, s.V0, s.V1 = 0, 1, 0, 1
}

// wrapSurfaceAsUntrimmed creates a Rational B-Spline Surface entity,
// populates it via fill, and wraps it in a Trimmed Surface that takes the
// entire patch untrimmed, returning the Trimmed Surface's handle.
func wrapSurfaceAsUntrimmed(model *iges.Model, fill func(*entities.RationalBSplineSurface)) (int, error) {
	surfEntity, err := model.CreateEntity(iges.TypeRationalBSplineSurface)
	if err != nil {
		return 0, err
	}
	surf := surfEntity.(*entities.RationalBSplineSurface)
	fill(surf)
	if err := surf.Associate(model); err != nil {
		return 0, err
	}

	tsEntity, err := model.CreateEntity(iges.TypeTrimmedSurface)
	if err != nil {
		return 0, err
	}
	ts := tsEntity.(*entities.TrimmedSurface)
	if err := ts.LinkBoundary(model, surf.Handle(), 0, nil); err != nil {
		return 0, err
	}
	return ts.Handle(), nil
}

// extrudeCap emits the Trimmed Surface for the planar cap at the given Z:
// an unbounded Plane (normal (0,0,1), offset z) trimmed by o's own
// composite curve as the outer boundary and each hole's composite curve
// as an inner boundary.
func (o *Outline) extrudeCap(model *iges.Model, z float64) (int, error) {
	planeEntity, err := model.CreateEntity(iges.TypePlane)
	if err != nil {
		return 0, err
	}
	plane := planeEntity.(*entities.Plane)
	plane.A, plane.B, plane.C, plane.D = 0, 0, 1, z
	if err := plane.Associate(model); err != nil {
		return 0, err
	}

	outerCCHandle, err := o.ToCompositeCurve(model)
	if err != nil {
		return 0, err
	}
	outerCOS, err := model.CreateEntity(iges.TypeCurveOnSurface)
	if err != nil {
		return 0, err
	}
	outerCOSEntity := outerCOS.(*entities.CurveOnSurface)
	if err := outerCOSEntity.LinkRefs(model, plane.Handle(), outerCCHandle, 0); err != nil {
		return 0, err
	}

	innerHandles := make([]int, 0, len(o.holes))
	for _, hole := range o.holes {
		holeCCHandle, err := hole.ToCompositeCurve(model)
		if err != nil {
			return 0, err
		}
		holeCOS, err := model.CreateEntity(iges.TypeCurveOnSurface)
		if err != nil {
			return 0, err
		}
		holeCOSEntity := holeCOS.(*entities.CurveOnSurface)
		if err := holeCOSEntity.LinkRefs(model, plane.Handle(), holeCCHandle, 0); err != nil {
			return 0, err
		}
		innerHandles = append(innerHandles, holeCOSEntity.Handle())
	}

	tsEntity, err := model.CreateEntity(iges.TypeTrimmedSurface)
	if err != nil {
		return 0, err
	}
	ts := tsEntity.(*entities.TrimmedSurface)
	if err := ts.LinkBoundary(model, plane.Handle(), outerCOSEntity.Handle(), innerHandles); err != nil {
		return 0, err
	}
	return ts.Handle(), nil
}
