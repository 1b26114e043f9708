package entities

import "github.com/ironplane/ironplane/pkg/iges"

// RationalBSplineSurface is the E128 entity. This package authors it in
// exactly the shape the outline extrusion needs: a bilinear surface
// (degree 1 in both parametric directions) for the planar side walls of
// line segments, or a rational surface of degree 2 in u and 1 in v for
// the ruled cylindrical side walls of arcs and circles; either way each
// knot vector has two distinct breakpoints. ControlPoints is stored as a flat
// (K1+1)*(K2+1)*3 array in the standard IGES row-major (v fastest) order.
type RationalBSplineSurface struct {
	iges.BaseEntity

	K1, K2       int
	M1, M2       int
	PropClosedU  bool
	PropClosedV  bool
	PropRational bool
	PropPeriodU  bool
	PropPeriodV  bool

	KnotsU  []float64
	KnotsV  []float64
	Weights []float64

	// ControlPoints holds (K1+1)*(K2+1) points, each X,Y,Z, row-major with
	// v varying fastest.
	ControlPoints []float64

	U0, U1, V0, V1 float64
}

// NewRationalBSplineSurface is the iges.Factory for type code 128.
func NewRationalBSplineSurface(handle, typeCode int) iges.Entity {
	s := &RationalBSplineSurface{}
	s.InitBaseEntity(handle, typeCode)
	return s
}

// ReadDE implements iges.Entity.
func (s *RationalBSplineSurface) ReadDE(de iges.DirectoryEntry) error {
	s.SetDE(de)
	return nil
}

// ReadPD implements iges.Entity. Layout follows the IGES E128 parameter
// list: K1,K2,M1,M2,PROP1..4, knot vectors, weights, control points,
// U0,U1,V0,V1.
func (s *RationalBSplineSurface) ReadPD(pd iges.PDRecord) error {
	if err := requireLen(pd.Params, 8); err != nil {
		return err
	}
	head, err := parseInts(pd.Params[:8])
	if err != nil {
		return err
	}
	s.K1, s.K2, s.M1, s.M2 = head[0], head[1], head[2], head[3]
	s.PropClosedU, s.PropClosedV, s.PropRational, s.PropPeriodU = head[4] != 0, head[5] != 0, head[6] != 0, head[7] != 0

	nKnotsU := s.K1 + s.M1 + 2
	nKnotsV := s.K2 + s.M2 + 2
	nCtrl := (s.K1 + 1) * (s.K2 + 1)

	idx := 8
	need := idx + nKnotsU + nKnotsV + nCtrl + nCtrl*3 + 4
	if err := requireLen(pd.Params, need); err != nil {
		return err
	}

	floats, err := parseFloats(pd.Params[idx:need])
	if err != nil {
		return err
	}
	cursor := 0
	s.KnotsU = append([]float64{}, floats[cursor:cursor+nKnotsU]...)
	cursor += nKnotsU
	s.KnotsV = append([]float64{}, floats[cursor:cursor+nKnotsV]...)
	cursor += nKnotsV
	s.Weights = append([]float64{}, floats[cursor:cursor+nCtrl]...)
	cursor += nCtrl
	s.ControlPoints = append([]float64{}, floats[cursor:cursor+nCtrl*3]...)
	cursor += nCtrl * 3
	s.U0, s.U1, s.V0, s.V1 = floats[cursor], floats[cursor+1], floats[cursor+2], floats[cursor+3]
	return nil
}

// Associate implements iges.Entity. A surface has no pointer fields.
func (s *RationalBSplineSurface) Associate(m *iges.Model) error {
	s.MarkAssociated()
	return nil
}

// Rescale implements iges.Entity: every control point coordinate scales
// with length; weights, knot values and the parametric domain U0..V1 (all
// dimensionless parametric quantities) do not.
func (s *RationalBSplineSurface) Rescale(sf float64) error {
	for i := range s.ControlPoints {
		s.ControlPoints[i] *= sf
	}
	return nil
}

// Format implements the writeout package's formattable interface.
func (s *RationalBSplineSurface) Format(pdLineStart int, assigned map[int]int) (iges.PDRecord, int, error) {
	params := []string{
		formatInt(s.K1), formatInt(s.K2), formatInt(s.M1), formatInt(s.M2),
		boolToFlag(s.PropClosedU), boolToFlag(s.PropClosedV), boolToFlag(s.PropRational), boolToFlag(s.PropPeriodU),
	}
	for _, v := range s.KnotsU {
		params = append(params, formatFloat(v))
	}
	for _, v := range s.KnotsV {
		params = append(params, formatFloat(v))
	}
	for _, v := range s.Weights {
		params = append(params, formatFloat(v))
	}
	for _, v := range s.ControlPoints {
		params = append(params, formatFloat(v))
	}
	params = append(params, formatFloat(s.U0), formatFloat(s.U1), formatFloat(s.V0), formatFloat(s.V1))
	lines := 1 + len(params)/10
	return iges.PDRecord{TypeCode: s.TypeCode(), Params: params}, lines, nil
}

func boolToFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
