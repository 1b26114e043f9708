package entities

import "github.com/ironplane/ironplane/pkg/iges"

// Line is the E110 entity: a straight segment between two 3D points.
type Line struct {
	iges.BaseEntity

	X1, Y1, Z1 float64
	X2, Y2, Z2 float64
}

// NewLine is the iges.Factory for type code 110.
func NewLine(handle, typeCode int) iges.Entity {
	l := &Line{}
	l.InitBaseEntity(handle, typeCode)
	return l
}

// ReadDE implements iges.Entity.
func (l *Line) ReadDE(de iges.DirectoryEntry) error {
	l.SetDE(de)
	return nil
}

// ReadPD implements iges.Entity. Parameter data layout: X1,Y1,Z1,X2,Y2,Z2.
func (l *Line) ReadPD(pd iges.PDRecord) error {
	if err := requireLen(pd.Params, 6); err != nil {
		return err
	}
	vals, err := parseFloats(pd.Params[:6])
	if err != nil {
		return err
	}
	l.X1, l.Y1, l.Z1 = vals[0], vals[1], vals[2]
	l.X2, l.Y2, l.Z2 = vals[3], vals[4], vals[5]
	return nil
}

// Associate implements iges.Entity. A Line has no pointer fields of its
// own beyond the common DE references, which Model.Link resolves
// uniformly; this is a no-op beyond marking itself associated.
func (l *Line) Associate(m *iges.Model) error {
	l.MarkAssociated()
	return nil
}

// Rescale implements iges.Entity.
func (l *Line) Rescale(sf float64) error {
	l.X1 *= sf
	l.Y1 *= sf
	l.Z1 *= sf
	l.X2 *= sf
	l.Y2 *= sf
	l.Z2 *= sf
	return nil
}

// Format implements the writeout package's formattable interface.
func (l *Line) Format(pdLineStart int, assigned map[int]int) (iges.PDRecord, int, error) {
	pd := iges.PDRecord{
		TypeCode: l.TypeCode(),
		Params: []string{
			formatFloat(l.X1), formatFloat(l.Y1), formatFloat(l.Z1),
			formatFloat(l.X2), formatFloat(l.Y2), formatFloat(l.Z2),
		},
	}
	return pd, 1, nil
}
