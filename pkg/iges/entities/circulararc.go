package entities

import "github.com/ironplane/ironplane/pkg/iges"

// CircularArc is the E100 entity: an arc of a circle lying in a plane
// parallel to XT,YT, given by its plane Z, center, and start/end points.
type CircularArc struct {
	iges.BaseEntity

	ZT                 float64
	CenterX, CenterY   float64
	StartX, StartY     float64
	EndX, EndY         float64
}

// NewCircularArc is the iges.Factory for type code 100.
func NewCircularArc(handle, typeCode int) iges.Entity {
	a := &CircularArc{}
	a.InitBaseEntity(handle, typeCode)
	return a
}

// ReadDE implements iges.Entity.
func (a *CircularArc) ReadDE(de iges.DirectoryEntry) error {
	a.SetDE(de)
	return nil
}

// ReadPD implements iges.Entity. Layout: ZT, CX, CY, SX, SY, EX, EY.
func (a *CircularArc) ReadPD(pd iges.PDRecord) error {
	if err := requireLen(pd.Params, 7); err != nil {
		return err
	}
	vals, err := parseFloats(pd.Params[:7])
	if err != nil {
		return err
	}
	a.ZT = vals[0]
	a.CenterX, a.CenterY = vals[1], vals[2]
	a.StartX, a.StartY = vals[3], vals[4]
	a.EndX, a.EndY = vals[5], vals[6]
	return nil
}

// Associate implements iges.Entity.
func (a *CircularArc) Associate(m *iges.Model) error {
	a.MarkAssociated()
	return nil
}

// Rescale implements iges.Entity.
func (a *CircularArc) Rescale(sf float64) error {
	a.ZT *= sf
	a.CenterX *= sf
	a.CenterY *= sf
	a.StartX *= sf
	a.StartY *= sf
	a.EndX *= sf
	a.EndY *= sf
	return nil
}

// Format implements the writeout package's formattable interface.
func (a *CircularArc) Format(pdLineStart int, assigned map[int]int) (iges.PDRecord, int, error) {
	pd := iges.PDRecord{
		TypeCode: a.TypeCode(),
		Params: []string{
			formatFloat(a.ZT),
			formatFloat(a.CenterX), formatFloat(a.CenterY),
			formatFloat(a.StartX), formatFloat(a.StartY),
			formatFloat(a.EndX), formatFloat(a.EndY),
		},
	}
	return pd, 1, nil
}
