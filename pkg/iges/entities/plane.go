package entities

import "github.com/ironplane/ironplane/pkg/iges"

// Plane is the E108 entity: an unbounded plane A x + B y + C z = D, with an
// optional pointer to a bounding Closed Curve (here, a Composite Curve)
// and a display-symbol location. This package uses Plane only in its
// unbounded form (BoundingRef == 0) as the top and bottom extrusion caps
// of a trimmed surface before an E144 attaches the actual boundary.
type Plane struct {
	iges.BaseEntity

	A, B, C, D float64

	// BoundingRef, while set, is the DE sequence number (pre-associate) or
	// handle (post-associate) of the bounding Composite Curve.
	BoundingRef int
	boundingHandle int

	LocX, LocY, LocZ float64
	Size             float64
}

// NewPlane is the iges.Factory for type code 108.
func NewPlane(handle, typeCode int) iges.Entity {
	p := &Plane{}
	p.InitBaseEntity(handle, typeCode)
	return p
}

// ReadDE implements iges.Entity.
func (p *Plane) ReadDE(de iges.DirectoryEntry) error {
	p.SetDE(de)
	return nil
}

// ReadPD implements iges.Entity. Layout: A,B,C,D, BoundingRef, LocX, LocY,
// LocZ, Size.
func (p *Plane) ReadPD(pd iges.PDRecord) error {
	if err := requireLen(pd.Params, 9); err != nil {
		return err
	}
	floats, err := parseFloats(append(append([]string{}, pd.Params[:4]...), pd.Params[5:9]...))
	if err != nil {
		return err
	}
	ref, err := parseInts(pd.Params[4:5])
	if err != nil {
		return err
	}
	p.A, p.B, p.C, p.D = floats[0], floats[1], floats[2], floats[3]
	p.BoundingRef = ref[0]
	p.LocX, p.LocY, p.LocZ, p.Size = floats[4], floats[5], floats[6], floats[7]
	return nil
}

// Associate implements iges.Entity.
func (p *Plane) Associate(m *iges.Model) error {
	if p.BoundingRef != 0 {
		handle, ok := m.HandleForSequence(p.BoundingRef)
		if !ok {
			return iges.ErrUnresolvedReference
		}
		if err := m.AssociateEntity(handle); err != nil {
			return err
		}
		if err := m.Link(p.Handle(), handle, iges.DependencyLogical); err != nil {
			return err
		}
		p.boundingHandle = handle
	}
	p.MarkAssociated()
	return nil
}

// BoundingHandle returns the resolved handle of the bounding curve, or 0
// if the plane is unbounded.
func (p *Plane) BoundingHandle() int { return p.boundingHandle }

// Rescale implements iges.Entity. D is the plane's signed distance from
// the origin along its normal and scales with length; A,B,C are a unit
// normal and are scale-invariant.
func (p *Plane) Rescale(sf float64) error {
	p.D *= sf
	p.LocX *= sf
	p.LocY *= sf
	p.LocZ *= sf
	p.Size *= sf
	return nil
}

// Format implements the writeout package's formattable interface.
func (p *Plane) Format(pdLineStart int, assigned map[int]int) (iges.PDRecord, int, error) {
	pd := iges.PDRecord{
		TypeCode: p.TypeCode(),
		Params: []string{
			formatFloat(p.A), formatFloat(p.B), formatFloat(p.C), formatFloat(p.D),
			formatInt(resolveHandle(p.boundingHandle, assigned)),
			formatFloat(p.LocX), formatFloat(p.LocY), formatFloat(p.LocZ), formatFloat(p.Size),
		},
	}
	return pd, 1, nil
}
