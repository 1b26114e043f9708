package entities

import "github.com/ironplane/ironplane/pkg/iges"

// CurveOnSurface is the E142 entity: a curve lying on a parametric
// surface, given as a surface reference (S), an optional 2D
// parameter-space curve (B), a 3D model-space curve (C), and a
// preferred-representation flag. B is the "B-pointer" the project's
// rescale-suppression rule refers to: its control points describe the
// curve in the surface's own (u, v) parameter space and must not be
// scaled by a model-wide length rescale, since (u, v) is dimensionless.
type CurveOnSurface struct {
	iges.BaseEntity

	CreationFlag int
	SurfaceRef   int
	BRef         int
	CRef         int
	PreferredRep int

	surfaceHandle int
	bHandle       int
	cHandle       int
}

// NewCurveOnSurface is the iges.Factory for type code 142.
func NewCurveOnSurface(handle, typeCode int) iges.Entity {
	c := &CurveOnSurface{}
	c.InitBaseEntity(handle, typeCode)
	return c
}

// ReadDE implements iges.Entity.
func (c *CurveOnSurface) ReadDE(de iges.DirectoryEntry) error {
	c.SetDE(de)
	return nil
}

// ReadPD implements iges.Entity. Layout: CRTN, SPTR, BPTR, CPTR, PREF.
func (c *CurveOnSurface) ReadPD(pd iges.PDRecord) error {
	if err := requireLen(pd.Params, 5); err != nil {
		return err
	}
	vals, err := parseInts(pd.Params[:5])
	if err != nil {
		return err
	}
	c.CreationFlag, c.SurfaceRef, c.BRef, c.CRef, c.PreferredRep = vals[0], vals[1], vals[2], vals[3], vals[4]
	return nil
}

// Associate implements iges.Entity. The B-pointer curve is linked with
// DependencyPhysical if it is itself a Composite Curve, else Logical, per
// iges.BPointerKindFor; the model-space curve C is Logical (it is a
// convenience cache, recomputable from B and the surface).
func (c *CurveOnSurface) Associate(m *iges.Model) error {
	surfaceHandle, ok := m.HandleForSequence(c.SurfaceRef)
	if !ok {
		return iges.ErrUnresolvedReference
	}
	if err := m.AssociateEntity(surfaceHandle); err != nil {
		return err
	}
	if err := m.Link(c.Handle(), surfaceHandle, iges.DependencyLogical); err != nil {
		return err
	}
	c.surfaceHandle = surfaceHandle

	if c.BRef != 0 {
		bHandle, ok := m.HandleForSequence(c.BRef)
		if !ok {
			return iges.ErrUnresolvedReference
		}
		if err := m.AssociateEntity(bHandle); err != nil {
			return err
		}
		bEntity := m.Entity(bHandle)
		if err := m.Link(c.Handle(), bHandle, iges.BPointerKindFor(bEntity.TypeCode())); err != nil {
			return err
		}
		c.bHandle = bHandle
	}

	if c.CRef != 0 {
		cHandle, ok := m.HandleForSequence(c.CRef)
		if !ok {
			return iges.ErrUnresolvedReference
		}
		if err := m.AssociateEntity(cHandle); err != nil {
			return err
		}
		if err := m.Link(c.Handle(), cHandle, iges.DependencyLogical); err != nil {
			return err
		}
		c.cHandle = cHandle
	}

	c.MarkAssociated()
	return nil
}

// LinkRefs associates c directly with already-created surface/B/C handles,
// the author-path counterpart to ReadPD+Associate (see
// CompositeCurve.LinkMembers).
func (c *CurveOnSurface) LinkRefs(m *iges.Model, surfaceHandle, bHandle, cHandle int) error {
	if err := m.Link(c.Handle(), surfaceHandle, iges.DependencyLogical); err != nil {
		return err
	}
	c.surfaceHandle = surfaceHandle

	if bHandle != 0 {
		bEntity := m.Entity(bHandle)
		if err := m.Link(c.Handle(), bHandle, iges.BPointerKindFor(bEntity.TypeCode())); err != nil {
			return err
		}
		c.bHandle = bHandle
	}
	if cHandle != 0 {
		if err := m.Link(c.Handle(), cHandle, iges.DependencyLogical); err != nil {
			return err
		}
		c.cHandle = cHandle
	}

	c.MarkAssociated()
	return nil
}

// BPointerHandle implements iges.bPointerHolder, the suppression query
// Model.Rescale consults before scaling the B curve's geometry.
func (c *CurveOnSurface) BPointerHandle() int { return c.bHandle }

// SurfaceHandle returns the resolved handle of the underlying surface.
func (c *CurveOnSurface) SurfaceHandle() int { return c.surfaceHandle }

// CHandle returns the resolved handle of the model-space curve, or 0.
func (c *CurveOnSurface) CHandle() int { return c.cHandle }

// Rescale implements iges.Entity. This entity holds no geometric data of
// its own — the surface, B curve, and C curve each rescale independently
// (or not, per suppression) through the Model's own traversal.
func (c *CurveOnSurface) Rescale(sf float64) error { return nil }

// Format implements the writeout package's formattable interface.
func (c *CurveOnSurface) Format(pdLineStart int, assigned map[int]int) (iges.PDRecord, int, error) {
	pd := iges.PDRecord{
		TypeCode: c.TypeCode(),
		Params: []string{
			formatInt(c.CreationFlag),
			formatInt(resolveHandle(c.surfaceHandle, assigned)),
			formatInt(resolveHandle(c.bHandle, assigned)),
			formatInt(resolveHandle(c.cHandle, assigned)),
			formatInt(c.PreferredRep),
		},
	}
	return pd, 1, nil
}
