package entities

import "github.com/ironplane/ironplane/pkg/iges"

// TrimmedSurface is the E144 entity: a base parametric surface (PTS) plus
// an outer boundary curve (PTO) and zero or more inner-boundary "cutout"
// curves (PTI), each a pointer to a Curve-on-Parametric-Surface. This is
// the entity a board outline's extrusion materializes one of for each
// side wall, the top cap, and the bottom cap; outer holes in the outline
// contribute inner-boundary curves here.
type TrimmedSurface struct {
	iges.BaseEntity

	SurfaceRef int
	OuterFlag  int
	InnerRefs  []int
	OuterRef   int

	surfaceHandle int
	outerHandle   int
	innerHandles  []int
}

// NewTrimmedSurface is the iges.Factory for type code 144.
func NewTrimmedSurface(handle, typeCode int) iges.Entity {
	t := &TrimmedSurface{}
	t.InitBaseEntity(handle, typeCode)
	return t
}

// ReadDE implements iges.Entity.
func (t *TrimmedSurface) ReadDE(de iges.DirectoryEntry) error {
	t.SetDE(de)
	return nil
}

// ReadPD implements iges.Entity. Layout: PTS, N1(outer-boundary flag),
// N2(count of inner boundaries), PTO, PTI(1)..PTI(N2).
func (t *TrimmedSurface) ReadPD(pd iges.PDRecord) error {
	if err := requireLen(pd.Params, 4); err != nil {
		return err
	}
	head, err := parseInts(pd.Params[:4])
	if err != nil {
		return err
	}
	t.SurfaceRef, t.OuterFlag, t.OuterRef = head[0], head[1], head[3]
	n2 := head[2]
	if err := requireLen(pd.Params, 4+n2); err != nil {
		return err
	}
	refs, err := parseInts(pd.Params[4 : 4+n2])
	if err != nil {
		return err
	}
	t.InnerRefs = refs
	return nil
}

// Associate implements iges.Entity. Both the outer boundary and every
// inner boundary are resolved as Physical dependencies: a trimmed
// surface's boundary curves exist only to bound this surface.
func (t *TrimmedSurface) Associate(m *iges.Model) error {
	surfaceHandle, ok := m.HandleForSequence(t.SurfaceRef)
	if !ok {
		return iges.ErrUnresolvedReference
	}
	if err := m.AssociateEntity(surfaceHandle); err != nil {
		return err
	}
	if err := m.Link(t.Handle(), surfaceHandle, iges.DependencyPhysical); err != nil {
		return err
	}
	t.surfaceHandle = surfaceHandle

	if t.OuterRef != 0 {
		outerHandle, ok := m.HandleForSequence(t.OuterRef)
		if !ok {
			return iges.ErrUnresolvedReference
		}
		if err := m.AssociateEntity(outerHandle); err != nil {
			return err
		}
		if err := m.Link(t.Handle(), outerHandle, iges.DependencyPhysical); err != nil {
			return err
		}
		t.outerHandle = outerHandle
	}

	t.innerHandles = make([]int, 0, len(t.InnerRefs))
	for _, ref := range t.InnerRefs {
		handle, ok := m.HandleForSequence(ref)
		if !ok {
			return iges.ErrUnresolvedReference
		}
		if err := m.AssociateEntity(handle); err != nil {
			return err
		}
		if err := m.Link(t.Handle(), handle, iges.DependencyPhysical); err != nil {
			return err
		}
		t.innerHandles = append(t.innerHandles, handle)
	}

	t.MarkAssociated()
	return nil
}

// LinkBoundary associates t directly with already-created surface/outer/
// inner handles, the author-path counterpart to ReadPD+Associate (see
// CompositeCurve.LinkMembers). A zero outerHandle sets OuterFlag to use
// the base surface's own natural boundary untrimmed.
func (t *TrimmedSurface) LinkBoundary(m *iges.Model, surfaceHandle, outerHandle int, innerHandles []int) error {
	if err := m.Link(t.Handle(), surfaceHandle, iges.DependencyPhysical); err != nil {
		return err
	}
	t.surfaceHandle = surfaceHandle

	if outerHandle != 0 {
		if err := m.Link(t.Handle(), outerHandle, iges.DependencyPhysical); err != nil {
			return err
		}
		t.outerHandle = outerHandle
		t.OuterFlag = 0
	} else {
		t.OuterFlag = 1
	}

	t.innerHandles = make([]int, 0, len(innerHandles))
	for _, h := range innerHandles {
		if err := m.Link(t.Handle(), h, iges.DependencyPhysical); err != nil {
			return err
		}
		t.innerHandles = append(t.innerHandles, h)
	}

	t.MarkAssociated()
	return nil
}

// SurfaceHandle returns the resolved base-surface handle.
func (t *TrimmedSurface) SurfaceHandle() int { return t.surfaceHandle }

// OuterHandle returns the resolved outer-boundary handle, or 0 if the
// surface's own natural boundary is used (OuterFlag == 1).
func (t *TrimmedSurface) OuterHandle() int { return t.outerHandle }

// InnerHandles returns the resolved inner-boundary (cutout) handles.
func (t *TrimmedSurface) InnerHandles() []int {
	out := make([]int, len(t.innerHandles))
	copy(out, t.innerHandles)
	return out
}

// Rescale implements iges.Entity. No geometric data of its own.
func (t *TrimmedSurface) Rescale(sf float64) error { return nil }

// Format implements the writeout package's formattable interface.
func (t *TrimmedSurface) Format(pdLineStart int, assigned map[int]int) (iges.PDRecord, int, error) {
	params := []string{
		formatInt(resolveHandle(t.surfaceHandle, assigned)), formatInt(t.OuterFlag), formatInt(len(t.innerHandles)), formatInt(resolveHandle(t.outerHandle, assigned)),
	}
	for _, h := range t.innerHandles {
		params = append(params, formatInt(resolveHandle(h, assigned)))
	}
	return iges.PDRecord{TypeCode: t.TypeCode(), Params: params}, 1, nil
}
