package entities

import "github.com/ironplane/ironplane/pkg/iges"

// Face is the E510 entity: a bounded portion of a surface, given by a
// surface reference, an outer-boundary flag, and one or more Loop
// references (the first is the outer loop when OuterFlag is false; every
// Loop is a boundary otherwise).
type Face struct {
	iges.BaseEntity

	SurfaceRef int
	OuterFlag  bool
	LoopRefs   []int

	surfaceHandle int
	loopHandles   []int
}

// NewFace is the iges.Factory for type code 510.
func NewFace(handle, typeCode int) iges.Entity {
	f := &Face{}
	f.InitBaseEntity(handle, typeCode)
	return f
}

// ReadDE implements iges.Entity.
func (f *Face) ReadDE(de iges.DirectoryEntry) error {
	f.SetDE(de)
	return nil
}

// ReadPD implements iges.Entity. Layout: SURFACE, N, OUTER-FLAG, LOOP(1)..LOOP(N).
func (f *Face) ReadPD(pd iges.PDRecord) error {
	if err := requireLen(pd.Params, 3); err != nil {
		return err
	}
	head, err := parseInts(pd.Params[:3])
	if err != nil {
		return err
	}
	f.SurfaceRef, f.OuterFlag = head[0], head[2] != 0
	n := head[1]
	need := 3 + n
	if err := requireLen(pd.Params, need); err != nil {
		return err
	}
	refs, err := parseInts(pd.Params[3:need])
	if err != nil {
		return err
	}
	f.LoopRefs = refs
	return nil
}

// Associate implements iges.Entity.
func (f *Face) Associate(m *iges.Model) error {
	surfaceHandle, ok := m.HandleForSequence(f.SurfaceRef)
	if !ok {
		return iges.ErrUnresolvedReference
	}
	if err := m.AssociateEntity(surfaceHandle); err != nil {
		return err
	}
	if err := m.Link(f.Handle(), surfaceHandle, iges.DependencyLogical); err != nil {
		return err
	}
	f.surfaceHandle = surfaceHandle

	f.loopHandles = make([]int, 0, len(f.LoopRefs))
	for _, ref := range f.LoopRefs {
		handle, ok := m.HandleForSequence(ref)
		if !ok {
			return iges.ErrUnresolvedReference
		}
		if err := m.AssociateEntity(handle); err != nil {
			return err
		}
		if err := m.Link(f.Handle(), handle, iges.DependencyPhysical); err != nil {
			return err
		}
		f.loopHandles = append(f.loopHandles, handle)
	}

	f.MarkAssociated()
	return nil
}

// Rescale implements iges.Entity. No geometric data of its own.
func (f *Face) Rescale(sf float64) error { return nil }

// Format implements the writeout package's formattable interface.
func (f *Face) Format(pdLineStart int, assigned map[int]int) (iges.PDRecord, int, error) {
	params := []string{formatInt(resolveHandle(f.surfaceHandle, assigned)), formatInt(len(f.loopHandles)), boolToFlag(f.OuterFlag)}
	for _, h := range f.loopHandles {
		params = append(params, formatInt(resolveHandle(h, assigned)))
	}
	return iges.PDRecord{TypeCode: f.TypeCode(), Params: params}, 1, nil
}
