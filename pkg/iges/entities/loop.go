package entities

import "github.com/ironplane/ironplane/pkg/iges"

// Loop is the E508 entity: an ordered list of edge uses (an Edge List
// reference, an edge index within it, and an orientation flag) that bounds
// a Face, playing the same structural role for the BREP family that a
// Composite Curve's boundary curve plays for a Trimmed Surface.
type Loop struct {
	iges.BaseEntity

	EdgeListRefs []int
	EdgeIndices  []int
	Orientations []bool

	edgeListHandles []int
}

// NewLoop is the iges.Factory for type code 508.
func NewLoop(handle, typeCode int) iges.Entity {
	l := &Loop{}
	l.InitBaseEntity(handle, typeCode)
	return l
}

// ReadDE implements iges.Entity.
func (l *Loop) ReadDE(de iges.DirectoryEntry) error {
	l.SetDE(de)
	return nil
}

// ReadPD implements iges.Entity. Layout: N, then per edge-use: edge-list-
// ref, edge-index, orientation-flag, isoparametric-curve-count (ignored).
func (l *Loop) ReadPD(pd iges.PDRecord) error {
	if err := requireLen(pd.Params, 1); err != nil {
		return err
	}
	head, err := parseInts(pd.Params[:1])
	if err != nil {
		return err
	}
	n := head[0]
	need := 1 + n*4
	if err := requireLen(pd.Params, need); err != nil {
		return err
	}
	vals, err := parseInts(pd.Params[1:need])
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		base := i * 4
		l.EdgeListRefs = append(l.EdgeListRefs, vals[base])
		l.EdgeIndices = append(l.EdgeIndices, vals[base+1])
		l.Orientations = append(l.Orientations, vals[base+2] != 0)
	}
	return nil
}

// Associate implements iges.Entity.
func (l *Loop) Associate(m *iges.Model) error {
	l.edgeListHandles = make([]int, 0, len(l.EdgeListRefs))
	for _, ref := range l.EdgeListRefs {
		handle, ok := m.HandleForSequence(ref)
		if !ok {
			return iges.ErrUnresolvedReference
		}
		if err := m.AssociateEntity(handle); err != nil {
			return err
		}
		if err := m.Link(l.Handle(), handle, iges.DependencyPhysical); err != nil {
			return err
		}
		l.edgeListHandles = append(l.edgeListHandles, handle)
	}
	l.MarkAssociated()
	return nil
}

// Rescale implements iges.Entity. No geometric data of its own.
func (l *Loop) Rescale(sf float64) error { return nil }

// Format implements the writeout package's formattable interface.
func (l *Loop) Format(pdLineStart int, assigned map[int]int) (iges.PDRecord, int, error) {
	params := []string{formatInt(len(l.edgeListHandles))}
	for i, h := range l.edgeListHandles {
		params = append(params, formatInt(resolveHandle(h, assigned)), formatInt(l.EdgeIndices[i]), boolToFlag(l.Orientations[i]), "0")
	}
	return iges.PDRecord{TypeCode: l.TypeCode(), Params: params}, 1 + len(params)/10, nil
}
