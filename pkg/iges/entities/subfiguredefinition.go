package entities

import "github.com/ironplane/ironplane/pkg/iges"

// SubfigureDefinition is the E308 entity: a named, reusable group of
// entity references, depth-first nestable. This package uses it so a board
// outline (plus its cutouts and extruded surfaces) can be authored once
// and instanced at multiple placements, each placement an entity whose DE
// TransformRef points at a distinct Transformation Matrix.
type SubfigureDefinition struct {
	iges.BaseEntity

	Depth       int
	Name        string
	MemberRefs  []int
	memberHandles []int
}

// NewSubfigureDefinition is the iges.Factory for type code 308.
func NewSubfigureDefinition(handle, typeCode int) iges.Entity {
	s := &SubfigureDefinition{}
	s.InitBaseEntity(handle, typeCode)
	return s
}

// ReadDE implements iges.Entity.
func (s *SubfigureDefinition) ReadDE(de iges.DirectoryEntry) error {
	s.SetDE(de)
	return nil
}

// ReadPD implements iges.Entity. Layout: DEPTH, NAME, N, DE(1)..DE(N).
func (s *SubfigureDefinition) ReadPD(pd iges.PDRecord) error {
	if err := requireLen(pd.Params, 3); err != nil {
		return err
	}
	depth, err := parseInts(pd.Params[:1])
	if err != nil {
		return err
	}
	s.Depth = depth[0]
	s.Name = pd.Params[1]
	n, err := parseInts(pd.Params[2:3])
	if err != nil {
		return err
	}
	need := 3 + n[0]
	if err := requireLen(pd.Params, need); err != nil {
		return err
	}
	refs, err := parseInts(pd.Params[3:need])
	if err != nil {
		return err
	}
	s.MemberRefs = refs
	return nil
}

// Associate implements iges.Entity. Every member is Physical: a
// subfigure's constituent entities exist only within this definition.
func (s *SubfigureDefinition) Associate(m *iges.Model) error {
	s.memberHandles = make([]int, 0, len(s.MemberRefs))
	for _, ref := range s.MemberRefs {
		handle, ok := m.HandleForSequence(ref)
		if !ok {
			return iges.ErrUnresolvedReference
		}
		if err := m.AssociateEntity(handle); err != nil {
			return err
		}
		if err := m.Link(s.Handle(), handle, iges.DependencyPhysical); err != nil {
			return err
		}
		s.memberHandles = append(s.memberHandles, handle)
	}
	s.MarkAssociated()
	return nil
}

// Members returns the resolved member handles.
func (s *SubfigureDefinition) Members() []int {
	out := make([]int, len(s.memberHandles))
	copy(out, s.memberHandles)
	return out
}

// Rescale implements iges.Entity. No geometric data of its own — every
// member entity rescales independently through the Model's traversal.
func (s *SubfigureDefinition) Rescale(sf float64) error { return nil }

// Format implements the writeout package's formattable interface.
func (s *SubfigureDefinition) Format(pdLineStart int, assigned map[int]int) (iges.PDRecord, int, error) {
	params := []string{formatInt(s.Depth), s.Name, formatInt(len(s.memberHandles))}
	for _, h := range s.memberHandles {
		params = append(params, formatInt(resolveHandle(h, assigned)))
	}
	return iges.PDRecord{TypeCode: s.TypeCode(), Params: params}, 1 + len(params)/10, nil
}
