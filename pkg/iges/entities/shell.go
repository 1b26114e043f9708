package entities

import "github.com/ironplane/ironplane/pkg/iges"

// Shell is the E514 entity: an ordered collection of Face references with
// per-face orientation flags, the top of the Molex BREP family this
// package supports as an alternative to the Trimmed Surface
// representation for a fully closed extruded solid.
type Shell struct {
	iges.BaseEntity

	FaceRefs     []int
	Orientations []bool

	faceHandles []int
}

// NewShell is the iges.Factory for type code 514.
func NewShell(handle, typeCode int) iges.Entity {
	s := &Shell{}
	s.InitBaseEntity(handle, typeCode)
	return s
}

// ReadDE implements iges.Entity.
func (s *Shell) ReadDE(de iges.DirectoryEntry) error {
	s.SetDE(de)
	return nil
}

// ReadPD implements iges.Entity. Layout: N, FACE(1),ORIENT(1), ...,
// FACE(N),ORIENT(N).
func (s *Shell) ReadPD(pd iges.PDRecord) error {
	if err := requireLen(pd.Params, 1); err != nil {
		return err
	}
	head, err := parseInts(pd.Params[:1])
	if err != nil {
		return err
	}
	n := head[0]
	need := 1 + n*2
	if err := requireLen(pd.Params, need); err != nil {
		return err
	}
	vals, err := parseInts(pd.Params[1:need])
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		s.FaceRefs = append(s.FaceRefs, vals[i*2])
		s.Orientations = append(s.Orientations, vals[i*2+1] != 0)
	}
	return nil
}

// Associate implements iges.Entity. Every face is Physical: a shell's
// faces exist only to bound this shell.
func (s *Shell) Associate(m *iges.Model) error {
	s.faceHandles = make([]int, 0, len(s.FaceRefs))
	for _, ref := range s.FaceRefs {
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
		s.faceHandles = append(s.faceHandles, handle)
	}
	s.MarkAssociated()
	return nil
}

// Rescale implements iges.Entity. No geometric data of its own.
func (s *Shell) Rescale(sf float64) error { return nil }

// Format implements the writeout package's formattable interface.
func (s *Shell) Format(pdLineStart int, assigned map[int]int) (iges.PDRecord, int, error) {
	params := []string{formatInt(len(s.faceHandles))}
	for i, h := range s.faceHandles {
		params = append(params, formatInt(resolveHandle(h, assigned)), boolToFlag(s.Orientations[i]))
	}
	return iges.PDRecord{TypeCode: s.TypeCode(), Params: params}, 1 + len(params)/10, nil
}
