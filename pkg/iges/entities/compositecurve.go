package entities

import "github.com/ironplane/ironplane/pkg/iges"

// CompositeCurve is the E102 entity: an ordered chain of curve entities
// (Line, Circular Arc, Conic Arc, ...) whose concatenation forms a single
// logical curve, most often the boundary curve of a Trimmed Surface. Every
// member receives iges.CompositeCurveMemberKind (Physical) regardless of
// its own type, per the project's dependency-classification rule.
type CompositeCurve struct {
	iges.BaseEntity

	MemberRefs    []int
	memberHandles []int
}

// NewCompositeCurve is the iges.Factory for type code 102.
func NewCompositeCurve(handle, typeCode int) iges.Entity {
	c := &CompositeCurve{}
	c.InitBaseEntity(handle, typeCode)
	return c
}

// ReadDE implements iges.Entity.
func (c *CompositeCurve) ReadDE(de iges.DirectoryEntry) error {
	c.SetDE(de)
	return nil
}

// ReadPD implements iges.Entity. Layout: N, DE(1), DE(2), ..., DE(N).
func (c *CompositeCurve) ReadPD(pd iges.PDRecord) error {
	if err := requireLen(pd.Params, 1); err != nil {
		return err
	}
	counts, err := parseInts(pd.Params[:1])
	if err != nil {
		return err
	}
	n := counts[0]
	if err := requireLen(pd.Params, 1+n); err != nil {
		return err
	}
	refs, err := parseInts(pd.Params[1 : 1+n])
	if err != nil {
		return err
	}
	c.MemberRefs = refs
	return nil
}

// Associate implements iges.Entity, recursively associating each member
// before linking it, since a member's own correctness (e.g. an E142's
// B-pointer resolution) may be needed by callers inspecting this curve
// immediately after associate returns.
func (c *CompositeCurve) Associate(m *iges.Model) error {
	c.memberHandles = make([]int, 0, len(c.MemberRefs))
	for _, ref := range c.MemberRefs {
		handle, ok := m.HandleForSequence(ref)
		if !ok {
			return iges.ErrUnresolvedReference
		}
		if err := m.AssociateEntity(handle); err != nil {
			return err
		}
		if err := m.Link(c.Handle(), handle, iges.CompositeCurveMemberKind); err != nil {
			return err
		}
		c.memberHandles = append(c.memberHandles, handle)
	}
	c.MarkAssociated()
	return nil
}

// LinkMembers associates c directly with the given already-created entity
// handles, in chain order, each as a Physical dependency, and marks c
// associated. It is the author-path counterpart to the load-path
// ReadPD+Associate flow: a caller building a Composite Curve directly
// (pkg/outline's extrusion) knows its members' handles already and has no
// DE sequence numbers to resolve.
func (c *CompositeCurve) LinkMembers(m *iges.Model, handles []int) error {
	c.memberHandles = make([]int, 0, len(handles))
	for _, h := range handles {
		if err := m.Link(c.Handle(), h, iges.CompositeCurveMemberKind); err != nil {
			return err
		}
		c.memberHandles = append(c.memberHandles, h)
	}
	c.MarkAssociated()
	return nil
}

// Members returns the resolved handles of this curve's constituent
// entities, in chain order.
func (c *CompositeCurve) Members() []int {
	out := make([]int, len(c.memberHandles))
	copy(out, c.memberHandles)
	return out
}

// Rescale implements iges.Entity. A Composite Curve holds no geometric
// data of its own — every coordinate lives on its members, which the
// Model's Rescale pass visits independently.
func (c *CompositeCurve) Rescale(sf float64) error { return nil }

// Format implements the writeout package's formattable interface. Member
// handles are rewritten through assigned to the member's write-out DE
// sequence number; resolvePointerFields only covers DE-level fields, so
// this PD-level pointer rewrite is Format's own responsibility.
func (c *CompositeCurve) Format(pdLineStart int, assigned map[int]int) (iges.PDRecord, int, error) {
	params := make([]string, 0, 1+len(c.memberHandles))
	params = append(params, formatInt(len(c.memberHandles)))
	for _, h := range c.memberHandles {
		params = append(params, formatInt(resolveHandle(h, assigned)))
	}
	return iges.PDRecord{TypeCode: c.TypeCode(), Params: params}, 1, nil
}
