package entities

import "github.com/ironplane/ironplane/pkg/iges"

// EdgeList is the E504 entity: an ordered list of edges, each a pointer to
// a model-space curve plus the Vertex List handles and indices of its two
// endpoints.
type EdgeList struct {
	iges.BaseEntity

	CurveRefs       []int
	StartVertexList []int
	StartVertexIdx  []int
	EndVertexList   []int
	EndVertexIdx    []int

	curveHandles           []int
	startVertexListHandles []int
	endVertexListHandles   []int
}

// NewEdgeList is the iges.Factory for type code 504.
func NewEdgeList(handle, typeCode int) iges.Entity {
	e := &EdgeList{}
	e.InitBaseEntity(handle, typeCode)
	return e
}

// ReadDE implements iges.Entity.
func (e *EdgeList) ReadDE(de iges.DirectoryEntry) error {
	e.SetDE(de)
	return nil
}

// ReadPD implements iges.Entity. Layout: N, then per edge: curve-ref,
// start-vertex-list, start-vertex-index, end-vertex-list, end-vertex-index.
func (e *EdgeList) ReadPD(pd iges.PDRecord) error {
	if err := requireLen(pd.Params, 1); err != nil {
		return err
	}
	head, err := parseInts(pd.Params[:1])
	if err != nil {
		return err
	}
	n := head[0]
	need := 1 + n*5
	if err := requireLen(pd.Params, need); err != nil {
		return err
	}
	vals, err := parseInts(pd.Params[1:need])
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		base := i * 5
		e.CurveRefs = append(e.CurveRefs, vals[base])
		e.StartVertexList = append(e.StartVertexList, vals[base+1])
		e.StartVertexIdx = append(e.StartVertexIdx, vals[base+2])
		e.EndVertexList = append(e.EndVertexList, vals[base+3])
		e.EndVertexIdx = append(e.EndVertexIdx, vals[base+4])
	}
	return nil
}

// Associate implements iges.Entity. Every referenced curve is a Logical
// dependency: it is the existing E100/E110/E104 geometry, which may be
// shared directly by a Trimmed Surface's Composite Curve boundary too.
// Each edge's two Vertex List (E502) references are Logical for the same
// reason: a vertex list commonly backs more than one edge's endpoints.
func (e *EdgeList) Associate(m *iges.Model) error {
	e.curveHandles = make([]int, 0, len(e.CurveRefs))
	for _, ref := range e.CurveRefs {
		handle, ok := m.HandleForSequence(ref)
		if !ok {
			return iges.ErrUnresolvedReference
		}
		if err := m.AssociateEntity(handle); err != nil {
			return err
		}
		if err := m.Link(e.Handle(), handle, iges.DependencyLogical); err != nil {
			return err
		}
		e.curveHandles = append(e.curveHandles, handle)
	}

	e.startVertexListHandles = make([]int, 0, len(e.StartVertexList))
	for _, ref := range e.StartVertexList {
		handle, ok := m.HandleForSequence(ref)
		if !ok {
			return iges.ErrUnresolvedReference
		}
		if err := m.AssociateEntity(handle); err != nil {
			return err
		}
		if err := m.Link(e.Handle(), handle, iges.DependencyLogical); err != nil {
			return err
		}
		e.startVertexListHandles = append(e.startVertexListHandles, handle)
	}

	e.endVertexListHandles = make([]int, 0, len(e.EndVertexList))
	for _, ref := range e.EndVertexList {
		handle, ok := m.HandleForSequence(ref)
		if !ok {
			return iges.ErrUnresolvedReference
		}
		if err := m.AssociateEntity(handle); err != nil {
			return err
		}
		if err := m.Link(e.Handle(), handle, iges.DependencyLogical); err != nil {
			return err
		}
		e.endVertexListHandles = append(e.endVertexListHandles, handle)
	}

	e.MarkAssociated()
	return nil
}

// CurveHandles returns the resolved curve handles, in edge order.
func (e *EdgeList) CurveHandles() []int {
	out := make([]int, len(e.curveHandles))
	copy(out, e.curveHandles)
	return out
}

// StartVertexListHandles returns the resolved start-vertex-list handles,
// in edge order.
func (e *EdgeList) StartVertexListHandles() []int {
	out := make([]int, len(e.startVertexListHandles))
	copy(out, e.startVertexListHandles)
	return out
}

// EndVertexListHandles returns the resolved end-vertex-list handles, in
// edge order.
func (e *EdgeList) EndVertexListHandles() []int {
	out := make([]int, len(e.endVertexListHandles))
	copy(out, e.endVertexListHandles)
	return out
}

// Rescale implements iges.Entity. No geometric data of its own.
func (e *EdgeList) Rescale(sf float64) error { return nil }

// Format implements the writeout package's formattable interface.
func (e *EdgeList) Format(pdLineStart int, assigned map[int]int) (iges.PDRecord, int, error) {
	params := []string{formatInt(len(e.curveHandles))}
	for i := range e.curveHandles {
		params = append(params,
			formatInt(resolveHandle(e.curveHandles[i], assigned)),
			formatInt(resolveHandle(e.startVertexListHandles[i], assigned)), formatInt(e.StartVertexIdx[i]),
			formatInt(resolveHandle(e.endVertexListHandles[i], assigned)), formatInt(e.EndVertexIdx[i]),
		)
	}
	return iges.PDRecord{TypeCode: e.TypeCode(), Params: params}, 1 + len(params)/10, nil
}
