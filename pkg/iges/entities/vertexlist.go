package entities

import "github.com/ironplane/ironplane/pkg/iges"

// VertexList is the E502 entity: a flat list of 3D points shared by Edge
// List entities as edge endpoints, the base of the Molex-style BREP family
// (Vertex List / Edge List / Loop / Face / Shell) this package also
// supports alongside the Trimmed Surface representation.
type VertexList struct {
	iges.BaseEntity

	Vertices []float64 // flat X,Y,Z triples
}

// NewVertexList is the iges.Factory for type code 502.
func NewVertexList(handle, typeCode int) iges.Entity {
	v := &VertexList{}
	v.InitBaseEntity(handle, typeCode)
	return v
}

// ReadDE implements iges.Entity.
func (v *VertexList) ReadDE(de iges.DirectoryEntry) error {
	v.SetDE(de)
	return nil
}

// ReadPD implements iges.Entity. Layout: N, X1,Y1,Z1, ..., XN,YN,ZN.
func (v *VertexList) ReadPD(pd iges.PDRecord) error {
	if err := requireLen(pd.Params, 1); err != nil {
		return err
	}
	n, err := parseInts(pd.Params[:1])
	if err != nil {
		return err
	}
	need := 1 + n[0]*3
	if err := requireLen(pd.Params, need); err != nil {
		return err
	}
	vals, err := parseFloats(pd.Params[1:need])
	if err != nil {
		return err
	}
	v.Vertices = vals
	return nil
}

// Count returns the number of vertices in the list.
func (v *VertexList) Count() int { return len(v.Vertices) / 3 }

// Associate implements iges.Entity. A vertex list has no pointer fields.
func (v *VertexList) Associate(m *iges.Model) error {
	v.MarkAssociated()
	return nil
}

// Rescale implements iges.Entity.
func (v *VertexList) Rescale(sf float64) error {
	for i := range v.Vertices {
		v.Vertices[i] *= sf
	}
	return nil
}

// Format implements the writeout package's formattable interface.
func (v *VertexList) Format(pdLineStart int, assigned map[int]int) (iges.PDRecord, int, error) {
	params := []string{formatInt(v.Count())}
	for _, f := range v.Vertices {
		params = append(params, formatFloat(f))
	}
	return iges.PDRecord{TypeCode: v.TypeCode(), Params: params}, 1 + len(params)/10, nil
}
