package entities

import "github.com/ironplane/ironplane/pkg/iges"

// TransformationMatrix is the E124 entity: a 3x4 rigid-body matrix, with
// an optional pointer to a parent transformation it chains from.
type TransformationMatrix struct {
	iges.BaseEntity

	R [3][3]float64
	T [3]float64

	ParentRef    int
	parentHandle int
}

// NewTransformationMatrix is the iges.Factory for type code 124.
func NewTransformationMatrix(handle, typeCode int) iges.Entity {
	t := &TransformationMatrix{parentHandle: -1}
	t.InitBaseEntity(handle, typeCode)
	return t
}

// ReadDE implements iges.Entity. A transformation matrix chains to its
// parent through its own DE TransformRef field, same as any other entity.
func (t *TransformationMatrix) ReadDE(de iges.DirectoryEntry) error {
	t.SetDE(de)
	t.ParentRef = de.TransformRef
	return nil
}

// ReadPD implements iges.Entity. Layout: R11,R12,R13,T1,R21,R22,R23,T2,
// R31,R32,R33,T3 (IGES's row-major 3x4 form).
func (t *TransformationMatrix) ReadPD(pd iges.PDRecord) error {
	if err := requireLen(pd.Params, 12); err != nil {
		return err
	}
	vals, err := parseFloats(pd.Params[:12])
	if err != nil {
		return err
	}
	t.R[0][0], t.R[0][1], t.R[0][2], t.T[0] = vals[0], vals[1], vals[2], vals[3]
	t.R[1][0], t.R[1][1], t.R[1][2], t.T[1] = vals[4], vals[5], vals[6], vals[7]
	t.R[2][0], t.R[2][1], t.R[2][2], t.T[2] = vals[8], vals[9], vals[10], vals[11]
	return nil
}

// Associate implements iges.Entity.
func (t *TransformationMatrix) Associate(m *iges.Model) error {
	if t.ParentRef != 0 {
		handle, ok := m.HandleForSequence(t.ParentRef)
		if !ok {
			return iges.ErrUnresolvedReference
		}
		if m.WouldCycle(t.Handle(), handle) {
			return iges.ErrCyclicDependency
		}
		if err := m.AssociateEntity(handle); err != nil {
			return err
		}
		if err := m.Link(t.Handle(), handle, iges.DependencyLogical); err != nil {
			return err
		}
		t.parentHandle = handle
	}
	t.MarkAssociated()
	return nil
}

// ParentTransformHandle implements the package-internal transformChain
// interface Model.EffectiveTransform relies on.
func (t *TransformationMatrix) ParentTransformHandle() int { return t.parentHandle }

// LocalTransform implements the package-internal transformChain interface.
func (t *TransformationMatrix) LocalTransform() iges.Transform {
	return iges.Transform{R: t.R, T: t.T}
}

// Rescale implements iges.Entity: only the translation column scales with
// length; rotation is scale-invariant.
func (t *TransformationMatrix) Rescale(sf float64) error {
	t.T[0] *= sf
	t.T[1] *= sf
	t.T[2] *= sf
	return nil
}

// Format implements the writeout package's formattable interface.
func (t *TransformationMatrix) Format(pdLineStart int, assigned map[int]int) (iges.PDRecord, int, error) {
	pd := iges.PDRecord{
		TypeCode: t.TypeCode(),
		Params: []string{
			formatFloat(t.R[0][0]), formatFloat(t.R[0][1]), formatFloat(t.R[0][2]), formatFloat(t.T[0]),
			formatFloat(t.R[1][0]), formatFloat(t.R[1][1]), formatFloat(t.R[1][2]), formatFloat(t.T[1]),
			formatFloat(t.R[2][0]), formatFloat(t.R[2][1]), formatFloat(t.R[2][2]), formatFloat(t.T[2]),
		},
	}
	return pd, 1, nil
}
