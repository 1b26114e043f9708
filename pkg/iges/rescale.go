package iges

// bPointerHolder is implemented by an E142 Curve-on-Parametric-Surface
// entity to expose which child handle is its B-pointer (back-pointer) —
// the one curve whose geometry must not be rescaled independently, since
// conceptually it still describes the same parametric boundary regardless
// of the surface's physical scale.
type bPointerHolder interface {
	BPointerHandle() int
}

// Rescale applies sf to every entity in the Model, in two passes: first it
// determines which handles are suppressed (the B-pointer child that some
// E142 reports through BPointerHandle, whatever that child's type), then it
// calls Rescale(sf) on every entity not suppressed. Association must have
// completed before this runs: an E142 records its B-pointer handle only
// when its Associate (or, for an authored entity, LinkRefs) runs.
func (m *Model) Rescale(sf float64) error {
	suppressed := make(map[int]bool)
	for _, e := range m.entities {
		holder, ok := e.(bPointerHolder)
		if !ok {
			continue
		}
		suppressed[holder.BPointerHandle()] = true
	}

	for handle, e := range m.entities {
		if suppressed[handle] {
			continue
		}
		if err := e.Rescale(sf); err != nil {
			return err
		}
	}
	return nil
}
