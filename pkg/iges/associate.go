package iges

import "fmt"

// LoadFromRecords runs the two-phase load: phase 1 creates and populates
// every entity from its DE/PD pair (pointer fields stay as raw sequence
// numbers); phase 2 runs AssociateEntity over every entity, resolving
// pointers into handles. Failures in either phase are collected per-entity
// rather than aborting the load; a non-nil *LoadError is returned if any
// entity failed either phase, but every entity that did succeed remains in
// the Model.
func (m *Model) LoadFromRecords(it RecordIterator) error {
	var failures []error
	var handles []int

	for {
		de, pd, ok, err := it.Next()
		if err != nil {
			failures = append(failures, fmt.Errorf("%w: %v", ErrIO, err))
			continue
		}
		if !ok {
			break
		}

		factory, exists := m.factories[de.TypeCode]
		if !exists {
			failures = append(failures, fmt.Errorf("%w: type %d (seq %d)", ErrUnsupportedEntity, de.TypeCode, de.SequenceNumber))
			continue
		}

		handle := m.nextHandle
		m.nextHandle++
		e := factory(handle, de.TypeCode)
		if err := e.ReadDE(de); err != nil {
			failures = append(failures, fmt.Errorf("seq %d: %w", de.SequenceNumber, err))
			continue
		}
		if err := e.ReadPD(pd); err != nil {
			failures = append(failures, fmt.Errorf("seq %d: %w", de.SequenceNumber, err))
			continue
		}

		m.entities[handle] = e
		m.bindSequence(de.SequenceNumber, handle)
		handles = append(handles, handle)
	}

	for _, h := range handles {
		if err := m.AssociateEntity(h); err != nil {
			failures = append(failures, fmt.Errorf("handle %d: %w", h, err))
		}
	}

	if len(failures) > 0 {
		return &LoadError{Failures: failures}
	}
	return nil
}

// AssociateEntity runs Associate on the entity at handle, recursing into
// its not-yet-associated dependencies first where the entity's own
// Associate implementation requests that (e.g. an E102 Composite Curve
// referencing an E142 whose DE appears later in the file). It is a no-op
// if the entity is already associated — the idempotency guarantee callers
// such as a recursive Composite Curve Associate rely on.
func (m *Model) AssociateEntity(handle int) error {
	e := m.entities[handle]
	if e == nil {
		return fmt.Errorf("%w: handle %d", ErrUnresolvedReference, handle)
	}
	if e.Associated() {
		return nil
	}
	if m.associating[handle] {
		return fmt.Errorf("%w: handle %d", ErrCyclicDependency, handle)
	}

	m.associating[handle] = true
	defer delete(m.associating, handle)
	return e.Associate(m)
}
