package iges

import "fmt"

// Global holds the Model-wide header fields a client sets before authoring
// or after load (IGES Global section, trimmed to what this package cares
// about — units and resolution are written to the Global section by the
// card writer in pkg/iges/cardio, and neither rescale nor associate reads
// them; author/org are pass-through metadata for the writer).
type Global struct {
	Units          string
	MinResolution  float64
	Author         string
	Organization   string
	FileName       string
}

// DefaultMinResolution is the Model's minimum-resolution default absent an
// explicit SetGlobal call.
const DefaultMinResolution = 1e-6

// Factory creates a bare, uninitialized Entity for typeCode. The returned
// Entity must already have had InitBaseEntity called so Handle/TypeCode are
// valid; ReadDE/ReadPD are invoked by the caller afterward.
type Factory func(handle, typeCode int) Entity

// Model is the root container owning every Entity in an IGES graph: the
// type-indexed factory registry, the handle-indexed entity table, the
// sequence-number-to-handle map used during associate, and the Global
// header. A Model is single-owner — see the package doc's concurrency note.
type Model struct {
	global Global

	factories map[int]Factory

	entities   map[int]Entity
	nextHandle int

	// seqToHandle maps a DE sequence number (as it appeared in the source
	// file, or as assigned by CreateEntity for author-path entities) to
	// the Model-internal handle. Associate resolves every pointer field
	// through this map.
	seqToHandle map[int]int

	// associating marks a handle whose Associate call is currently on the
	// Go call stack (as opposed to Associated(), which is only set once
	// Associate returns successfully). AssociateEntity consults this to
	// break the infinite recursion two mutually-dependent entities would
	// otherwise cause, reporting it as the cyclic dependency it is.
	associating map[int]bool
}

// NewModel returns an empty Model with MinResolution set to
// DefaultMinResolution.
func NewModel() *Model {
	return &Model{
		global:      Global{MinResolution: DefaultMinResolution, Units: "MM"},
		factories:   make(map[int]Factory),
		entities:    make(map[int]Entity),
		seqToHandle: make(map[int]int),
		associating: make(map[int]bool),
		nextHandle:  1,
	}
}

// RegisterFactory installs the constructor for typeCode. A second
// registration for the same type code replaces the first — callers that
// want a conforming model register every factory from pkg/iges/entities at
// startup before Load or CreateEntity is ever called.
func (m *Model) RegisterFactory(typeCode int, f Factory) {
	m.factories[typeCode] = f
}

// CreateEntity creates and registers a bare entity of the given type code,
// assigning it a fresh handle. The caller still owes it a ReadDE/ReadPD (or
// equivalent setter) call before use.
func (m *Model) CreateEntity(typeCode int) (Entity, error) {
	factory, ok := m.factories[typeCode]
	if !ok {
		return nil, fmt.Errorf("%w: type %d", ErrUnsupportedEntity, typeCode)
	}
	handle := m.nextHandle
	m.nextHandle++
	e := factory(handle, typeCode)
	m.entities[handle] = e
	return e, nil
}

// Entity returns the entity registered under handle, or nil if none exists
// (the entity was never created, or has since been deleted).
func (m *Model) Entity(handle int) Entity {
	return m.entities[handle]
}

// Entities returns every currently-registered handle paired with its
// entity, in unspecified order. Callers that need a stable order (e.g. a
// Graphviz dump) should sort the handles themselves.
func (m *Model) Entities() map[int]Entity {
	out := make(map[int]Entity, len(m.entities))
	for h, e := range m.entities {
		out[h] = e
	}
	return out
}

// GetEntitiesByType returns every currently-registered entity whose
// TypeCode matches typeCode, in unspecified order.
func (m *Model) GetEntitiesByType(typeCode int) []Entity {
	var out []Entity
	for _, e := range m.entities {
		if e.TypeCode() == typeCode {
			out = append(out, e)
		}
	}
	return out
}

// SetGlobal replaces the Model's header fields.
func (m *Model) SetGlobal(g Global) { m.global = g }

// Global returns the Model's header fields.
func (m *Model) Global() Global { return m.global }

// HandleForSequence resolves a DE sequence number retained by an entity's
// pointer field to the Model-internal handle, as populated by
// bindSequence during load or CreateEntity during authoring.
func (m *Model) HandleForSequence(seq int) (int, bool) {
	h, ok := m.seqToHandle[seq]
	return h, ok
}

// bindSequence records that seq (the DE sequence number from the source
// file) identifies handle, for later resolution by HandleForSequence.
func (m *Model) bindSequence(seq, handle int) {
	m.seqToHandle[seq] = handle
}

// Link registers a parent -> child edge of the given kind, symmetrically:
// child is appended to parent's child list (AddChild is itself
// deduplicating) and parent is appended to child's parent set. Concrete
// Associate implementations call this once per resolved pointer field.
func (m *Model) Link(parent, child int, kind DependencyKind) error {
	parentEntity := m.entities[parent]
	childEntity := m.entities[child]
	if parentEntity == nil || childEntity == nil {
		return fmt.Errorf("%w: handle %d or %d not found", ErrUnresolvedReference, parent, child)
	}
	base, ok := parentEntity.(interface {
		AddChild(int, DependencyKind)
	})
	if !ok {
		return fmt.Errorf("iges: entity %d does not embed BaseEntity", parent)
	}
	base.AddChild(child, kind)

	childBase, ok := childEntity.(interface{ AddParent(int) })
	if !ok {
		return fmt.Errorf("iges: entity %d does not embed BaseEntity", child)
	}
	childBase.AddParent(parent)
	return nil
}

// DeleteEntity removes handle from the Model and unlinks it from every
// parent and child it participates in. Any child reachable only through a
// DependencyPhysical edge from handle is cascade-deleted in turn, matching
// the "child exists only to serve this parent" semantics of a physical
// dependency.
func (m *Model) DeleteEntity(handle int) error {
	e, ok := m.entities[handle]
	if !ok {
		return nil
	}

	for _, child := range e.Children() {
		childEntity := m.entities[child]
		if childEntity == nil {
			continue
		}
		if base, ok := childEntity.(interface{ RemoveParent(int) }); ok {
			base.RemoveParent(handle)
		}
		if e.DependencyOf(child) == DependencyPhysical && len(childEntity.Parents()) == 0 {
			if err := m.DeleteEntity(child); err != nil {
				return err
			}
		}
	}

	for _, parent := range e.Parents() {
		parentEntity := m.entities[parent]
		if parentEntity == nil {
			continue
		}
		if base, ok := parentEntity.(interface{ RemoveChild(int) }); ok {
			base.RemoveChild(handle)
		}
	}

	delete(m.entities, handle)
	for seq, h := range m.seqToHandle {
		if h == handle {
			delete(m.seqToHandle, seq)
		}
	}
	return nil
}
