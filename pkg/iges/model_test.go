package iges_test

import (
	"errors"
	"testing"

	"github.com/ironplane/ironplane/pkg/iges"
)

// stubEntity is a minimal iges.Entity for exercising Model bookkeeping
// without pulling in pkg/iges/entities (which would make this an
// unwanted import cycle in spirit, if not in fact — these tests are
// about the graph, not any one entity's payload).
type stubEntity struct {
	iges.BaseEntity
}

func newStub(handle, typeCode int) iges.Entity {
	s := &stubEntity{}
	s.InitBaseEntity(handle, typeCode)
	return s
}

func (s *stubEntity) ReadDE(de iges.DirectoryEntry) error { s.SetDE(de); return nil }
func (s *stubEntity) ReadPD(pd iges.PDRecord) error       { return nil }
func (s *stubEntity) Associate(m *iges.Model) error       { s.MarkAssociated(); return nil }
func (s *stubEntity) Rescale(sf float64) error            { return nil }

func newModelWithStub(t *testing.T) *iges.Model {
	t.Helper()
	m := iges.NewModel()
	m.RegisterFactory(110, newStub)
	return m
}

func TestLinkIsSymmetric(t *testing.T) {
	m := newModelWithStub(t)
	parent, err := m.CreateEntity(110)
	if err != nil {
		t.Fatalf("CreateEntity: %v", err)
	}
	child, err := m.CreateEntity(110)
	if err != nil {
		t.Fatalf("CreateEntity: %v", err)
	}

	if err := m.Link(parent.Handle(), child.Handle(), iges.DependencyLogical); err != nil {
		t.Fatalf("Link: %v", err)
	}

	if got := parent.Children(); len(got) != 1 || got[0] != child.Handle() {
		t.Fatalf("parent.Children() = %v, want [%d]", got, child.Handle())
	}
	if got := child.Parents(); len(got) != 1 || got[0] != parent.Handle() {
		t.Fatalf("child.Parents() = %v, want [%d]", got, parent.Handle())
	}

	if err := m.Validate(); err != nil {
		t.Fatalf("Validate() after Link = %v, want nil", err)
	}
}

func TestDeleteEntityUnlinksBothSides(t *testing.T) {
	m := newModelWithStub(t)
	parent, _ := m.CreateEntity(110)
	child, _ := m.CreateEntity(110)
	if err := m.Link(parent.Handle(), child.Handle(), iges.DependencyLogical); err != nil {
		t.Fatalf("Link: %v", err)
	}

	if err := m.DeleteEntity(child.Handle()); err != nil {
		t.Fatalf("DeleteEntity: %v", err)
	}

	if got := parent.Children(); len(got) != 0 {
		t.Fatalf("parent.Children() after delete = %v, want empty", got)
	}
	if e := m.Entity(child.Handle()); e != nil {
		t.Fatalf("Entity(child) after delete = %v, want nil", e)
	}
}

func TestDeleteEntityCascadesPhysicalDependency(t *testing.T) {
	m := newModelWithStub(t)
	parent, _ := m.CreateEntity(110)
	child, _ := m.CreateEntity(110)
	if err := m.Link(parent.Handle(), child.Handle(), iges.DependencyPhysical); err != nil {
		t.Fatalf("Link: %v", err)
	}

	if err := m.DeleteEntity(parent.Handle()); err != nil {
		t.Fatalf("DeleteEntity: %v", err)
	}

	if e := m.Entity(child.Handle()); e != nil {
		t.Fatalf("physically-dependent child survived parent delete: %v", e)
	}
}

func TestDeleteEntityDoesNotCascadeLogicalDependency(t *testing.T) {
	m := newModelWithStub(t)
	parent, _ := m.CreateEntity(110)
	child, _ := m.CreateEntity(110)
	if err := m.Link(parent.Handle(), child.Handle(), iges.DependencyLogical); err != nil {
		t.Fatalf("Link: %v", err)
	}

	if err := m.DeleteEntity(parent.Handle()); err != nil {
		t.Fatalf("DeleteEntity: %v", err)
	}

	if e := m.Entity(child.Handle()); e == nil {
		t.Fatalf("logically-dependent child was cascade-deleted, want survival")
	}
}

func TestCreateEntityUnsupportedType(t *testing.T) {
	m := iges.NewModel()
	_, err := m.CreateEntity(999)
	if !errors.Is(err, iges.ErrUnsupportedEntity) {
		t.Fatalf("err = %v, want ErrUnsupportedEntity", err)
	}
}

func TestAssociateEntityIdempotent(t *testing.T) {
	m := newModelWithStub(t)
	e, _ := m.CreateEntity(110)

	if err := m.AssociateEntity(e.Handle()); err != nil {
		t.Fatalf("first AssociateEntity: %v", err)
	}
	if !e.Associated() {
		t.Fatalf("Associated() = false after first call")
	}

	// A second call must be a pure no-op (property 2): Associate itself
	// is never invoked again once the flag is set.
	if err := m.AssociateEntity(e.Handle()); err != nil {
		t.Fatalf("second AssociateEntity: %v", err)
	}
}

func TestValidateAcceptsAcyclicLink(t *testing.T) {
	m := newModelWithStub(t)
	child, _ := m.CreateEntity(110)
	parent, _ := m.CreateEntity(110)
	if err := m.Link(parent.Handle(), child.Handle(), iges.DependencyLogical); err != nil {
		t.Fatalf("Link: %v", err)
	}

	if err := m.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil (acyclic graph)", err)
	}
}
