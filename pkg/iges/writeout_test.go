package iges_test

import (
	"testing"

	"github.com/ironplane/ironplane/pkg/iges"
)

// recordingSink implements iges.RecordSink by appending every DE it
// receives, in call order, so the test can inspect write-out ordering.
type recordingSink struct {
	des []iges.DirectoryEntry
}

func (s *recordingSink) Put(de iges.DirectoryEntry, pd iges.PDRecord) error {
	s.des = append(s.des, de)
	return nil
}

// TestWriteToRecordsChildBeforeParent exercises property 7: every
// referenced entity's write-out sequence number is lower than any of its
// referrers'.
func TestWriteToRecordsChildBeforeParent(t *testing.T) {
	m := newModelWithStub(t)
	child, _ := m.CreateEntity(110)
	parent, _ := m.CreateEntity(110)
	grandparent, _ := m.CreateEntity(110)

	if err := m.Link(parent.Handle(), child.Handle(), iges.DependencyLogical); err != nil {
		t.Fatalf("Link: %v", err)
	}
	if err := m.Link(grandparent.Handle(), parent.Handle(), iges.DependencyLogical); err != nil {
		t.Fatalf("Link: %v", err)
	}

	sink := &recordingSink{}
	if err := m.WriteToRecords(sink); err != nil {
		t.Fatalf("WriteToRecords: %v", err)
	}

	if len(sink.des) != 3 {
		t.Fatalf("wrote %d records, want 3", len(sink.des))
	}

	// The recording order itself is the topological order: child (index
	// 0) must precede parent (index 1), which must precede grandparent
	// (index 2), and each successive sequence number must be strictly
	// greater.
	if sink.des[0].SequenceNumber >= sink.des[1].SequenceNumber {
		t.Fatalf("child seq %d not before parent seq %d", sink.des[0].SequenceNumber, sink.des[1].SequenceNumber)
	}
	if sink.des[1].SequenceNumber >= sink.des[2].SequenceNumber {
		t.Fatalf("parent seq %d not before grandparent seq %d", sink.des[1].SequenceNumber, sink.des[2].SequenceNumber)
	}
}

func TestValidateDetectsMissingMirrorEdge(t *testing.T) {
	m := newModelWithStub(t)
	parent, _ := m.CreateEntity(110)
	child, _ := m.CreateEntity(110)

	// Deliberately break the symmetry invariant by adding only the
	// parent->child side, bypassing Model.Link.
	type childAdder interface{ AddChild(int, iges.DependencyKind) }
	parent.(childAdder).AddChild(child.Handle(), iges.DependencyLogical)

	if err := m.Validate(); err == nil {
		t.Fatalf("Validate() = nil, want error for asymmetric edge")
	}
}
