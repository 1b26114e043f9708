package iges_test

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/ironplane/ironplane/pkg/iges"
	"github.com/ironplane/ironplane/pkg/iges/entities"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func identityParams(tx, ty, tz float64) []string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return []string{
		"1", "0", "0", f(tx),
		"0", "1", "0", f(ty),
		"0", "0", "1", f(tz),
	}
}

func TestEffectiveTransformComposesChain(t *testing.T) {
	m := iges.NewModel()
	entities.RegisterAll(m)

	// Root transform (seq 1): translate by (10, 0, 0), no parent.
	rootDE := iges.DirectoryEntry{TypeCode: iges.TypeTransformationMatrix, SequenceNumber: 1}
	rootPD := iges.PDRecord{Params: identityParams(10, 0, 0)}

	// Child transform (seq 2): translate by (0, 5, 0), chained to seq 1
	// via its own DE.TransformRef.
	childDE := iges.DirectoryEntry{TypeCode: iges.TypeTransformationMatrix, SequenceNumber: 2, TransformRef: 1}
	childPD := iges.PDRecord{Params: identityParams(0, 5, 0)}

	it := &sliceIterator{
		des: []iges.DirectoryEntry{rootDE, childDE},
		pds: []iges.PDRecord{rootPD, childPD},
	}
	if err := m.LoadFromRecords(it); err != nil {
		t.Fatalf("LoadFromRecords: %v", err)
	}

	childHandle, ok := m.HandleForSequence(2)
	if !ok {
		t.Fatalf("child handle not bound")
	}

	eff, err := m.EffectiveTransform(childHandle)
	if err != nil {
		t.Fatalf("EffectiveTransform: %v", err)
	}
	x, y, z := eff.Apply(0, 0, 0)
	if !almostEqual(x, 10) || !almostEqual(y, 5) || !almostEqual(z, 0) {
		t.Fatalf("EffectiveTransform origin = (%v, %v, %v), want (10, 5, 0)", x, y, z)
	}
}

func TestAssociateRejectsTransformCycle(t *testing.T) {
	m := iges.NewModel()
	entities.RegisterAll(m)

	// Two transforms that reference each other: seq 1 -> seq 2 -> seq 1.
	de1 := iges.DirectoryEntry{TypeCode: iges.TypeTransformationMatrix, SequenceNumber: 1, TransformRef: 2}
	pd1 := iges.PDRecord{Params: identityParams(0, 0, 0)}
	de2 := iges.DirectoryEntry{TypeCode: iges.TypeTransformationMatrix, SequenceNumber: 2, TransformRef: 1}
	pd2 := iges.PDRecord{Params: identityParams(0, 0, 0)}

	it := &sliceIterator{
		des: []iges.DirectoryEntry{de1, de2},
		pds: []iges.PDRecord{pd1, pd2},
	}

	err := m.LoadFromRecords(it)
	if err == nil {
		t.Fatalf("LoadFromRecords = nil, want error for a transform-reference cycle")
	}
	var loadErr *iges.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("err = %v, want *iges.LoadError", err)
	}
	if !errors.Is(loadErr, iges.ErrCyclicDependency) {
		t.Fatalf("loadErr = %v, want to wrap ErrCyclicDependency", loadErr)
	}
}

func TestWouldCycleDetectsSelfReference(t *testing.T) {
	m := iges.NewModel()
	entities.RegisterAll(m)

	a, _ := m.CreateEntity(iges.TypeTransformationMatrix)

	if !m.WouldCycle(a.Handle(), a.Handle()) {
		t.Fatalf("WouldCycle(a, a) = false, want true (trivial self-cycle)")
	}
}
