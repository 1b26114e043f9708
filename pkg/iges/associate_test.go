package iges_test

import (
	"testing"

	"github.com/ironplane/ironplane/pkg/iges"
	"github.com/ironplane/ironplane/pkg/iges/entities"
)

// sliceIterator is the simplest possible iges.RecordIterator: a
// pre-built slice of DE/PD pairs, standing in for whatever the external
// file-grammar parser would otherwise drive.
type sliceIterator struct {
	des []iges.DirectoryEntry
	pds []iges.PDRecord
	i   int
}

func (s *sliceIterator) Next() (iges.DirectoryEntry, iges.PDRecord, bool, error) {
	if s.i >= len(s.des) {
		return iges.DirectoryEntry{}, iges.PDRecord{}, false, nil
	}
	de, pd := s.des[s.i], s.pds[s.i]
	s.i++
	return de, pd, true, nil
}

// TestLoadAssociateOrdering reproduces scenario S6: a Composite Curve (seq
// 1) references a Curve-on-Parametric-Surface (seq 3) whose own DE record
// appears later in the file, and that surface-curve in turn references a
// surface (seq 5) appearing even later. Load must still succeed with both
// entities associated and their parent/child edges matched.
func TestLoadAssociateOrdering(t *testing.T) {
	m := iges.NewModel()
	entities.RegisterAll(m)

	// Composite Curve (seq 1) with one member: the Curve-on-Surface at
	// seq 3.
	ccDE := iges.DirectoryEntry{TypeCode: iges.TypeCompositeCurve, SequenceNumber: 1}
	ccPD := iges.PDRecord{Params: []string{"1", "3"}}

	// A Line (seq 2) that plays no role beyond occupying sequence space
	// between the Composite Curve and its dependency, exercising that
	// load order need not match dependency order.
	lineDE := iges.DirectoryEntry{TypeCode: iges.TypeLine, SequenceNumber: 2}
	linePD := iges.PDRecord{Params: []string{"0", "0", "0", "1", "0", "0"}}

	// Curve-on-Surface (seq 3): surface ref 5, no B or C pointer.
	cosDE := iges.DirectoryEntry{TypeCode: iges.TypeCurveOnSurface, SequenceNumber: 3}
	cosPD := iges.PDRecord{Params: []string{"0", "5", "0", "0", "0"}}

	// Color (seq 4), another irrelevant filler entity.
	colorDE := iges.DirectoryEntry{TypeCode: iges.TypeColor, SequenceNumber: 4}
	colorPD := iges.PDRecord{Params: []string{"100", "0", "0"}}

	// A minimal Rational B-Spline Surface (seq 5): K1=K2=1, M1=M2=1,
	// degenerate but structurally complete for associate purposes.
	surfaceDE := iges.DirectoryEntry{TypeCode: iges.TypeRationalBSplineSurface, SequenceNumber: 5}
	surfaceParams := []string{
		"1", "1", "1", "1", "0", "0", "0", "0", // K1,K2,M1,M2,PROP1-4
		"0", "0", "0", "1", // KnotsU (K1+M1+2 = 4)
		"0", "0", "0", "1", // KnotsV (K2+M2+2 = 4)
		"1", "1", "1", "1", // Weights (K1+1)*(K2+1) = 4
		"0", "0", "0", "1", "0", "0", "0", "1", "0", "1", "1", "0", // 4 control points x3 = 12
		"0", "1", "0", "1", // U0,U1,V0,V1
	}
	surfacePD := iges.PDRecord{Params: surfaceParams}

	it := &sliceIterator{
		des: []iges.DirectoryEntry{ccDE, lineDE, cosDE, colorDE, surfaceDE},
		pds: []iges.PDRecord{ccPD, linePD, cosPD, colorPD, surfacePD},
	}

	if err := m.LoadFromRecords(it); err != nil {
		t.Fatalf("LoadFromRecords: %v", err)
	}

	ccHandle, ok := m.HandleForSequence(1)
	if !ok {
		t.Fatalf("composite curve handle not bound")
	}
	cosHandle, ok := m.HandleForSequence(3)
	if !ok {
		t.Fatalf("curve-on-surface handle not bound")
	}

	cc := m.Entity(ccHandle)
	cos := m.Entity(cosHandle)
	if !cc.Associated() {
		t.Fatalf("composite curve not associated")
	}
	if !cos.Associated() {
		t.Fatalf("curve-on-surface not associated")
	}

	if !containsHandle(cc.Children(), cosHandle) {
		t.Fatalf("composite curve children = %v, want to contain %d", cc.Children(), cosHandle)
	}
	if !containsHandle(cos.Parents(), ccHandle) {
		t.Fatalf("curve-on-surface parents = %v, want to contain %d", cos.Parents(), ccHandle)
	}

	if err := m.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func containsHandle(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
