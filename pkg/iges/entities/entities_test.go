package entities_test

import (
	"testing"

	"github.com/ironplane/ironplane/pkg/iges"
	"github.com/ironplane/ironplane/pkg/iges/entities"
)

func TestLineReadPDAndRescale(t *testing.T) {
	m := iges.NewModel()
	entities.RegisterAll(m)

	e, err := m.CreateEntity(iges.TypeLine)
	if err != nil {
		t.Fatalf("CreateEntity: %v", err)
	}
	line := e.(*entities.Line)
	if err := line.ReadPD(iges.PDRecord{Params: []string{"0", "0", "0", "10", "20", "0"}}); err != nil {
		t.Fatalf("ReadPD: %v", err)
	}

	if err := line.Rescale(2); err != nil {
		t.Fatalf("Rescale: %v", err)
	}
	if line.X2 != 20 || line.Y2 != 40 {
		t.Fatalf("after Rescale(2): X2=%v Y2=%v, want 20, 40", line.X2, line.Y2)
	}

	pd, _, err := line.Format(1, nil)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if len(pd.Params) != 6 {
		t.Fatalf("Format params = %v, want 6 fields", pd.Params)
	}
}

func TestCircularArcReadPD(t *testing.T) {
	m := iges.NewModel()
	entities.RegisterAll(m)

	e, _ := m.CreateEntity(iges.TypeCircularArc)
	arc := e.(*entities.CircularArc)
	if err := arc.ReadPD(iges.PDRecord{Params: []string{"0", "0", "0", "5", "0", "0", "5"}}); err != nil {
		t.Fatalf("ReadPD: %v", err)
	}
	if arc.StartX != 5 || arc.EndY != 5 {
		t.Fatalf("arc = %+v, want StartX=5 EndY=5", arc)
	}
}

func TestCompositeCurveMembersArePhysicalDependencies(t *testing.T) {
	m := iges.NewModel()
	entities.RegisterAll(m)

	lineDE := iges.DirectoryEntry{TypeCode: iges.TypeLine, SequenceNumber: 1}
	linePD := iges.PDRecord{Params: []string{"0", "0", "0", "1", "0", "0"}}
	ccDE := iges.DirectoryEntry{TypeCode: iges.TypeCompositeCurve, SequenceNumber: 2}
	ccPD := iges.PDRecord{Params: []string{"1", "1"}}

	it := &testIterator{des: []iges.DirectoryEntry{lineDE, ccDE}, pds: []iges.PDRecord{linePD, ccPD}}
	if err := m.LoadFromRecords(it); err != nil {
		t.Fatalf("LoadFromRecords: %v", err)
	}

	ccHandle, _ := m.HandleForSequence(2)
	lineHandle, _ := m.HandleForSequence(1)
	cc := m.Entity(ccHandle)

	if cc.DependencyOf(lineHandle) != iges.DependencyPhysical {
		t.Fatalf("DependencyOf(line) = %v, want DependencyPhysical", cc.DependencyOf(lineHandle))
	}
}

type testIterator struct {
	des []iges.DirectoryEntry
	pds []iges.PDRecord
	i   int
}

func (it *testIterator) Next() (iges.DirectoryEntry, iges.PDRecord, bool, error) {
	if it.i >= len(it.des) {
		return iges.DirectoryEntry{}, iges.PDRecord{}, false, nil
	}
	de, pd := it.des[it.i], it.pds[it.i]
	it.i++
	return de, pd, true, nil
}

func TestTrimmedSurfaceAssociateLinksPhysical(t *testing.T) {
	m := iges.NewModel()
	entities.RegisterAll(m)

	surfaceDE := iges.DirectoryEntry{TypeCode: iges.TypeRationalBSplineSurface, SequenceNumber: 1}
	surfacePD := iges.PDRecord{Params: []string{
		"1", "1", "1", "1", "0", "0", "0", "0",
		"0", "0", "0", "1",
		"0", "0", "0", "1",
		"1", "1", "1", "1",
		"0", "0", "0", "1", "0", "0", "0", "1", "0", "1", "1", "0",
		"0", "1", "0", "1",
	}}

	ccDE := iges.DirectoryEntry{TypeCode: iges.TypeCompositeCurve, SequenceNumber: 2}
	ccPD := iges.PDRecord{Params: []string{"0"}}

	tsDE := iges.DirectoryEntry{TypeCode: iges.TypeTrimmedSurface, SequenceNumber: 3}
	tsPD := iges.PDRecord{Params: []string{"1", "1", "0", "2"}}

	it := &testIterator{
		des: []iges.DirectoryEntry{surfaceDE, ccDE, tsDE},
		pds: []iges.PDRecord{surfacePD, ccPD, tsPD},
	}
	if err := m.LoadFromRecords(it); err != nil {
		t.Fatalf("LoadFromRecords: %v", err)
	}

	tsHandle, _ := m.HandleForSequence(3)
	surfaceHandle, _ := m.HandleForSequence(1)
	outerHandle, _ := m.HandleForSequence(2)
	ts := m.Entity(tsHandle)

	if ts.DependencyOf(surfaceHandle) != iges.DependencyPhysical {
		t.Fatalf("DependencyOf(surface) = %v, want Physical", ts.DependencyOf(surfaceHandle))
	}
	if ts.DependencyOf(outerHandle) != iges.DependencyPhysical {
		t.Fatalf("DependencyOf(outer) = %v, want Physical", ts.DependencyOf(outerHandle))
	}
}
