package iges_test

import (
	"testing"

	"github.com/ironplane/ironplane/pkg/iges"
	"github.com/ironplane/ironplane/pkg/iges/entities"
)

// TestRescaleSuppressesBPointerChild builds a Curve-on-Parametric-Surface
// (seq 4) whose B-pointer (seq 1) is a Line standing in for a 2D
// parameter-space curve, whose C-pointer (seq 2) is a second Line standing
// in for the equivalent 3D model-space curve, and whose surface (seq 3) is
// a minimal Rational B-Spline Surface. Model.Rescale must skip the B
// curve's geometry entirely while still scaling the C curve and the
// surface's control points.
func TestRescaleSuppressesBPointerChild(t *testing.T) {
	m := iges.NewModel()
	entities.RegisterAll(m)

	// B curve (seq 1): a Line in the surface's own (u, v) parameter space.
	bDE := iges.DirectoryEntry{TypeCode: iges.TypeLine, SequenceNumber: 1}
	bPD := iges.PDRecord{Params: []string{"0", "0", "0", "1", "1", "0"}}

	// C curve (seq 2): the corresponding 3D model-space Line.
	cDE := iges.DirectoryEntry{TypeCode: iges.TypeLine, SequenceNumber: 2}
	cPD := iges.PDRecord{Params: []string{"0", "0", "0", "2", "2", "0"}}

	// Minimal Rational B-Spline Surface (seq 3), same degenerate shape
	// TestLoadAssociateOrdering uses.
	surfaceDE := iges.DirectoryEntry{TypeCode: iges.TypeRationalBSplineSurface, SequenceNumber: 3}
	surfaceParams := []string{
		"1", "1", "1", "1", "0", "0", "0", "0", // K1,K2,M1,M2,PROP1-4
		"0", "0", "0", "1", // KnotsU (K1+M1+2 = 4)
		"0", "0", "0", "1", // KnotsV (K2+M2+2 = 4)
		"1", "1", "1", "1", // Weights (K1+1)*(K2+1) = 4
		"0", "0", "0", "1", "0", "0", "0", "1", "0", "1", "1", "0", // 4 control points x3 = 12
		"0", "1", "0", "1", // U0,U1,V0,V1
	}
	surfacePD := iges.PDRecord{Params: surfaceParams}

	// Curve-on-Surface (seq 4): surface ref 3, B ref 1, C ref 2.
	cosDE := iges.DirectoryEntry{TypeCode: iges.TypeCurveOnSurface, SequenceNumber: 4}
	cosPD := iges.PDRecord{Params: []string{"0", "3", "1", "2", "0"}}

	it := &sliceIterator{
		des: []iges.DirectoryEntry{bDE, cDE, surfaceDE, cosDE},
		pds: []iges.PDRecord{bPD, cPD, surfacePD, cosPD},
	}
	if err := m.LoadFromRecords(it); err != nil {
		t.Fatalf("LoadFromRecords: %v", err)
	}

	bHandle, _ := m.HandleForSequence(1)
	cHandle, _ := m.HandleForSequence(2)
	surfaceHandle, _ := m.HandleForSequence(3)

	bLine := m.Entity(bHandle).(*entities.Line)
	cLine := m.Entity(cHandle).(*entities.Line)
	surface := m.Entity(surfaceHandle).(*entities.RationalBSplineSurface)

	wantSurfaceCP := append([]float64{}, surface.ControlPoints...)
	for i := range wantSurfaceCP {
		wantSurfaceCP[i] *= 2
	}

	if err := m.Rescale(2); err != nil {
		t.Fatalf("Rescale: %v", err)
	}

	if bLine.X2 != 1 || bLine.Y2 != 1 {
		t.Fatalf("B-pointer curve = %+v, want untouched (X2=1, Y2=1)", bLine)
	}
	if cLine.X2 != 4 || cLine.Y2 != 4 {
		t.Fatalf("C curve = %+v, want scaled (X2=4, Y2=4)", cLine)
	}
	for i, got := range surface.ControlPoints {
		if got != wantSurfaceCP[i] {
			t.Fatalf("surface.ControlPoints[%d] = %v, want %v", i, got, wantSurfaceCP[i])
		}
	}
}
