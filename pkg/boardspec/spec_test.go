package boardspec_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ironplane/ironplane/pkg/boardspec"
)

const rectangleWithHole = `{
  "outline": {
    "segments": [
      {"kind": "line", "start": {"x": 0, "y": 0}, "end": {"x": 10, "y": 0}},
      {"kind": "line", "start": {"x": 10, "y": 0}, "end": {"x": 10, "y": 10}},
      {"kind": "line", "start": {"x": 10, "y": 10}, "end": {"x": 0, "y": 10}},
      {"kind": "line", "start": {"x": 0, "y": 10}, "end": {"x": 0, "y": 0}}
    ]
  },
  "holes": [
    {"segments": [{"kind": "circle", "center": {"x": 5, "y": 5}, "radius": 1}]}
  ],
  "bottom_z": 0,
  "top_z": 1.6
}`

func TestReadBoardSpecRectangleWithHole(t *testing.T) {
	spec, err := boardspec.ReadBoardSpec(strings.NewReader(rectangleWithHole))
	if err != nil {
		t.Fatalf("ReadBoardSpec: %v", err)
	}
	if spec.BottomZ != 0 || spec.TopZ != 1.6 {
		t.Fatalf("Z range = [%v, %v], want [0, 1.6]", spec.BottomZ, spec.TopZ)
	}
	if len(spec.Outline.Holes()) != 1 {
		t.Fatalf("Holes() = %d, want 1", len(spec.Outline.Holes()))
	}
}

func TestReadBoardSpecRejectsInvertedZRange(t *testing.T) {
	bad := `{"outline": {"segments": []}, "bottom_z": 2, "top_z": 1}`
	if _, err := boardspec.ReadBoardSpec(strings.NewReader(bad)); err == nil {
		t.Fatalf("ReadBoardSpec with top_z < bottom_z succeeded, want error")
	}
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	spec, err := boardspec.ReadBoardSpec(strings.NewReader(rectangleWithHole))
	if err != nil {
		t.Fatalf("ReadBoardSpec: %v", err)
	}

	var buf bytes.Buffer
	if err := boardspec.WriteBoardSpec(spec, &buf); err != nil {
		t.Fatalf("WriteBoardSpec: %v", err)
	}

	reread, err := boardspec.ReadBoardSpec(&buf)
	if err != nil {
		t.Fatalf("ReadBoardSpec (round trip): %v", err)
	}
	if len(reread.Outline.Holes()) != len(spec.Outline.Holes()) {
		t.Fatalf("round-trip hole count = %d, want %d", len(reread.Outline.Holes()), len(spec.Outline.Holes()))
	}
	if reread.TopZ != spec.TopZ || reread.BottomZ != spec.BottomZ {
		t.Fatalf("round-trip Z range = [%v, %v], want [%v, %v]", reread.BottomZ, reread.TopZ, spec.BottomZ, spec.TopZ)
	}
}

func TestReadBoardSpecUnknownSegmentKind(t *testing.T) {
	bad := `{"outline": {"segments": [{"kind": "spline"}]}, "bottom_z": 0, "top_z": 1}`
	if _, err := boardspec.ReadBoardSpec(strings.NewReader(bad)); err == nil {
		t.Fatalf("ReadBoardSpec with unknown segment kind succeeded, want error")
	}
}
