package boardspec

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ironplane/ironplane/pkg/geom"
	"github.com/ironplane/ironplane/pkg/outline"
)

// ReadBoardSpec decodes a board spec document from r, builds and closes
// the outer outline and every hole outline via pkg/outline, subtracts each
// hole from the outer outline, and returns the result.
//
// ReadBoardSpec returns an error if the JSON is malformed, if top_z does
// not exceed bottom_z, or if any chain fails to build into a closed
// outline (a discontinuous chain, a degenerate segment, or a hole that
// does not lie fully inside the outer outline).
func ReadBoardSpec(r io.Reader) (*BoardSpec, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if doc.TopZ <= doc.BottomZ {
		return nil, fmt.Errorf("boardspec: top_z %v must exceed bottom_z %v", doc.TopZ, doc.BottomZ)
	}

	o, err := buildOutline(doc.Outline)
	if err != nil {
		return nil, fmt.Errorf("outline: %w", err)
	}

	for i, hd := range doc.Holes {
		hole, err := buildOutline(hd)
		if err != nil {
			return nil, fmt.Errorf("hole %d: %w", i, err)
		}
		o, err = o.Subtract(hole)
		if err != nil {
			return nil, fmt.Errorf("hole %d: subtract: %w", i, err)
		}
	}

	return &BoardSpec{Outline: o, BottomZ: doc.BottomZ, TopZ: doc.TopZ}, nil
}

// ImportBoardSpec reads a board spec JSON file at path and returns the
// decoded, closed BoardSpec.
func ImportBoardSpec(path string) (*BoardSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadBoardSpec(f)
}

func buildOutline(cd chainDoc) (*outline.Outline, error) {
	o := outline.New()
	for i, sd := range cd.Segments {
		seg, err := buildSegment(sd)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		if err := o.AddSegment(seg); err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
	}
	if err := o.Close(); err != nil {
		return nil, err
	}
	return o, nil
}

func buildSegment(sd segmentDoc) (geom.Segment, error) {
	switch sd.Kind {
	case "line":
		return geom.NewLine(sd.Start.toPoint(), sd.End.toPoint())
	case "arc":
		return geom.NewArc(sd.Center.toPoint(), sd.Start.toPoint(), sd.End.toPoint(), sd.CW)
	case "circle":
		return geom.NewCircle(sd.Center.toPoint(), sd.Radius)
	default:
		return geom.Segment{}, fmt.Errorf("boardspec: unknown segment kind %q", sd.Kind)
	}
}
