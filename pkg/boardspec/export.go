package boardspec

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ironplane/ironplane/pkg/geom"
)

// WriteBoardSpec encodes spec as JSON and writes it to w: the outer
// outline's own segments, each recorded hole's segments, and the Z range.
// Re-importing the result with [ReadBoardSpec] reproduces the same
// geometry, since holes recorded on an Outline are by construction the
// fully-enclosed case Subtract leaves as a separate nested loop rather
// than stitching into the outer boundary.
func WriteBoardSpec(spec *BoardSpec, w io.Writer) error {
	doc := document{
		Outline: chainFromSegments(spec.Outline.Segments()),
		BottomZ: spec.BottomZ,
		TopZ:    spec.TopZ,
	}
	for _, hole := range spec.Outline.Holes() {
		doc.Holes = append(doc.Holes, chainFromSegments(hole.Segments()))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportBoardSpec writes spec to a JSON file at path, creating or
// truncating it with 0644 permissions.
func ExportBoardSpec(spec *BoardSpec, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteBoardSpec(spec, f)
}

func chainFromSegments(segs []geom.Segment) chainDoc {
	cd := chainDoc{Segments: make([]segmentDoc, len(segs))}
	for i, s := range segs {
		cd.Segments[i] = segmentFromGeom(s)
	}
	return cd
}

func segmentFromGeom(s geom.Segment) segmentDoc {
	switch s.Kind {
	case geom.KindLine:
		return segmentDoc{Kind: "line", Start: fromPoint(s.Start), End: fromPoint(s.End)}
	case geom.KindCircle:
		return segmentDoc{Kind: "circle", Center: fromPoint(s.Center), Radius: s.Radius}
	default:
		return segmentDoc{
			Kind:   "arc",
			Center: fromPoint(s.Center),
			Start:  fromPoint(s.Start),
			End:    fromPoint(s.End),
			CW:     s.CW,
		}
	}
}
