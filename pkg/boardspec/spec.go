package boardspec

import (
	"github.com/ironplane/ironplane/pkg/geom"
	"github.com/ironplane/ironplane/pkg/outline"
)

// BoardSpec is the decoded, validated form of a board spec document: a
// closed outer Outline, any number of closed hole Outlines already merged
// in as o.Holes(), and the Z range the board extrudes between.
type BoardSpec struct {
	Outline  *outline.Outline
	BottomZ  float64
	TopZ     float64
}

// document is the JSON wire shape.
type document struct {
	Outline  chainDoc   `json:"outline"`
	Holes    []chainDoc `json:"holes,omitempty"`
	BottomZ  float64    `json:"bottom_z"`
	TopZ     float64    `json:"top_z"`
}

type chainDoc struct {
	Segments []segmentDoc `json:"segments"`
}

type segmentDoc struct {
	Kind   string     `json:"kind"`
	Start  *pointDoc  `json:"start,omitempty"`
	End    *pointDoc  `json:"end,omitempty"`
	Center *pointDoc  `json:"center,omitempty"`
	Radius float64    `json:"radius,omitempty"`
	CW     bool       `json:"cw,omitempty"`
}

type pointDoc struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p *pointDoc) toPoint() geom.Point {
	if p == nil {
		return geom.Point{}
	}
	return geom.Point{X: p.X, Y: p.Y}
}

func fromPoint(p geom.Point) *pointDoc {
	return &pointDoc{X: p.X, Y: p.Y}
}
