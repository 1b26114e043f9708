package outline

import (
	"math"

	"github.com/ironplane/ironplane/pkg/geom"
)

// location pinpoints a point on a segment chain: the segment's index and
// the point itself (assumed to lie on that segment within geom.Epsilon).
type location struct {
	index int
	point geom.Point
}

// locate finds the chain segment that p lies on. It is used by Split to
// translate the two geometric intersection points produced by
// pairIntersections into positions along each outline's own chain.
func locate(segs []geom.Segment, p geom.Point) (location, bool) {
	for i, s := range segs {
		if onSegment(s, p) {
			return location{index: i, point: p}, true
		}
	}
	return location{}, false
}

// onSegment reports whether p lies on s within geom.Epsilon.
func onSegment(s geom.Segment, p geom.Point) bool {
	switch s.Kind {
	case geom.KindLine:
		return onLine(s, p)
	default:
		if math.Abs(s.Center.Distance(p)-s.Radius) > geom.RadialTolerance {
			return false
		}
		return s.InAngularInterval(s.Center.Angle(p))
	}
}

func onLine(s geom.Segment, p geom.Point) bool {
	dir := s.End.Sub(s.Start)
	toP := p.Sub(s.Start)
	length := math.Hypot(dir.X, dir.Y)
	if length < geom.Epsilon {
		return s.Start.Equal(p)
	}
	cross := dir.X*toP.Y - dir.Y*toP.X
	if math.Abs(cross)/length > geom.Epsilon {
		return false
	}
	t := toP.Dot(dir) / dir.Dot(dir)
	return t >= -geom.Epsilon && t <= 1+geom.Epsilon
}

// trimSegment returns the portion of s between from and to, both assumed to
// lie on s with from preceding to in s's own forward traversal direction. If
// from or to coincide with s's existing endpoints the trim is a no-op on
// that side.
func trimSegment(s geom.Segment, from, to geom.Point) (geom.Segment, error) {
	if s.Kind == geom.KindLine {
		return geom.NewLine(from, to)
	}
	return geom.NewArc(s.Center, from, to, s.CW)
}

// Split divides the closed chain segs into two open chains at the two
// locations loc1 and loc2 (which must fall on different points of the
// perimeter): chainFwd runs from loc1 to loc2 in the chain's own traversal
// direction, chainBack runs from loc2 back around to loc1.
func splitChain(segs []geom.Segment, loc1, loc2 location) (chainFwd, chainBack []geom.Segment, err error) {
	chainFwd, err = buildChain(segs, loc1, loc2)
	if err != nil {
		return nil, nil, err
	}
	chainBack, err = buildChain(segs, loc2, loc1)
	if err != nil {
		return nil, nil, err
	}
	return chainFwd, chainBack, nil
}

// buildChain walks segs starting at from.index, beginning at from.point,
// and accumulates segments (trimming the first and last) until it reaches
// to.point on to.index. When both lie on one segment with from ahead of to
// (always, for a circle) the chain is that single trimmed piece; otherwise
// it wraps around the whole loop.
func buildChain(segs []geom.Segment, from, to location) ([]geom.Segment, error) {
	n := len(segs)
	var chain []geom.Segment

	if from.index == to.index {
		seg := segs[from.index]
		fromOff, toOff := seg.Start.Distance(from.point), seg.Start.Distance(to.point)
		if seg.Kind == geom.KindArc {
			a0 := seg.Center.Angle(seg.Start)
			fromOff = math.Mod(seg.Center.Angle(from.point)-a0+4*math.Pi, 2*math.Pi)
			toOff = math.Mod(seg.Center.Angle(to.point)-a0+4*math.Pi, 2*math.Pi)
		}
		if seg.Kind == geom.KindCircle || fromOff < toOff {
			trimmed, err := trimSegment(seg, from.point, to.point)
			if err != nil {
				return nil, err
			}
			return []geom.Segment{trimmed}, nil
		}
	}

	first := segs[from.index]
	if !from.point.Equal(first.End) {
		trimmedFirst, err := trimSegment(first, from.point, first.End)
		if err != nil {
			return nil, err
		}
		chain = append(chain, trimmedFirst)
	}

	for i := (from.index + 1) % n; i != to.index; i = (i + 1) % n {
		chain = append(chain, segs[i])
	}

	last := segs[to.index]
	if !to.point.Equal(last.Start) {
		trimmedLast, err := trimSegment(last, last.Start, to.point)
		if err != nil {
			return nil, err
		}
		chain = append(chain, trimmedLast)
	}

	return chain, nil
}
