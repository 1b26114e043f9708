package iges

import (
	"fmt"
	"sort"
)

// WriteToRecords assigns DE sequence numbers in topological order (every
// child before any parent that references it) and pushes each entity's
// directory entry and parameter data to sink in that order.
func (m *Model) WriteToRecords(sink RecordSink) error {
	order, err := m.topologicalOrder()
	if err != nil {
		return err
	}

	seq := 1
	assigned := make(map[int]int, len(order))
	for _, handle := range order {
		assigned[handle] = seq
		seq += 2 // DE records occupy two physical lines per entity.
	}

	pdLine := 1
	for _, handle := range order {
		e := m.entities[handle]
		de := e.DE()
		de.SequenceNumber = assigned[handle]
		de = resolvePointerFields(de, assigned)

		pd, lines, err := formatEntity(e, pdLine, assigned)
		if err != nil {
			return err
		}
		pdLine += lines

		if err := sink.Put(de, pd); err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
	}
	return nil
}

// resolvePointerFields rewrites de's pointer fields from Model handles to
// the freshly assigned write-out sequence numbers. Fields that were never
// set (zero) are left untouched.
func resolvePointerFields(de DirectoryEntry, assigned map[int]int) DirectoryEntry {
	rewrite := func(handle int) int {
		if handle == 0 {
			return 0
		}
		if seq, ok := assigned[handle]; ok {
			return seq
		}
		return handle
	}
	de.StructureRef = rewrite(de.StructureRef)
	de.LineFontRef = rewrite(de.LineFontRef)
	de.LevelRef = rewrite(de.LevelRef)
	de.ViewRef = rewrite(de.ViewRef)
	de.TransformRef = rewrite(de.TransformRef)
	de.LabelRef = rewrite(de.LabelRef)
	de.ColorRef = rewrite(de.ColorRef)
	return de
}

// formattable is implemented by a concrete entity that can render its own
// PD payload; format(index) returns the record and the number of PD lines
// it consumed, to let the caller keep a running PD line counter. assigned
// is the same Model handle -> write-out DE sequence number map
// resolvePointerFields uses for DE-level fields; a Format implementation
// with PD-level pointer fields of its own must rewrite them through it
// before returning.
type formattable interface {
	Format(pdLineStart int, assigned map[int]int) (PDRecord, int, error)
}

func formatEntity(e Entity, pdLineStart int, assigned map[int]int) (PDRecord, int, error) {
	f, ok := e.(formattable)
	if !ok {
		pd := PDRecord{TypeCode: e.TypeCode()}
		return pd, pdLineCount(pd), nil
	}
	return f.Format(pdLineStart, assigned)
}

func pdLineCount(pd PDRecord) int {
	// One IGES PD card holds at most 64 characters of parameter text after
	// the leading sequence fields; conservatively budget one extra field
	// per ten parameters; concrete entities with large payloads (B-spline
	// surfaces) may override via a line-count-aware Format, but the
	// default here is a safe, if pessimistic, one-or-more-lines estimate.
	if len(pd.Params) == 0 {
		return 1
	}
	return (len(pd.Params) + 9) / 10
}

// topologicalOrder returns every entity handle such that every child
// precedes any entity referencing it. Ties are broken by handle for
// deterministic output.
func (m *Model) topologicalOrder() ([]int, error) {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[int]int, len(m.entities))
	var order []int

	handles := make([]int, 0, len(m.entities))
	for h := range m.entities {
		handles = append(handles, h)
	}
	sort.Ints(handles)

	var visit func(h int) error
	visit = func(h int) error {
		switch color[h] {
		case black:
			return nil
		case gray:
			return fmt.Errorf("%w: handle %d", ErrCyclicDependency, h)
		}
		color[h] = gray

		e := m.entities[h]
		children := append([]int{}, e.Children()...)
		sort.Ints(children)
		for _, c := range children {
			if m.entities[c] == nil {
				continue
			}
			if err := visit(c); err != nil {
				return err
			}
		}

		color[h] = black
		order = append(order, h)
		return nil
	}

	for _, h := range handles {
		if err := visit(h); err != nil {
			return nil, err
		}
	}
	return order, nil
}
