package iges

import "fmt"

// ValidationError collects every invariant violation found by Validate,
// rather than stopping at the first.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("iges: model validation failed with %d violation(s)", len(e.Violations))
}

// Validate checks the two graph-level invariants a Model must uphold at
// all times: every edge is mirrored on both sides (property 1), and the
// graph contains no cycle reachable from the child relation (a superset
// check of the transform-chain-specific WouldCycle guard, covering
// structural edges too).
func (m *Model) Validate() error {
	var violations []string

	for handle, e := range m.entities {
		for _, child := range e.Children() {
			childEntity := m.entities[child]
			if childEntity == nil {
				violations = append(violations, fmt.Sprintf("entity %d references missing child %d", handle, child))
				continue
			}
			if !containsInt(childEntity.Parents(), handle) {
				violations = append(violations, fmt.Sprintf("entity %d lists child %d, but %d does not list %d as parent", handle, child, child, handle))
			}
		}
		for _, parent := range e.Parents() {
			parentEntity := m.entities[parent]
			if parentEntity == nil {
				violations = append(violations, fmt.Sprintf("entity %d lists missing parent %d", handle, parent))
				continue
			}
			if !containsInt(parentEntity.Children(), handle) {
				violations = append(violations, fmt.Sprintf("entity %d lists parent %d, but %d does not list %d as child", handle, parent, parent, handle))
			}
		}
	}

	if _, err := m.topologicalOrder(); err != nil {
		violations = append(violations, err.Error())
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
