package ecs

import "github.com/milk9111/walker/ecs/component"

// Query returns live entities carrying every listed kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}

	// iterate smallest set
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}

	out := make([]Entity, 0, smallest.Len())
	for _, id := range smallest.ids() {
		if !hasAll(sets, id) {
			continue
		}
		if e, ok := w.entities.entity(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns any live entity carrying kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	s := w.store(kind.ID(), false)
	for _, id := range s.ids() {
		if e, ok := w.entities.entity(id); ok {
			return e, true
		}
	}
	return 0, false
}

// Count returns the number of live entities carrying kind.
func (w *World) Count(kind component.Kind) int {
	return w.store(kind.ID(), false).Len()
}

func hasAll(sets []*SparseSet, id entityID) bool {
	for _, s := range sets {
		if !s.Has(id) {
			return false
		}
	}
	return true
}
