package ecs

import "github.com/rotisserie/eris"

// UniqueName is a built-in component naming an entity that is expected to be
// the only one with that name.
type UniqueName struct {
	Value string
}

func init() {
	RegisterComponent[UniqueName]()
}

// FindEntities returns every entity whose archetype passes filter. A nil
// filter matches all entities.
func (s *Storage) FindEntities(filter *QueryFilter) []EntityId {
	var ids []EntityId
	for _, a := range s.archetypes {
		if a.EntityCount() > 0 && filter.Matches(a.components, a.tags) {
			ids = append(ids, a.entities...)
		}
	}
	return ids
}

// FindEntity returns the single entity passing filter. It fails with
// ErrNoMatch or ErrAmbiguousMatch for zero or several matches.
func (s *Storage) FindEntity(filter *QueryFilter) (EntityId, error) {
	var found EntityId
	count := 0
	for _, a := range s.archetypes {
		n := a.EntityCount()
		if n == 0 || !filter.Matches(a.components, a.tags) {
			continue
		}
		count += n
		if count > 1 {
			return 0, eris.Wrapf(ErrAmbiguousMatch, "filter %s", filter)
		}
		found = a.entities[0]
	}
	if count == 0 {
		return 0, eris.Wrapf(ErrNoMatch, "filter %s", filter)
	}
	return found, nil
}

// FindEntityWithUniqueName returns the entity whose UniqueName is name.
func (s *Storage) FindEntityWithUniqueName(name string) (EntityId, error) {
	ct := ComponentTypeOf[UniqueName]()
	var found EntityId
	count := 0
	for _, a := range s.archetypes {
		if !a.components.Has(ct) || a.EntityCount() == 0 {
			continue
		}
		for row, value := range columnSlice[UniqueName](a, ct, 0, a.EntityCount()) {
			if value.Value != name {
				continue
			}
			count++
			if count > 1 {
				return 0, eris.Wrapf(ErrAmbiguousMatch, "unique name %q", name)
			}
			found = a.entities[row]
		}
	}
	if count == 0 {
		return 0, eris.Wrapf(ErrNoMatch, "unique name %q", name)
	}
	return found, nil
}
