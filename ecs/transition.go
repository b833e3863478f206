package ecs

// change is one structural request against a single entity.
type change struct {
	addComponents    ComponentSet
	removeComponents ComponentSet
	addTags          TagSet
	removeTags       TagSet
}

// changeResult records what a change actually did, so that notifications
// can be fired after new values have been written.
type changeResult struct {
	entity      EntityId
	loc         entityLocation
	added       ComponentSet
	removed     ComponentSet
	tagsAdded   TagSet
	tagsRemoved TagSet
}

// applyChange computes the entity's new signature and migrates it if the
// signature differs. Newly present components are zero valued; the caller
// writes supplied values through the returned location.
func (s *Storage) applyChange(id EntityId, ch change) (changeResult, error) {
	loc, err := s.location(id)
	if err != nil {
		return changeResult{}, err
	}

	current := loc.archetype
	components := current.components.Difference(ch.removeComponents).Union(ch.addComponents)
	tags := current.tags.Difference(ch.removeTags).Union(ch.addTags)

	res := changeResult{
		entity:      id,
		added:       components.Difference(current.components),
		removed:     current.components.Difference(components),
		tagsAdded:   tags.Difference(current.tags),
		tagsRemoved: current.tags.Difference(tags),
	}

	// Prior values have to be captured before the row is released.
	s.removedScratch = s.removedScratch[:0]
	if !res.removed.IsEmpty() && !s.events.removed.empty() {
		res.removed.mask.each(func(bit uint8) bool {
			idx := current.storageIndex(ComponentType(bit))
			s.removedScratch = append(s.removedScratch, current.storages[idx].Clone(loc.row))
			return true
		})
	}

	if components != current.components || tags != current.tags {
		loc = s.move(id, loc, s.GetArchetype(components, tags))
	}
	res.loc = loc
	return res, nil
}

// notify fires the notifications for a completed change: added components,
// then updated components (both in addOrder), then removed components in
// removeOrder (canonical order when nil), then one aggregated tags event.
func (s *Storage) notify(res *changeResult, addOrder, removeOrder []ComponentType) {
	if len(addOrder) > 0 && !s.events.added.empty() {
		// A type repeated in addOrder reports once.
		a, row := res.loc.archetype, res.loc.row
		var fired ComponentSet
		for _, ct := range addOrder {
			if res.added.Has(ct) && !fired.Has(ct) {
				fired = fired.Add(ct)
				s.events.added.fire(ComponentChange{Entity: res.entity, Kind: ComponentAdded, Type: ct, Value: a.GetComponent(row, ct)})
			}
		}
		for _, ct := range addOrder {
			if !res.added.Has(ct) && !fired.Has(ct) {
				fired = fired.Add(ct)
				s.events.added.fire(ComponentChange{Entity: res.entity, Kind: ComponentUpdated, Type: ct, Value: a.GetComponent(row, ct)})
			}
		}
	}

	if !res.removed.IsEmpty() && len(s.removedScratch) > 0 {
		if removeOrder == nil {
			idx := 0
			res.removed.mask.each(func(bit uint8) bool {
				s.fireRemoved(res.entity, ComponentType(bit), s.removedScratch[idx])
				idx++
				return true
			})
		} else {
			var fired ComponentSet
			for _, ct := range removeOrder {
				if res.removed.Has(ct) && !fired.Has(ct) {
					fired = fired.Add(ct)
					s.fireRemoved(res.entity, ct, s.removedScratch[res.removed.mask.rank(uint8(ct))])
				}
			}
		}
		clear(s.removedScratch)
		s.removedScratch = s.removedScratch[:0]
	}

	if !res.tagsAdded.IsEmpty() || !res.tagsRemoved.IsEmpty() {
		s.events.tags.fire(TagsChange{
			Entity:  res.entity,
			Tags:    res.loc.archetype.tags,
			Added:   res.tagsAdded,
			Removed: res.tagsRemoved,
		})
	}
}

func (s *Storage) fireRemoved(id EntityId, ct ComponentType, value any) {
	s.events.removed.fire(ComponentChange{Entity: id, Kind: ComponentRemoved, Type: ct, Value: value})
}

// notifyUpdated fires an update for each type in order. Used by set calls,
// which never change the signature.
func (s *Storage) notifyUpdated(id EntityId, loc entityLocation, order []ComponentType) {
	if s.events.added.empty() {
		return
	}
	var fired ComponentSet
	for _, ct := range order {
		if fired.Has(ct) {
			continue
		}
		fired = fired.Add(ct)
		s.events.added.fire(ComponentChange{Entity: id, Kind: ComponentUpdated, Type: ct, Value: loc.archetype.GetComponent(loc.row, ct)})
	}
}

// requireComponents returns the entity's location if it carries every
// component in required.
func (s *Storage) requireComponents(id EntityId, required ComponentSet) (entityLocation, error) {
	loc, err := s.location(id)
	if err != nil {
		return entityLocation{}, err
	}
	if missing := required.Difference(loc.archetype.components); !missing.IsEmpty() {
		return entityLocation{}, &MissingComponentError{Entity: id, Missing: missing}
	}
	return loc, nil
}
