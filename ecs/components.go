package ecs

// AddComponent adds value as the entity's T component, along with any tags.
// If the entity already has a T the value is overwritten and an update is
// reported instead of an add.
func AddComponent[T any](s *Storage, id EntityId, value T, tags ...TagType) error {
	ct := ComponentTypeOf[T]()
	res, err := s.applyChange(id, change{addComponents: ComponentSetOf(ct), addTags: TagSetOf(tags...)})
	if err != nil {
		return err
	}
	writeComponent(res.loc, ct, value)
	order := [1]ComponentType{ct}
	s.notify(&res, order[:], nil)
	return nil
}

// SetComponent overwrites the entity's existing T component. It never changes
// the entity's shape and fails with a *MissingComponentError when T is absent.
func SetComponent[T any](s *Storage, id EntityId, value T) error {
	ct := ComponentTypeOf[T]()
	loc, err := s.requireComponents(id, ComponentSetOf(ct))
	if err != nil {
		return err
	}
	writeComponent(loc, ct, value)
	order := [1]ComponentType{ct}
	s.notifyUpdated(id, loc, order[:])
	return nil
}

// RemoveComponent drops the entity's T component and the given tags. Removing
// a component the entity does not have is not an error.
func RemoveComponent[T any](s *Storage, id EntityId, tags ...TagType) error {
	ct := ComponentTypeOf[T]()
	res, err := s.applyChange(id, change{removeComponents: ComponentSetOf(ct), removeTags: TagSetOf(tags...)})
	if err != nil {
		return err
	}
	order := [1]ComponentType{ct}
	s.notify(&res, nil, order[:])
	return nil
}

// GetComponent returns a pointer to the entity's T component. The pointer is
// valid until the entity's next structural change.
func GetComponent[T any](s *Storage, id EntityId) (*T, error) {
	ct := ComponentTypeOf[T]()
	loc, err := s.requireComponents(id, ComponentSetOf(ct))
	if err != nil {
		return nil, err
	}
	return componentPointer[T](loc, ct), nil
}

func HasComponent[T any](s *Storage, id EntityId) bool {
	loc, ok := s.entities.Get(id)
	return ok && loc.archetype.components.Has(ComponentTypeOf[T]())
}

// AddTag adds tag T to the entity.
func AddTag[T any](s *Storage, id EntityId) error {
	return s.AddTags(id, TagTypeOf[T]())
}

// RemoveTag removes tag T from the entity.
func RemoveTag[T any](s *Storage, id EntityId) error {
	return s.RemoveTags(id, TagTypeOf[T]())
}

func HasTag[T any](s *Storage, id EntityId) bool {
	loc, ok := s.entities.Get(id)
	return ok && loc.archetype.tags.Has(TagTypeOf[T]())
}
