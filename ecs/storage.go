package ecs

import (
	"reflect"

	"github.com/kamstrup/intmap"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

const defaultEntityCapacity = 256

// Storage is the main ECS storage. It owns the entity id space, every
// archetype created for it and the index from entity id to row.
//
// Structural changes are not safe for concurrent use. Queries and chunk
// iteration may run concurrently as long as no structural change does.
type Storage struct {
	archetypes     []*Archetype
	archetypeIndex map[archetypeKey]*Archetype
	emptyArchetype *Archetype
	entities       *intmap.Map[EntityId, entityLocation]

	nextId   EntityId
	freeIds  []EntityId
	idPolicy IdPolicy
	capacity int

	events     notifier
	singletons map[reflect.Type]any
	logger     zerolog.Logger

	// removedScratch holds prior values of removed components between a
	// transition and its notifications.
	removedScratch []any
}

// NewStorage creates an empty storage. The archetype with no components and
// no tags always exists.
func NewStorage(opts ...Option) *Storage {
	s := &Storage{
		archetypeIndex: make(map[archetypeKey]*Archetype),
		singletons:     make(map[reflect.Type]any),
		logger:         zerolog.Nop(),
		capacity:       defaultEntityCapacity,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.entities = intmap.New[EntityId, entityLocation](s.capacity)
	s.emptyArchetype = s.GetArchetype(ComponentSet{}, TagSet{})
	return s
}

// NewEntity creates an entity with an automatically assigned id in the empty archetype.
func (s *Storage) NewEntity() EntityId {
	id := s.nextEntityId()
	s.place(id, s.emptyArchetype)
	s.events.created.fire(id)
	return id
}

// CreateEntity creates an entity. By default the id is assigned automatically
// and the entity starts without components or tags.
func (s *Storage) CreateEntity(opts ...CreateOption) (EntityId, error) {
	var cfg createConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	target := s.emptyArchetype
	if cfg.archetype != nil {
		if cfg.archetype.storage != s {
			return 0, eris.Wrapf(ErrForeignArchetype, "archetype %s", cfg.archetype)
		}
		target = cfg.archetype
	}

	id := cfg.id
	if cfg.explicit {
		if err := s.checkExplicitId(id); err != nil {
			return 0, err
		}
	} else {
		id = s.nextEntityId()
	}

	s.place(id, target)
	s.events.created.fire(id)
	return id, nil
}

func (s *Storage) checkExplicitId(id EntityId) error {
	if !id.IsValid() {
		return eris.Wrapf(ErrInvalidId, "entity id %d", id)
	}
	if s.entities.Has(id) {
		return eris.Wrapf(ErrIdInUse, "entity id %d", id)
	}
	return nil
}

// nextEntityId picks the next automatic id, skipping ids that were taken
// explicitly.
func (s *Storage) nextEntityId() EntityId {
	if s.idPolicy == IdPolicyRecycle {
		for len(s.freeIds) > 0 {
			last := len(s.freeIds) - 1
			id := s.freeIds[last]
			s.freeIds = s.freeIds[:last]
			if !s.entities.Has(id) {
				return id
			}
		}
	}
	for {
		s.nextId++
		if !s.entities.Has(s.nextId) {
			return s.nextId
		}
	}
}

// place adds a zero-valued row for id to a and indexes it.
func (s *Storage) place(id EntityId, a *Archetype) entityLocation {
	loc := entityLocation{archetype: a, row: a.spawnZero(id)}
	s.entities.Put(id, loc)
	return loc
}

// Delete removes the entity and all of its data. It returns false if the
// entity was not alive.
func (s *Storage) Delete(id EntityId) bool {
	loc, ok := s.entities.Get(id)
	if !ok {
		return false
	}
	s.removeRow(loc)
	s.entities.Del(id)
	if s.idPolicy == IdPolicyRecycle {
		s.freeIds = append(s.freeIds, id)
	}
	s.events.deleted.fire(id)
	return true
}

// IsAlive reports whether id names a live entity.
func (s *Storage) IsAlive(id EntityId) bool {
	return s.entities.Has(id)
}

// EntityCount returns the number of live entities.
func (s *Storage) EntityCount() int {
	return s.entities.Len()
}

// GetArchetype returns the archetype for the given signature, creating it on
// first use.
func (s *Storage) GetArchetype(components ComponentSet, tags TagSet) *Archetype {
	key := archetypeKey{components: components, tags: tags}
	if a, ok := s.archetypeIndex[key]; ok {
		return a
	}

	a := newArchetype(uint32(len(s.archetypes)), s, components, tags, 0)
	s.archetypes = append(s.archetypes, a)
	s.archetypeIndex[key] = a

	s.logger.Debug().
		Uint32("archetype_id", a.id).
		Stringer("components", components).
		Stringer("tags", tags).
		Msg("created archetype")
	return a
}

// FindArchetype returns the archetype for the given signature without creating it.
func (s *Storage) FindArchetype(components ComponentSet, tags TagSet) (*Archetype, bool) {
	a, ok := s.archetypeIndex[archetypeKey{components: components, tags: tags}]
	return a, ok
}

// Archetypes returns every archetype in creation order. Archetypes are never
// removed, so the index of an archetype in this slice equals its ID. The
// slice must not be modified.
func (s *Storage) Archetypes() []*Archetype {
	return s.archetypes
}

// EntityArchetype returns the archetype the entity currently lives in.
func (s *Storage) EntityArchetype(id EntityId) (*Archetype, bool) {
	loc, ok := s.entities.Get(id)
	if !ok {
		return nil, false
	}
	return loc.archetype, true
}

// location returns where the entity is stored, or ErrEntityNotFound.
func (s *Storage) location(id EntityId) (entityLocation, error) {
	loc, ok := s.entities.Get(id)
	if !ok {
		return entityLocation{}, eris.Wrapf(ErrEntityNotFound, "entity %d", id)
	}
	return loc, nil
}

// move migrates the entity at loc into target, keeping every shared column's value.
func (s *Storage) move(id EntityId, loc entityLocation, target *Archetype) entityLocation {
	moved := entityLocation{archetype: target, row: target.spawnFrom(id, loc.archetype, loc.row)}
	s.removeRow(loc)
	s.entities.Put(id, moved)
	return moved
}

// removeRow frees loc and reindexes the entity that was swapped into it.
func (s *Storage) removeRow(loc entityLocation) {
	if swapped, ok := loc.archetype.removeRow(loc.row); ok {
		s.entities.Put(swapped, loc)
	}
}

// Spawn creates an entity from component and tag values. Values may be given
// as T or *T; every type must already be registered. When a type appears more
// than once the last value wins. Spawn fires only the entity created
// notification. It panics before creating anything if a value is nil or of an
// unregistered type.
func (s *Storage) Spawn(values ...any) EntityId {
	var components ComponentSet
	var tags TagSet
	for _, value := range values {
		if isNilValue(value) {
			panic("cannot spawn entity with nil value")
		}
		t := valueType(value)
		if ct, ok := LookupComponentType(t); ok {
			components = components.Add(ct)
		} else if tt, ok := LookupTagType(t); ok {
			tags = tags.Add(tt)
		} else {
			panic("cannot spawn entity with unregistered type " + t.String())
		}
	}

	a := s.GetArchetype(components, tags)
	id := s.nextEntityId()
	loc := s.place(id, a)
	for _, value := range values {
		if ct, ok := LookupComponentType(valueType(value)); ok {
			a.storages[a.storageIndex(ct)].Set(loc.row, value)
		}
	}
	s.events.created.fire(id)
	return id
}

// GetComponentValue returns a pointer (*T) to the entity's component of type
// ct, or nil if the entity is not alive or lacks the component.
func (s *Storage) GetComponentValue(id EntityId, ct ComponentType) any {
	loc, ok := s.entities.Get(id)
	if !ok {
		return nil
	}
	return loc.archetype.GetComponent(loc.row, ct)
}

// AddComponentValue is the untyped form of AddComponent. The value may be a
// T or *T of a registered component type.
func (s *Storage) AddComponentValue(id EntityId, value any) error {
	ct, err := componentTypeOfValue(value)
	if err != nil {
		return err
	}
	res, err := s.applyChange(id, change{addComponents: ComponentSetOf(ct)})
	if err != nil {
		return err
	}
	a := res.loc.archetype
	a.storages[a.storageIndex(ct)].Set(res.loc.row, value)
	order := [1]ComponentType{ct}
	s.notify(&res, order[:], nil)
	return nil
}

// SetComponentValue is the untyped form of SetComponent.
func (s *Storage) SetComponentValue(id EntityId, value any) error {
	ct, err := componentTypeOfValue(value)
	if err != nil {
		return err
	}
	loc, err := s.requireComponents(id, ComponentSetOf(ct))
	if err != nil {
		return err
	}
	loc.archetype.storages[loc.archetype.storageIndex(ct)].Set(loc.row, value)
	order := [1]ComponentType{ct}
	s.notifyUpdated(id, loc, order[:])
	return nil
}

// RemoveComponents removes every component in components and every tag in
// tags from the entity in one transition. Types the entity does not carry
// are ignored.
func (s *Storage) RemoveComponents(id EntityId, components ComponentSet, tags TagSet) error {
	res, err := s.applyChange(id, change{removeComponents: components, removeTags: tags})
	if err != nil {
		return err
	}
	s.notify(&res, nil, nil)
	return nil
}

// AddTags adds the given tags to the entity.
func (s *Storage) AddTags(id EntityId, tags ...TagType) error {
	res, err := s.applyChange(id, change{addTags: TagSetOf(tags...)})
	if err != nil {
		return err
	}
	s.notify(&res, nil, nil)
	return nil
}

// RemoveTags removes the given tags from the entity.
func (s *Storage) RemoveTags(id EntityId, tags ...TagType) error {
	res, err := s.applyChange(id, change{removeTags: TagSetOf(tags...)})
	if err != nil {
		return err
	}
	s.notify(&res, nil, nil)
	return nil
}

func valueType(value any) reflect.Type {
	t := reflect.TypeOf(value)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// isNilValue reports whether value is nil or a nil pointer.
func isNilValue(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func componentTypeOfValue(value any) (ComponentType, error) {
	if isNilValue(value) {
		return 0, eris.Wrap(ErrUnknownComponent, "nil component value")
	}
	t := valueType(value)
	ct, ok := LookupComponentType(t)
	if !ok {
		return 0, eris.Wrapf(ErrUnknownComponent, "component type %s is not registered", t)
	}
	return ct, nil
}

type ComponentReader interface {
	GetComponentValue(EntityId, ComponentType) any
}

// ReadComponent returns the entity's T component, or nil if it has none.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	value, _ := reader.GetComponentValue(entityId, ComponentTypeOf[T]()).(*T)
	return value
}
