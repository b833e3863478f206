package ecs

import (
	"iter"
	"strings"
)

// archetypeKey is the signature of an archetype: its exact component and tag sets.
type archetypeKey struct {
	components ComponentSet
	tags       TagSet
}

// Archetype stores every entity that has exactly the same component and tag
// signature. Each component type gets one dense column, and rows are shared
// across columns: row r of every column belongs to Entities()[r].
type Archetype struct {
	id         uint32
	storage    *Storage
	components ComponentSet
	tags       TagSet
	types      []ComponentType
	storages   []iComponentStorage
	entities   []EntityId
}

// newArchetype creates an archetype for the given signature. Columns are laid
// out in canonical type order.
func newArchetype(id uint32, storage *Storage, components ComponentSet, tags TagSet, capacity int) *Archetype {
	a := &Archetype{
		id:         id,
		storage:    storage,
		components: components,
		tags:       tags,
		types:      components.Types(),
	}
	a.storages = make([]iComponentStorage, len(a.types))
	for idx, ct := range a.types {
		a.storages[idx] = ct.newStorage()
		a.storages[idx].Grow(capacity)
	}
	if capacity > 0 {
		a.entities = make([]EntityId, 0, capacity)
	}
	return a
}

// ID returns the archetype's index within its storage.
func (a *Archetype) ID() uint32 {
	return a.id
}

func (a *Archetype) Components() ComponentSet {
	return a.components
}

func (a *Archetype) Tags() TagSet {
	return a.tags
}

// Types returns the component types of this archetype in canonical order.
// The returned slice must not be modified.
func (a *Archetype) Types() []ComponentType {
	return a.types
}

// EntityCount returns the number of occupied rows.
func (a *Archetype) EntityCount() int {
	return len(a.entities)
}

// Entities returns the ids of the entities stored in this archetype, indexed by row.
// The slice is owned by the archetype and is invalidated by the next structural change.
func (a *Archetype) Entities() []EntityId {
	return a.entities
}

// HasComponent checks if this archetype has the given component type
func (a *Archetype) HasComponent(ct ComponentType) bool {
	return a.components.Has(ct)
}

func (a *Archetype) HasTag(tt TagType) bool {
	return a.tags.Has(tt)
}

// storageIndex returns the column holding ct, or -1.
func (a *Archetype) storageIndex(ct ComponentType) int {
	if !a.components.Has(ct) {
		return -1
	}
	return a.components.mask.rank(uint8(ct))
}

// GetComponent returns a pointer to the component of the given type stored at row,
// or nil if the archetype has no such column.
func (a *Archetype) GetComponent(row int, ct ComponentType) any {
	idx := a.storageIndex(ct)
	if idx < 0 {
		return nil
	}
	return a.storages[idx].Get(row)
}

// Iter returns an iterator over all EntityIds in this archetype
func (a *Archetype) Iter() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for _, id := range a.entities {
			if !yield(id) {
				return
			}
		}
	}
}

// String renders the signature, e.g. "[Position, Velocity, #Enemy]".
func (a *Archetype) String() string {
	var sb strings.Builder
	writeSignature(&sb, a.components, a.tags)
	return sb.String()
}

// spawnZero appends a row for id with zero values in every column.
func (a *Archetype) spawnZero(id EntityId) int {
	for _, storage := range a.storages {
		storage.AppendZero()
	}
	a.entities = append(a.entities, id)
	return len(a.entities) - 1
}

// spawnFrom appends a row for id, copying every column shared with src from srcRow
// and zero-initialising the rest.
func (a *Archetype) spawnFrom(id EntityId, src *Archetype, srcRow int) int {
	for idx, ct := range a.types {
		if srcIdx := src.storageIndex(ct); srcIdx >= 0 {
			a.storages[idx].AppendFrom(src.storages[srcIdx], srcRow)
		} else {
			a.storages[idx].AppendZero()
		}
	}
	a.entities = append(a.entities, id)
	return len(a.entities) - 1
}

// removeRow deletes row by swapping the last row into its place. It returns the
// entity that now occupies row, if one was moved.
func (a *Archetype) removeRow(row int) (EntityId, bool) {
	last := len(a.entities) - 1
	for _, storage := range a.storages {
		storage.Delete(row)
	}
	moved := a.entities[last]
	a.entities[row] = moved
	a.entities = a.entities[:last]
	if row == last {
		return 0, false
	}
	return moved, true
}
