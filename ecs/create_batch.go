package ecs

import "github.com/rotisserie/eris"

// CreateBatch is a template for creating entities. Staged component values can
// be changed between CreateEntity calls through CreateBatchGet; the template
// itself is never consumed.
type CreateBatch struct {
	storage    *Storage
	components ComponentSet
	tags       TagSet
	order      []ComponentType
	values     [MaxComponentTypes]batchValue
	archetype  *Archetype
}

func (s *Storage) NewCreateBatch() *CreateBatch {
	return &CreateBatch{storage: s}
}

// CreateBatchAdd stages component T with an initial value.
func CreateBatchAdd[T any](b *CreateBatch, value T) *CreateBatch {
	ct := ComponentTypeOf[T]()
	if slot, ok := b.values[ct].(*typedBatchValue[T]); ok {
		slot.value = value
	} else {
		b.values[ct] = &typedBatchValue[T]{value: value}
	}
	if !b.components.Has(ct) {
		b.components = b.components.Add(ct)
		b.order = append(b.order, ct)
		b.archetype = nil
	}
	return b
}

// CreateBatchGet returns a pointer to the staged T value. It fails with
// ErrMissingAdd if T was not staged with CreateBatchAdd.
func CreateBatchGet[T any](b *CreateBatch) (*T, error) {
	ct := ComponentTypeOf[T]()
	if !b.components.Has(ct) {
		return nil, eris.Wrapf(ErrMissingAdd, "component %s", ct)
	}
	return &b.values[ct].(*typedBatchValue[T]).value, nil
}

// CreateBatchAddTag stages tag T.
func CreateBatchAddTag[T any](b *CreateBatch) *CreateBatch {
	return b.AddTags(TagTypeOf[T]())
}

func (b *CreateBatch) AddTags(tags ...TagType) *CreateBatch {
	set := b.tags.Union(TagSetOf(tags...))
	if set != b.tags {
		b.tags = set
		b.archetype = nil
	}
	return b
}

// Archetype returns the archetype entities from this template are created in.
func (b *CreateBatch) Archetype() *Archetype {
	if b.archetype == nil {
		b.archetype = b.storage.GetArchetype(b.components, b.tags)
	}
	return b.archetype
}

// CreateEntity creates an entity with an automatic id from the staged values.
func (b *CreateBatch) CreateEntity() EntityId {
	id := b.storage.nextEntityId()
	b.create(id)
	return id
}

// CreateEntityWithId creates an entity with an explicit id. It fails like
// Storage.CreateEntity for invalid or live ids.
func (b *CreateBatch) CreateEntityWithId(id EntityId) error {
	if err := b.storage.checkExplicitId(id); err != nil {
		return err
	}
	b.create(id)
	return nil
}

func (b *CreateBatch) create(id EntityId) {
	loc := b.storage.place(id, b.Archetype())
	for _, ct := range b.order {
		b.values[ct].write(loc, ct)
	}
	b.storage.events.created.fire(id)
}

// Clear removes every staged type. Value slots are kept for reuse.
func (b *CreateBatch) Clear() {
	b.components = ComponentSet{}
	b.tags = TagSet{}
	b.order = b.order[:0]
	b.archetype = nil
}
