package ecs

import (
	"strings"

	"github.com/rotisserie/eris"
)

// batchValue is a staged component value waiting to be written.
type batchValue interface {
	write(loc entityLocation, ct ComponentType)
}

type typedBatchValue[T any] struct {
	value T
}

func (v *typedBatchValue[T]) write(loc entityLocation, ct ComponentType) {
	writeComponent(loc, ct, v.value)
}

// EntitySource provides the entities a Batch is applied to in bulk. Every
// Query and typed query implements it.
type EntitySource interface {
	AppendEntities(dst []EntityId) []EntityId
}

// Batch is a reusable list of structural changes. Each component or tag type
// is staged at most once; staging the same type again replaces the earlier
// command, so the last write in batch order wins.
//
// A batch applies all of its changes to an entity in one transition and fires
// notifications in the order added, updated, removed, tags.
type Batch struct {
	storage *Storage
	entity  EntityId
	bound   bool

	addComponents    ComponentSet
	removeComponents ComponentSet
	addTags          TagSet
	removeTags       TagSet
	addOrder         []ComponentType
	removeOrder      []ComponentType

	values  [MaxComponentTypes]batchValue
	scratch []EntityId
}

// NewBatch creates an empty batch that can be applied to any entity of s.
func (s *Storage) NewBatch() *Batch {
	return &Batch{storage: s}
}

// EntityBatch creates an empty batch bound to id, which can be applied with Apply.
func (s *Storage) EntityBatch(id EntityId) *Batch {
	return &Batch{storage: s, entity: id, bound: true}
}

// BatchAdd stages an add of value as component T.
func BatchAdd[T any](b *Batch, value T) *Batch {
	ct := ComponentTypeOf[T]()
	if slot, ok := b.values[ct].(*typedBatchValue[T]); ok {
		slot.value = value
	} else {
		b.values[ct] = &typedBatchValue[T]{value: value}
	}
	b.stageAdd(ct)
	return b
}

// BatchRemove stages the removal of component T.
func BatchRemove[T any](b *Batch) *Batch {
	b.stageRemove(ComponentTypeOf[T]())
	return b
}

// BatchAddTag stages an add of tag T.
func BatchAddTag[T any](b *Batch) *Batch {
	return b.AddTags(TagTypeOf[T]())
}

// BatchRemoveTag stages the removal of tag T.
func BatchRemoveTag[T any](b *Batch) *Batch {
	return b.RemoveTags(TagTypeOf[T]())
}

func (b *Batch) stageAdd(ct ComponentType) {
	if b.removeComponents.Has(ct) {
		b.removeComponents = b.removeComponents.Remove(ct)
		b.removeOrder = deleteType(b.removeOrder, ct)
	}
	if !b.addComponents.Has(ct) {
		b.addComponents = b.addComponents.Add(ct)
		b.addOrder = append(b.addOrder, ct)
	}
}

func (b *Batch) stageRemove(ct ComponentType) {
	if b.addComponents.Has(ct) {
		b.addComponents = b.addComponents.Remove(ct)
		b.addOrder = deleteType(b.addOrder, ct)
	}
	if !b.removeComponents.Has(ct) {
		b.removeComponents = b.removeComponents.Add(ct)
		b.removeOrder = append(b.removeOrder, ct)
	}
}

func deleteType(order []ComponentType, ct ComponentType) []ComponentType {
	for idx, other := range order {
		if other == ct {
			return append(order[:idx], order[idx+1:]...)
		}
	}
	return order
}

// AddTags stages tag additions.
func (b *Batch) AddTags(tags ...TagType) *Batch {
	set := TagSetOf(tags...)
	b.removeTags = b.removeTags.Difference(set)
	b.addTags = b.addTags.Union(set)
	return b
}

// RemoveTags stages tag removals.
func (b *Batch) RemoveTags(tags ...TagType) *Batch {
	set := TagSetOf(tags...)
	b.addTags = b.addTags.Difference(set)
	b.removeTags = b.removeTags.Union(set)
	return b
}

// RemoveComponents stages the removal of every component in set, in canonical order.
func (b *Batch) RemoveComponents(set ComponentSet) *Batch {
	for ct := range set.All() {
		b.stageRemove(ct)
	}
	return b
}

// CommandCount returns the number of distinct staged operations.
func (b *Batch) CommandCount() int {
	return b.addComponents.Len() + b.removeComponents.Len() + b.addTags.Len() + b.removeTags.Len()
}

// Apply applies the batch to the entity it was created for. It fails with
// ErrApplyMisuse on batches from NewBatch.
func (b *Batch) Apply() error {
	if !b.bound {
		return eris.Wrap(ErrApplyMisuse, "use ApplyTo on batches that are not bound to an entity")
	}
	return b.ApplyTo(b.entity)
}

// ApplyTo applies the batch to id. The batch is left intact.
func (b *Batch) ApplyTo(id EntityId) error {
	s := b.storage
	res, err := s.applyChange(id, change{
		addComponents:    b.addComponents,
		removeComponents: b.removeComponents,
		addTags:          b.addTags,
		removeTags:       b.removeTags,
	})
	if err != nil {
		return err
	}
	for _, ct := range b.addOrder {
		b.values[ct].write(res.loc, ct)
	}
	s.notify(&res, b.addOrder, b.removeOrder)
	return nil
}

// ApplyToEntities applies the batch to each id. Every id is checked before any
// change is made, so an unknown id leaves the storage untouched.
func (b *Batch) ApplyToEntities(ids []EntityId) error {
	for _, id := range ids {
		if !b.storage.IsAlive(id) {
			return eris.Wrapf(ErrEntityNotFound, "entity %d", id)
		}
	}
	for _, id := range ids {
		if err := b.ApplyTo(id); err != nil {
			return err
		}
	}
	return nil
}

// ApplyToQuery applies the batch to every entity the source currently
// matches. The entity list is captured before the first change.
func (b *Batch) ApplyToQuery(source EntitySource) error {
	b.scratch = source.AppendEntities(b.scratch[:0])
	defer clear(b.scratch)
	return b.ApplyToEntities(b.scratch)
}

// Clear removes every staged command. Value slots are kept for reuse.
func (b *Batch) Clear() {
	b.addComponents = ComponentSet{}
	b.removeComponents = ComponentSet{}
	b.addTags = TagSet{}
	b.removeTags = TagSet{}
	b.addOrder = b.addOrder[:0]
	b.removeOrder = b.removeOrder[:0]
}

// String renders the staged commands in canonical order, for example
// "add: [Name, Position, #Enemy]  remove: [Rotation, #Idle]".
func (b *Batch) String() string {
	if b.CommandCount() == 0 {
		return "empty"
	}
	var sb strings.Builder
	if !b.addComponents.IsEmpty() || !b.addTags.IsEmpty() {
		sb.WriteString("add: ")
		writeSignature(&sb, b.addComponents, b.addTags)
	}
	if !b.removeComponents.IsEmpty() || !b.removeTags.IsEmpty() {
		if sb.Len() > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString("remove: ")
		writeSignature(&sb, b.removeComponents, b.removeTags)
	}
	return sb.String()
}

// writeSignature renders "[A, B, #T]".
func writeSignature(sb *strings.Builder, components ComponentSet, tags TagSet) {
	sb.WriteByte('[')
	components.writeNames(sb)
	if !components.IsEmpty() && !tags.IsEmpty() {
		sb.WriteString(", ")
	}
	tags.writeNames(sb)
	sb.WriteByte(']')
}
