package ecs

import (
	"errors"
	"sync"

	"github.com/rotisserie/eris"
)

// Commands provides a buffer for deferred ECS operations that are executed at the end of a frame.
// This prevents structural changes to the ECS storage during system execution. Recording is
// safe from multiple goroutines, so job functions can use it too.
type Commands struct {
	mu sync.Mutex
	commandBuffer

	// flushing holds the buffer being applied, so commands recorded by
	// deferred functions land in the next flush.
	flushing commandBuffer
}

type commandBuffer struct {
	spawns  []spawnCommand
	deletes []EntityId
	adds    []addComponentCommand
	removes []removeCommand
	tags    []tagCommand
	defers  []deferCommand
}

func (b *commandBuffer) reset() {
	clear(b.spawns)
	clear(b.adds)
	clear(b.defers)
	b.spawns = b.spawns[:0]
	b.deletes = b.deletes[:0]
	b.adds = b.adds[:0]
	b.removes = b.removes[:0]
	b.tags = b.tags[:0]
	b.defers = b.defers[:0]
}

// NewCommands creates an empty command buffer.
func NewCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

type spawnCommand struct {
	values []any
}

type addComponentCommand struct {
	entity    EntityId
	component any
}

type removeCommand struct {
	entity     EntityId
	components ComponentSet
	tags       TagSet
}

type tagCommand struct {
	entity EntityId
	tags   TagSet
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Spawn queues an entity spawn operation with the given component and tag values.
func (c *Commands) Spawn(values ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.spawns = append(c.spawns, spawnCommand{values: values})
}

// Delete queues an entity deletion operation.
func (c *Commands) Delete(entity EntityId) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deletes = append(c.deletes, entity)
}

// AddComponent queues a component addition operation. Additions run after
// the removal phase of the same Flush.
func (c *Commands) AddComponent(entity EntityId, component any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.adds = append(c.adds, addComponentCommand{
		entity:    entity,
		component: component,
	})
}

// RemoveComponent queues a component removal operation. Removals are applied
// before additions regardless of recording order, so a component added and
// removed in the same frame is present after Flush.
func (c *Commands) RemoveComponent(entity EntityId, ct ComponentType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removes = append(c.removes, removeCommand{
		entity:     entity,
		components: ComponentSetOf(ct),
	})
}

// AddTag queues a tag addition. Tag additions are applied after every
// removal recorded in the same frame.
func (c *Commands) AddTag(entity EntityId, tt TagType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tags = append(c.tags, tagCommand{entity: entity, tags: TagSetOf(tt)})
}

// RemoveTag queues a tag removal. It runs in the removal phase, before any
// AddTag recorded in the same frame.
func (c *Commands) RemoveTag(entity EntityId, tt TagType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removes = append(c.removes, removeCommand{entity: entity, tags: TagSetOf(tt)})
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.spawns) + len(c.deletes) + len(c.adds) + len(c.removes) + len(c.tags) + len(c.defers)
}

// Flush applies all commands to the provided storage and resets the buffer.
// Deletes run first, then removals, additions, spawns and deferred functions.
// Operations on entities deleted by the same flush are skipped. Every
// failing operation is reported in the joined error; the rest still run.
func (c *Commands) Flush(storage *Storage) error {
	c.mu.Lock()
	c.commandBuffer, c.flushing = c.flushing, c.commandBuffer
	c.mu.Unlock()

	b := &c.flushing
	defer b.reset()

	var errs []error
	deletedEntities := make(map[EntityId]bool, len(b.deletes))

	for _, cmd := range b.deletes {
		storage.Delete(cmd)
		deletedEntities[cmd] = true
	}

	for _, cmd := range b.removes {
		if deletedEntities[cmd.entity] {
			continue
		}
		if err := storage.RemoveComponents(cmd.entity, cmd.components, cmd.tags); err != nil {
			errs = append(errs, err)
		}
	}

	for _, cmd := range b.adds {
		if deletedEntities[cmd.entity] {
			continue
		}
		if err := storage.AddComponentValue(cmd.entity, cmd.component); err != nil {
			errs = append(errs, err)
		}
	}

	for _, cmd := range b.tags {
		if deletedEntities[cmd.entity] {
			continue
		}
		if err := storage.AddTags(cmd.entity, cmd.tags.Types()...); err != nil {
			errs = append(errs, err)
		}
	}

	for _, cmd := range b.spawns {
		storage.Spawn(cmd.values...)
	}

	for _, df := range b.defers {
		df.fn()
	}

	if len(errs) > 0 {
		return eris.Wrap(errors.Join(errs...), "failed to flush commands")
	}
	return nil
}
