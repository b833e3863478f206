package ecs_test

import (
	"sync"
	"testing"

	"github.com/plus3/archstore/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsFlush(t *testing.T) {
	storage := ecs.NewStorage()
	keep := storage.Spawn(Position{}, Velocity{}, Enemy{})
	doomed := storage.Spawn(Position{})

	commands := ecs.NewCommands()
	commands.Delete(doomed)
	commands.AddComponent(doomed, Name{Value: "ignored"})
	commands.AddComponent(keep, &Health{Current: 3})
	commands.RemoveComponent(keep, ecs.ComponentTypeOf[Velocity]())
	commands.RemoveTag(keep, ecs.TagTypeOf[Enemy]())
	commands.AddTag(keep, ecs.TagTypeOf[Frozen]())
	commands.Spawn(Score(9), Player{})

	deferred := false
	commands.Defer(func() { deferred = true })
	assert.Equal(t, 8, commands.Len())

	require.NoError(t, commands.Flush(storage))

	assert.Zero(t, commands.Len())
	assert.True(t, deferred)
	assert.False(t, storage.IsAlive(doomed))

	archetype, _ := storage.EntityArchetype(keep)
	assert.Equal(t, "[Health, Position, #Frozen]", archetype.String())

	players := storage.FindEntities(ecs.NewQueryFilter(ecs.AllTags(ecs.TagSetOf1[Player]())))
	require.Len(t, players, 1)
	assert.Equal(t, Score(9), *ecs.ReadComponent[Score](storage, players[0]))
}

func TestCommandsFlushReportsErrors(t *testing.T) {
	storage := ecs.NewStorage()
	alive := storage.NewEntity()

	commands := ecs.NewCommands()
	commands.AddComponent(404, Position{})
	commands.AddTag(405, ecs.TagTypeOf[Enemy]())
	commands.AddComponent(alive, Position{X: 1})

	err := commands.Flush(storage)
	require.Error(t, err)
	assert.ErrorIs(t, err, ecs.ErrEntityNotFound)
	assert.True(t, ecs.HasComponent[Position](storage, alive), "valid commands still apply")
}

func TestCommandsRemovalsRunBeforeAdditions(t *testing.T) {
	storage := ecs.NewStorage()
	id := storage.NewEntity()

	commands := ecs.NewCommands()
	commands.AddComponent(id, Position{X: 1})
	commands.RemoveComponent(id, ecs.ComponentTypeOf[Position]())
	commands.AddTag(id, ecs.TagTypeOf[Enemy]())
	commands.RemoveTag(id, ecs.TagTypeOf[Enemy]())
	require.NoError(t, commands.Flush(storage))

	archetype, _ := storage.EntityArchetype(id)
	assert.Equal(t, "[Position, #Enemy]", archetype.String())

	commands.RemoveComponent(id, ecs.ComponentTypeOf[Position]())
	commands.RemoveTag(id, ecs.TagTypeOf[Enemy]())
	commands.AddComponent(id, Velocity{})
	require.NoError(t, commands.Flush(storage))

	archetype, _ = storage.EntityArchetype(id)
	assert.Equal(t, "[Velocity]", archetype.String())
}

func TestCommandsRecordedDuringFlushWaitForNextFlush(t *testing.T) {
	storage := ecs.NewStorage()
	commands := ecs.NewCommands()

	commands.Defer(func() {
		commands.Spawn(C1{})
	})
	require.NoError(t, commands.Flush(storage))
	assert.Zero(t, storage.EntityCount())
	assert.Equal(t, 1, commands.Len())

	require.NoError(t, commands.Flush(storage))
	assert.Equal(t, 1, storage.EntityCount())
}

func TestCommandsConcurrentRecording(t *testing.T) {
	storage := ecs.NewStorage()
	commands := ecs.NewCommands()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				commands.Spawn(C1{V: j})
			}
		}()
	}
	wg.Wait()

	require.NoError(t, commands.Flush(storage))
	assert.Equal(t, 400, storage.EntityCount())
}
