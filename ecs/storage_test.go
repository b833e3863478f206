package ecs_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/plus3/archstore/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntity(t *testing.T) {
	storage := ecs.NewStorage()

	a := storage.NewEntity()
	b := storage.NewEntity()

	assert.True(t, a.IsValid())
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, storage.EntityCount())
	assert.True(t, storage.IsAlive(a))

	archetype, ok := storage.EntityArchetype(a)
	require.True(t, ok)
	assert.Equal(t, "[]", archetype.String())
	assert.Equal(t, 2, archetype.EntityCount())
}

func TestCreateEntityWithExplicitId(t *testing.T) {
	storage := ecs.NewStorage()

	id, err := storage.CreateEntity(ecs.WithId(42))
	require.NoError(t, err)
	assert.Equal(t, ecs.EntityId(42), id)
	assert.True(t, storage.IsAlive(42))
}

func TestCreateEntityRejectsInvalidIds(t *testing.T) {
	storage := ecs.NewStorage()

	for _, id := range []ecs.EntityId{0, -1, -100} {
		_, err := storage.CreateEntity(ecs.WithId(id))
		assert.ErrorIs(t, err, ecs.ErrInvalidId)
	}
	assert.Zero(t, storage.EntityCount())
}

func TestCreateEntityRejectsLiveId(t *testing.T) {
	storage := ecs.NewStorage()
	_, err := storage.CreateEntity(ecs.WithId(7))
	require.NoError(t, err)

	_, err = storage.CreateEntity(ecs.WithId(7))
	assert.ErrorIs(t, err, ecs.ErrIdInUse)
	assert.Equal(t, 1, storage.EntityCount())
}

func TestRecreateDeletedExplicitId(t *testing.T) {
	storage := ecs.NewStorage()
	id, err := storage.CreateEntity(ecs.WithId(9))
	require.NoError(t, err)

	assert.True(t, storage.Delete(id))
	assert.False(t, storage.Delete(id), "second delete reports the entity is gone")

	again, err := storage.CreateEntity(ecs.WithId(9))
	require.NoError(t, err)
	assert.Equal(t, id, again)
}

func TestAutomaticIdsSkipExplicitIds(t *testing.T) {
	storage := ecs.NewStorage()
	_, err := storage.CreateEntity(ecs.WithId(1))
	require.NoError(t, err)
	_, err = storage.CreateEntity(ecs.WithId(2))
	require.NoError(t, err)

	assert.Equal(t, ecs.EntityId(3), storage.NewEntity())
}

func TestMonotonicIdsAreNotRecycled(t *testing.T) {
	storage := ecs.NewStorage()
	first := storage.NewEntity()
	storage.Delete(first)

	assert.Greater(t, storage.NewEntity(), first)
}

func TestRecycledIds(t *testing.T) {
	storage := ecs.NewStorage(ecs.WithIdPolicy(ecs.IdPolicyRecycle))
	a := storage.NewEntity()
	b := storage.NewEntity()
	storage.Delete(a)
	storage.Delete(b)

	assert.Equal(t, b, storage.NewEntity(), "most recently freed id first")
	assert.Equal(t, a, storage.NewEntity())
	assert.Equal(t, "recycle", ecs.IdPolicyRecycle.String())
}

func TestRecycledIdTakenExplicitlyIsSkipped(t *testing.T) {
	storage := ecs.NewStorage(ecs.WithIdPolicy(ecs.IdPolicyRecycle))
	a := storage.NewEntity()
	storage.Delete(a)

	_, err := storage.CreateEntity(ecs.WithId(a))
	require.NoError(t, err)

	assert.NotEqual(t, a, storage.NewEntity())
}

func TestCreateEntityInArchetype(t *testing.T) {
	storage := ecs.NewStorage()
	archetype := storage.GetArchetype(ecs.ComponentSetOf2[Position, Velocity](), ecs.TagSetOf1[Enemy]())

	id, err := storage.CreateEntity(ecs.InArchetype(archetype))
	require.NoError(t, err)

	pos, err := ecs.GetComponent[Position](storage, id)
	require.NoError(t, err)
	assert.Equal(t, Position{}, *pos)
	assert.True(t, ecs.HasTag[Enemy](storage, id))

	other := ecs.NewStorage()
	foreign := other.GetArchetype(ecs.ComponentSetOf1[Position](), ecs.TagSet{})
	_, err = storage.CreateEntity(ecs.InArchetype(foreign))
	assert.ErrorIs(t, err, ecs.ErrForeignArchetype)
}

func TestGetArchetypeReturnsSameInstance(t *testing.T) {
	storage := ecs.NewStorage()
	cs := ecs.ComponentSetOf2[Position, Velocity]()

	_, found := storage.FindArchetype(cs, ecs.TagSet{})
	assert.False(t, found, "find does not create")

	created := storage.GetArchetype(cs, ecs.TagSet{})
	again := storage.GetArchetype(ecs.ComponentSetOf2[Velocity, Position](), ecs.TagSet{})
	assert.Same(t, created, again)

	found2, ok := storage.FindArchetype(cs, ecs.TagSet{})
	require.True(t, ok)
	assert.Same(t, created, found2)

	tagged := storage.GetArchetype(cs, ecs.TagSetOf1[Enemy]())
	assert.NotSame(t, created, tagged, "tags are part of the signature")
	assert.Equal(t, "[Position, Velocity, #Enemy]", tagged.String())
}

func TestArchetypesAreNeverRemoved(t *testing.T) {
	storage := ecs.NewStorage()
	id := storage.NewEntity()
	require.NoError(t, ecs.AddComponent(storage, id, Position{X: 1}))
	before := len(storage.Archetypes())

	storage.Delete(id)

	assert.Len(t, storage.Archetypes(), before)
	for idx, a := range storage.Archetypes() {
		assert.Equal(t, uint32(idx), a.ID())
	}
}

func TestDeleteSwapsLastRowIntoPlace(t *testing.T) {
	storage := ecs.NewStorage()
	ids := make([]ecs.EntityId, 4)
	for i := range ids {
		ids[i] = storage.NewEntity()
		require.NoError(t, ecs.AddComponent(storage, ids[i], Position{X: float32(i)}))
	}

	storage.Delete(ids[1])

	archetype, _ := storage.EntityArchetype(ids[0])
	assert.Equal(t, 3, archetype.EntityCount())
	assert.Equal(t, []ecs.EntityId{ids[0], ids[3], ids[2]}, archetype.Entities())

	for i, id := range ids {
		if i == 1 {
			continue
		}
		pos, err := ecs.GetComponent[Position](storage, id)
		require.NoError(t, err)
		assert.Equal(t, float32(i), pos.X)
	}
}

func TestOperationsOnMissingEntity(t *testing.T) {
	storage := ecs.NewStorage()

	assert.ErrorIs(t, ecs.AddComponent(storage, 99, Position{}), ecs.ErrEntityNotFound)
	assert.ErrorIs(t, ecs.AddTag[Enemy](storage, 99), ecs.ErrEntityNotFound)
	_, err := ecs.GetComponent[Position](storage, 99)
	assert.ErrorIs(t, err, ecs.ErrEntityNotFound)
	assert.False(t, ecs.HasComponent[Position](storage, 99))
	assert.Nil(t, storage.GetComponentValue(99, ecs.ComponentTypeOf[Position]()))
}

func TestSpawnWithValues(t *testing.T) {
	storage := ecs.NewStorage()
	id := storage.Spawn(&Position{X: 1, Y: 2}, Velocity{DX: 3}, Enemy{}, Score(5))

	archetype, ok := storage.EntityArchetype(id)
	require.True(t, ok)
	assert.Equal(t, "[Position, Score, Velocity, #Enemy]", archetype.String())

	assert.Equal(t, &Position{X: 1, Y: 2}, ecs.ReadComponent[Position](storage, id))
	assert.Equal(t, Score(5), *ecs.ReadComponent[Score](storage, id))
	assert.Nil(t, ecs.ReadComponent[Name](storage, id))

	assert.Panics(t, func() {
		storage.Spawn(struct{ Unregistered int }{})
	})
}

func TestUntypedComponentAccess(t *testing.T) {
	storage := ecs.NewStorage()
	id := storage.NewEntity()

	require.NoError(t, storage.AddComponentValue(id, Name{Value: "a"}))
	require.NoError(t, storage.SetComponentValue(id, &Name{Value: "b"}))

	value := storage.GetComponentValue(id, ecs.ComponentTypeOf[Name]())
	assert.Equal(t, &Name{Value: "b"}, value)

	err := storage.SetComponentValue(id, Position{})
	var missing *ecs.MissingComponentError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, ecs.ComponentSetOf1[Position](), missing.Missing)

	err = storage.AddComponentValue(id, struct{ Unregistered int }{})
	assert.ErrorIs(t, err, ecs.ErrUnknownComponent)
	assert.ErrorIs(t, storage.AddComponentValue(id, nil), ecs.ErrUnknownComponent)
}

func TestNilPointerValueLeavesEntityUnchanged(t *testing.T) {
	storage := ecs.NewStorage()
	id := storage.NewEntity()
	before, _ := storage.EntityArchetype(id)

	err := storage.AddComponentValue(id, (*Position)(nil))
	assert.ErrorIs(t, err, ecs.ErrUnknownComponent)
	after, _ := storage.EntityArchetype(id)
	assert.Same(t, before, after)

	require.NoError(t, storage.AddComponentValue(id, Position{X: 1}))
	assert.ErrorIs(t, storage.SetComponentValue(id, (*Position)(nil)), ecs.ErrUnknownComponent)
	assert.Equal(t, &Position{X: 1}, ecs.ReadComponent[Position](storage, id))

	count := len(storage.Archetypes())
	assert.Panics(t, func() {
		storage.Spawn(Velocity{}, (*Position)(nil))
	})
	assert.Len(t, storage.Archetypes(), count)
	assert.Equal(t, 1, storage.EntityCount())

	commands := ecs.NewCommands()
	commands.AddComponent(id, (*Velocity)(nil))
	assert.ErrorIs(t, commands.Flush(storage), ecs.ErrUnknownComponent)
	after, _ = storage.EntityArchetype(id)
	assert.Equal(t, "[Position]", after.String())
}

func TestTagsAndComponentRemovalViaStorage(t *testing.T) {
	storage := ecs.NewStorage()
	id := storage.Spawn(Position{}, Velocity{}, Enemy{})

	require.NoError(t, storage.AddTags(id, ecs.TagTypeOf[Frozen]()))
	require.NoError(t, storage.RemoveTags(id, ecs.TagTypeOf[Enemy]()))
	require.NoError(t, storage.RemoveComponents(id, ecs.ComponentSetOf1[Velocity](), ecs.TagSet{}))

	archetype, _ := storage.EntityArchetype(id)
	assert.Equal(t, "[Position, #Frozen]", archetype.String())
}

// Every live entity must sit in exactly one archetype whose signature matches
// what was attached to it.
func TestRandomTransitionsKeepIndexConsistent(t *testing.T) {
	storage := ecs.NewStorage()
	rng := rand.New(rand.NewSource(1))

	type expected struct {
		components ecs.ComponentSet
		tags       ecs.TagSet
		position   Position
	}
	model := map[ecs.EntityId]*expected{}

	for step := 0; step < 2000; step++ {
		switch op := rng.Intn(6); {
		case op == 0 || len(model) == 0:
			model[storage.NewEntity()] = &expected{}
		default:
			var id ecs.EntityId
			for id = range model {
				break
			}
			e := model[id]
			switch op {
			case 1:
				e.position = Position{X: float32(step)}
				require.NoError(t, ecs.AddComponent(storage, id, e.position))
				e.components = e.components.Add(ecs.ComponentTypeOf[Position]())
			case 2:
				require.NoError(t, ecs.AddComponents2(storage, id, Velocity{}, Name{}, ecs.TagTypeOf[Enemy]()))
				e.components = e.components.Add(ecs.ComponentTypeOf[Velocity](), ecs.ComponentTypeOf[Name]())
				e.tags = e.tags.Add(ecs.TagTypeOf[Enemy]())
			case 3:
				require.NoError(t, ecs.RemoveComponent[Velocity](storage, id, ecs.TagTypeOf[Enemy]()))
				e.components = e.components.Remove(ecs.ComponentTypeOf[Velocity]())
				e.tags = e.tags.Remove(ecs.TagTypeOf[Enemy]())
			case 4:
				require.NoError(t, ecs.AddTag[Frozen](storage, id))
				e.tags = e.tags.Add(ecs.TagTypeOf[Frozen]())
			case 5:
				require.True(t, storage.Delete(id))
				delete(model, id)
			}
		}
	}

	assert.Equal(t, len(model), storage.EntityCount())
	total := 0
	for _, a := range storage.Archetypes() {
		total += a.EntityCount()
	}
	assert.Equal(t, len(model), total)

	for id, e := range model {
		archetype, ok := storage.EntityArchetype(id)
		require.True(t, ok)
		assert.Equal(t, e.components, archetype.Components())
		assert.Equal(t, e.tags, archetype.Tags())
		assert.Contains(t, archetype.Entities(), id)
		if e.components.Has(ecs.ComponentTypeOf[Position]()) {
			pos, err := ecs.GetComponent[Position](storage, id)
			require.NoError(t, err)
			assert.Equal(t, e.position, *pos)
		}
	}
}

func TestErrorsAreDistinct(t *testing.T) {
	sentinels := []error{
		ecs.ErrInvalidId, ecs.ErrIdInUse, ecs.ErrEntityNotFound, ecs.ErrMissingComponent,
		ecs.ErrMissingAdd, ecs.ErrApplyMisuse, ecs.ErrImmutableFilter, ecs.ErrUnknownComponent,
		ecs.ErrAmbiguousMatch, ecs.ErrNoMatch, ecs.ErrForeignArchetype,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			assert.Equal(t, i == j, errors.Is(a, b), "%v vs %v", a, b)
		}
	}
}
