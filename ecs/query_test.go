package ecs_test

import (
	"slices"
	"testing"

	"github.com/plus3/archstore/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryMatchesSupersets(t *testing.T) {
	storage := ecs.NewStorage()
	a := storage.Spawn(Position{}, Velocity{})
	b := storage.Spawn(Position{}, Velocity{}, Name{}, Enemy{})
	storage.Spawn(Position{})
	storage.Spawn(Velocity{})

	query := ecs.NewQuery2[Position, Velocity](storage)

	assert.ElementsMatch(t, []ecs.EntityId{a, b}, query.ToEntityList())
	assert.Equal(t, 2, query.EntityCount())
	assert.Equal(t, ecs.ComponentSetOf2[Position, Velocity](), query.Signature())
	assert.Len(t, query.Archetypes(), 2)
}

func TestQueryPicksUpNewArchetypes(t *testing.T) {
	storage := ecs.NewStorage()
	query := ecs.NewQuery1[Health](storage)
	assert.Zero(t, query.EntityCount())

	first := storage.Spawn(Health{Current: 1})
	assert.Equal(t, 1, query.EntityCount())

	second := storage.Spawn(Health{Current: 2}, Frozen{})
	require.NoError(t, ecs.AddComponent(storage, first, Name{}))

	assert.ElementsMatch(t, []ecs.EntityId{first, second}, query.ToEntityList())
}

func TestQueryWithFilter(t *testing.T) {
	storage := ecs.NewStorage()
	storage.Spawn(Position{}, Enemy{})
	friend := storage.Spawn(Position{})

	query := ecs.NewQuery1[Position](storage, ecs.NewQueryFilter(ecs.WithoutAnyTags(ecs.TagSetOf1[Enemy]())))

	id, err := query.FindEntity()
	require.NoError(t, err)
	assert.Equal(t, friend, id)
}

func TestQueryFindEntityErrors(t *testing.T) {
	storage := ecs.NewStorage()
	query := ecs.NewQuery1[Rotation](storage)

	_, err := query.FindEntity()
	assert.ErrorIs(t, err, ecs.ErrNoMatch)

	storage.Spawn(Rotation{})
	storage.Spawn(Rotation{}, Frozen{})
	_, err = query.FindEntity()
	assert.ErrorIs(t, err, ecs.ErrAmbiguousMatch)
}

func TestTypedChunks(t *testing.T) {
	storage := ecs.NewStorage()
	for i := 0; i < 5; i++ {
		storage.Spawn(Position{X: float32(i)}, Velocity{DX: 1})
	}
	for i := 0; i < 3; i++ {
		storage.Spawn(Position{X: float32(i)}, Velocity{DX: 1}, Enemy{})
	}

	query := ecs.NewQuery2[Position, Velocity](storage)

	var lengths []int
	for chunk := range query.Chunks() {
		require.Len(t, chunk.C1, chunk.Len())
		require.Len(t, chunk.C2, chunk.Len())
		lengths = append(lengths, chunk.Len())
		for idx := range chunk.Entities {
			chunk.C1[idx].X += chunk.C2[idx].DX
		}
	}
	slices.Sort(lengths)
	assert.Equal(t, []int{3, 5}, lengths)

	var xs []float32
	query.ForEachEntity(func(id ecs.EntityId, pos *Position, vel *Velocity) {
		xs = append(xs, pos.X)
	})
	slices.Sort(xs)
	assert.Equal(t, []float32{1, 1, 2, 2, 3, 3, 4, 5}, xs)
}

func TestChunksStopEarly(t *testing.T) {
	storage := ecs.NewStorage()
	storage.Spawn(C1{})
	storage.Spawn(C1{}, C2{})

	seen := 0
	for range ecs.NewQuery1[C1](storage).Chunks() {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestUntypedQueryChunks(t *testing.T) {
	storage := ecs.NewStorage()
	id := storage.Spawn(Name{Value: "a"}, Score(3))

	query := ecs.NewQuery(storage, ecs.ComponentSetOf1[Name]())
	var chunks []ecs.Chunk
	for chunk := range query.Chunks() {
		chunks = append(chunks, chunk)
	}
	require.Len(t, chunks, 1)

	chunk := chunks[0]
	assert.Equal(t, []ecs.EntityId{id}, chunk.Entities)
	assert.Equal(t, 0, chunk.Offset())
	assert.Equal(t, "a", ecs.ChunkColumn[Name](chunk)[0].Value)
	assert.Equal(t, Score(3), ecs.ChunkColumn[Score](chunk)[0], "columns outside the signature are reachable")
	assert.Panics(t, func() { ecs.ChunkColumn[Velocity](chunk) })

	var visited []ecs.EntityId
	query.ForEachEntity(func(id ecs.EntityId) { visited = append(visited, id) })
	assert.Equal(t, []ecs.EntityId{id}, visited)
}

func TestQueryReadOnly(t *testing.T) {
	storage := ecs.NewStorage()
	query := ecs.NewQuery2[Position, Velocity](storage)

	require.NoError(t, ecs.ReadOnly[Velocity](query))
	assert.ErrorIs(t, ecs.ReadOnly[Health](query), ecs.ErrUnknownComponent)

	reads, writes := query.Access()
	assert.Equal(t, ecs.ComponentSetOf1[Velocity](), reads)
	assert.Equal(t, ecs.ComponentSetOf1[Position](), writes)
}

func TestToEntityListIsASnapshot(t *testing.T) {
	storage := ecs.NewStorage()
	for i := 0; i < 4; i++ {
		storage.Spawn(C1{V: i})
	}
	query := ecs.NewQuery1[C1](storage)

	ids := query.ToEntityList()
	for _, id := range ids {
		require.True(t, storage.Delete(id))
	}
	assert.Len(t, ids, 4)
	assert.Zero(t, query.EntityCount())
}

func TestHigherArityQueries(t *testing.T) {
	storage := ecs.NewStorage()
	id := storage.Spawn(C1{1}, C2{2}, C3{3}, Health{Current: 4}, Name{Value: "5"})

	query := ecs.NewQuery5[C1, C2, C3, Health, Name](storage)
	calls := 0
	query.ForEachEntity(func(got ecs.EntityId, c1 *C1, c2 *C2, c3 *C3, h *Health, n *Name) {
		calls++
		assert.Equal(t, id, got)
		assert.Equal(t, 1+2+3+4, c1.V+c2.V+c3.V+h.Current)
		assert.Equal(t, "5", n.Value)
	})
	assert.Equal(t, 1, calls)
}

func TestFindEntityWithUniqueName(t *testing.T) {
	storage := ecs.NewStorage()
	boss := storage.Spawn(ecs.UniqueName{Value: "boss"}, Health{})
	storage.Spawn(ecs.UniqueName{Value: "minion"})
	storage.Spawn(ecs.UniqueName{Value: "twin"})
	storage.Spawn(ecs.UniqueName{Value: "twin"}, Enemy{})

	id, err := storage.FindEntityWithUniqueName("boss")
	require.NoError(t, err)
	assert.Equal(t, boss, id)

	_, err = storage.FindEntityWithUniqueName("nobody")
	assert.ErrorIs(t, err, ecs.ErrNoMatch)

	_, err = storage.FindEntityWithUniqueName("twin")
	assert.ErrorIs(t, err, ecs.ErrAmbiguousMatch)
}
