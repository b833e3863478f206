package ecs_test

import (
	"testing"

	"github.com/plus3/archstore/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// filterFixture spawns entities with the component subsets {}, {C1}, {C2},
// {C1,C2} and {C1,C2,C3}, in that order.
func filterFixture(t *testing.T) (*ecs.Storage, []ecs.EntityId) {
	t.Helper()
	storage := ecs.NewStorage()
	return storage, []ecs.EntityId{
		storage.NewEntity(),
		storage.Spawn(C1{}),
		storage.Spawn(C2{}),
		storage.Spawn(C1{}, C2{}),
		storage.Spawn(C1{}, C2{}, C3{}),
	}
}

func TestComponentPredicates(t *testing.T) {
	c12 := ecs.ComponentSetOf2[C1, C2]()

	cases := []struct {
		name      string
		predicate ecs.Predicate
		want      []int
	}{
		{"AllComponents", ecs.AllComponents(c12), []int{3, 4}},
		{"AnyComponents", ecs.AnyComponents(c12), []int{1, 2, 3, 4}},
		{"WithoutAllComponents", ecs.WithoutAllComponents(c12), []int{0, 1, 2}},
		{"WithoutAnyComponents", ecs.WithoutAnyComponents(c12), []int{0}},
		{"EmptyAny", ecs.AnyComponents(ecs.ComponentSet{}), []int{0, 1, 2, 3, 4}},
		{"EmptyWithoutAll", ecs.WithoutAllComponents(ecs.ComponentSet{}), []int{0, 1, 2, 3, 4}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			storage, ids := filterFixture(t)
			want := make([]ecs.EntityId, 0, len(tc.want))
			for _, idx := range tc.want {
				want = append(want, ids[idx])
			}
			got := storage.FindEntities(ecs.NewQueryFilter(tc.predicate))
			assert.ElementsMatch(t, want, got)
		})
	}
}

func TestTagPredicates(t *testing.T) {
	storage := ecs.NewStorage()
	none := storage.Spawn(C1{})
	enemy := storage.Spawn(C1{}, Enemy{})
	both := storage.Spawn(C1{}, Enemy{}, Frozen{})

	tags := ecs.TagSetOf2[Enemy, Frozen]()
	find := func(p ecs.Predicate) []ecs.EntityId {
		return storage.FindEntities(ecs.NewQueryFilter(p))
	}

	assert.ElementsMatch(t, []ecs.EntityId{both}, find(ecs.AllTags(tags)))
	assert.ElementsMatch(t, []ecs.EntityId{enemy, both}, find(ecs.AnyTags(tags)))
	assert.ElementsMatch(t, []ecs.EntityId{none, enemy}, find(ecs.WithoutAllTags(tags)))
	assert.ElementsMatch(t, []ecs.EntityId{none}, find(ecs.WithoutAnyTags(tags)))
}

func TestFilterConjunction(t *testing.T) {
	storage, ids := filterFixture(t)

	filter := ecs.NewQueryFilter(ecs.AnyComponents(ecs.ComponentSetOf1[C1]()))
	require.NoError(t, filter.Add(ecs.WithoutAnyComponents(ecs.ComponentSetOf1[C3]())))

	assert.ElementsMatch(t, []ecs.EntityId{ids[1], ids[3]}, storage.FindEntities(filter))
	assert.Equal(t, "{AnyComponents[C1] && WithoutAnyComponents[C3]}", filter.String())
}

func TestFilterFreezesWhenQueryIsBuilt(t *testing.T) {
	storage := ecs.NewStorage()
	filter := ecs.NewQueryFilter(ecs.AllTags(ecs.TagSetOf1[Enemy]()))
	assert.False(t, filter.IsFrozen())

	ecs.NewQuery1[Position](storage, filter)

	assert.True(t, filter.IsFrozen())
	err := filter.Add(ecs.AnyTags(ecs.TagSetOf1[Player]()))
	assert.ErrorIs(t, err, ecs.ErrImmutableFilter)
	assert.Equal(t, "{AllTags[#Enemy]}", filter.String())
}

func TestNilFilterMatchesEverything(t *testing.T) {
	storage, ids := filterFixture(t)

	var filter *ecs.QueryFilter
	assert.ElementsMatch(t, ids, storage.FindEntities(filter))
	assert.Equal(t, "{}", filter.String())
}

func TestFindEntity(t *testing.T) {
	storage, ids := filterFixture(t)

	id, err := storage.FindEntity(ecs.NewQueryFilter(ecs.AllComponents(ecs.ComponentSetOf1[C3]())))
	require.NoError(t, err)
	assert.Equal(t, ids[4], id)

	_, err = storage.FindEntity(ecs.NewQueryFilter(ecs.AllComponents(ecs.ComponentSetOf1[C1]())))
	assert.ErrorIs(t, err, ecs.ErrAmbiguousMatch)

	_, err = storage.FindEntity(ecs.NewQueryFilter(ecs.AllComponents(ecs.ComponentSetOf1[Velocity]())))
	assert.ErrorIs(t, err, ecs.ErrNoMatch)
}
