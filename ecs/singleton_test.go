package ecs_test

import (
	"testing"

	"github.com/plus3/archstore/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type GameClock struct {
	Tick int
}

func TestSingleton(t *testing.T) {
	storage := ecs.NewStorage()

	clock := ecs.NewSingleton(storage, GameClock{Tick: 7})
	require.True(t, clock.Exists())
	assert.Equal(t, 7, clock.Get().Tick)

	clock.Get().Tick++
	again := ecs.NewSingleton[GameClock](storage, GameClock{Tick: 100})
	assert.Equal(t, 8, again.Get().Tick, "an existing singleton is not replaced by the initializer")
}

func TestAddSingletonOverwritesInPlace(t *testing.T) {
	storage := ecs.NewStorage()
	clock := ecs.NewSingleton[GameClock](storage)
	ptr := clock.Get()

	storage.AddSingleton(&GameClock{Tick: 42})

	assert.Same(t, ptr, clock.Get())
	assert.Equal(t, 42, ptr.Tick)
}

func TestSingletonInit(t *testing.T) {
	storage := ecs.NewStorage()

	var clock ecs.Singleton[GameClock]
	clock.Init(storage)
	assert.False(t, clock.Exists())
	assert.Nil(t, clock.Get())

	storage.AddSingleton(GameClock{Tick: 1})
	assert.True(t, clock.Exists())
	assert.Equal(t, 1, clock.Get().Tick)
}
