package ecs_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/plus3/archstore/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Gravity struct {
	Strength float32
}

type fallSystem struct {
	Bodies  ecs.Query2[Position, Velocity]
	Gravity ecs.Singleton[Gravity]
	Free    ecs.Query

	frames int
}

func (s *fallSystem) Execute(frame *ecs.UpdateFrame) {
	s.frames++
	g := s.Gravity.Get()
	s.Bodies.ForEachEntity(func(id ecs.EntityId, pos *Position, vel *Velocity) {
		vel.DY += g.Strength * float32(frame.DeltaTime)
		pos.Y += vel.DY
	})
}

type cleanupSystem struct {
	Bodies ecs.Query1[Position]
}

func (s *cleanupSystem) Execute(frame *ecs.UpdateFrame) {
	s.Bodies.ForEachEntity(func(id ecs.EntityId, pos *Position) {
		if pos.Y > 10 {
			frame.Commands.Delete(id)
		}
	})
}

func TestSchedulerInitializesFields(t *testing.T) {
	storage := ecs.NewStorage()
	storage.AddSingleton(Gravity{Strength: 10})
	falling := storage.Spawn(Position{}, Velocity{})
	storage.Spawn(Position{Y: 100})

	scheduler := ecs.NewScheduler(storage)
	fall := &fallSystem{}
	scheduler.Register(fall)
	scheduler.Register(&cleanupSystem{})

	require.NoError(t, scheduler.Once(0.5))

	assert.Equal(t, 1, fall.frames)
	assert.Equal(t, float32(5), ecs.ReadComponent[Velocity](storage, falling).DY)
	assert.Equal(t, 1, storage.EntityCount(), "the far entity was deleted by the flushed commands")
	assert.Zero(t, fall.Free.Signature(), "a bare Query is left alone")
}

func TestSchedulerStats(t *testing.T) {
	storage := ecs.NewStorage()
	storage.AddSingleton(Gravity{})
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&fallSystem{})
	scheduler.Register(&cleanupSystem{})

	for i := 0; i < 3; i++ {
		require.NoError(t, scheduler.Once(0.1))
	}

	stats := scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, int64(6), stats.TotalExecutions)
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, "fallSystem", stats.Systems[0].Name)
	assert.Equal(t, "cleanupSystem", stats.Systems[1].Name)
	assert.Equal(t, int64(3), stats.Systems[0].ExecutionCount)
	assert.LessOrEqual(t, stats.Systems[0].MinDuration, stats.Systems[0].MaxDuration)
}

type jobSystem struct {
	Bodies ecs.Query1[Position]

	moved atomic.Int64
}

func (s *jobSystem) Execute(frame *ecs.UpdateFrame) {
	ecs.NewForEachJob(frame.Jobs, &s.Bodies, func(ctx ecs.ExecutionContext, chunk ecs.Chunk1[Position]) {
		for idx := range chunk.C1 {
			chunk.C1[idx].X++
		}
		s.moved.Add(int64(chunk.Len()))
	}, 4).RunParallel()
}

func TestSchedulerProvidesJobRunner(t *testing.T) {
	storage := ecs.NewStorage()
	for i := 0; i < 50; i++ {
		storage.Spawn(Position{})
	}

	runner := ecs.NewJobRunner(3)
	defer runner.Close()

	scheduler := ecs.NewScheduler(storage, ecs.WithJobRunner(runner))
	system := &jobSystem{}
	scheduler.Register(system)

	require.NoError(t, scheduler.Once(0))
	assert.Equal(t, int64(50), system.moved.Load())
}

type tickSystem struct {
	ticks atomic.Int32
}

func (s *tickSystem) Execute(*ecs.UpdateFrame) {
	s.ticks.Add(1)
}

func TestSchedulerRunStopsOnCancel(t *testing.T) {
	scheduler := ecs.NewScheduler(ecs.NewStorage())
	system := &tickSystem{}
	scheduler.Register(system)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		scheduler.Run(ctx, time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return system.ticks.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
