package main

import (
	"math/rand"
	"sync/atomic"

	"github.com/plus3/archstore/ecs"
)

type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Health struct {
	Current int
	Max     int
}

type Lifetime struct {
	Frames int
}

// Wanderer marks entities that periodically change direction.
type Wanderer struct{}

// Expired marks entities whose lifetime ran out.
type Expired struct{}

// MovementSystem integrates velocities in parallel.
type MovementSystem struct {
	Moving  ecs.Query2[Position, Velocity]
	MinSize int

	job   *ecs.ForEachJob[ecs.Chunk2[Position, Velocity]]
	dt    float32
	moved atomic.Int64
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	s.dt = float32(frame.DeltaTime)
	if s.job == nil {
		s.job = ecs.NewForEachJob(frame.Jobs, &s.Moving, func(_ ecs.ExecutionContext, chunk ecs.Chunk2[Position, Velocity]) {
			for idx := range chunk.Entities {
				chunk.C1[idx].X += chunk.C2[idx].DX * s.dt
				chunk.C1[idx].Y += chunk.C2[idx].DY * s.dt
			}
			s.moved.Add(int64(chunk.Len()))
		}, s.MinSize)
	}
	s.job.RunParallel()
}

// LifetimeSystem counts down lifetimes and tags expired entities through a
// deferred command.
type LifetimeSystem struct {
	Living ecs.Query1[Lifetime]
}

func (s *LifetimeSystem) Execute(frame *ecs.UpdateFrame) {
	expired := ecs.TagTypeOf[Expired]()
	s.Living.ForEachEntity(func(id ecs.EntityId, lifetime *Lifetime) {
		lifetime.Frames--
		if lifetime.Frames == 0 {
			frame.Commands.AddTag(id, expired)
		}
	})
}

// ReaperSystem deletes expired entities and spawns replacements from a
// creation batch so the population stays stable.
type ReaperSystem struct {
	spawner *ecs.CreateBatch
	expired *ecs.Query
	scratch []ecs.EntityId
	reaped  int64
}

func (s *ReaperSystem) Execute(frame *ecs.UpdateFrame) {
	if s.spawner == nil {
		s.spawner = newSpawner(frame.Storage)
		s.expired = ecs.NewQuery(frame.Storage, ecs.ComponentSet{}, ecs.NewQueryFilter(ecs.AllTags(ecs.TagSetOf1[Expired]())))
	}
	s.scratch = s.expired.AppendEntities(s.scratch[:0])
	for _, id := range s.scratch {
		frame.Storage.Delete(id)
		spawnRandom(s.spawner)
	}
	s.reaped += int64(len(s.scratch))
}

// WanderSystem flips a random wanderer's velocity with a reusable batch.
type WanderSystem struct {
	Wanderers ecs.Query1[Velocity]

	batch *ecs.Batch
}

func (s *WanderSystem) Execute(frame *ecs.UpdateFrame) {
	if s.batch == nil {
		s.batch = frame.Storage.NewBatch()
	}
	ids := s.Wanderers.ToEntityList()
	if len(ids) == 0 {
		return
	}
	id := ids[rand.Intn(len(ids))]
	if !ecs.HasTag[Wanderer](frame.Storage, id) {
		return
	}
	s.batch.Clear()
	ecs.BatchAdd(s.batch, Velocity{DX: rand.Float32()*2 - 1, DY: rand.Float32()*2 - 1})
	_ = s.batch.ApplyTo(id)
}

func newSpawner(storage *ecs.Storage) *ecs.CreateBatch {
	b := storage.NewCreateBatch()
	ecs.CreateBatchAdd(b, Position{})
	ecs.CreateBatchAdd(b, Velocity{})
	ecs.CreateBatchAdd(b, Health{Current: 100, Max: 100})
	ecs.CreateBatchAdd(b, Lifetime{})
	ecs.CreateBatchAddTag[Wanderer](b)
	return b
}

// spawnRandom creates one entity from the template with randomised values.
func spawnRandom(b *ecs.CreateBatch) ecs.EntityId {
	pos, _ := ecs.CreateBatchGet[Position](b)
	*pos = Position{X: rand.Float32() * 1000, Y: rand.Float32() * 1000}
	vel, _ := ecs.CreateBatchGet[Velocity](b)
	*vel = Velocity{DX: rand.Float32()*2 - 1, DY: rand.Float32()*2 - 1}
	lifetime, _ := ecs.CreateBatchGet[Lifetime](b)
	lifetime.Frames = 30 + rand.Intn(300)
	return b.CreateEntity()
}
