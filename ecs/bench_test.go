package ecs_test

import (
	"testing"

	"github.com/plus3/archstore/ecs"
)

func BenchmarkSpawn(b *testing.B) {
	storage := ecs.NewStorage()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		storage.Spawn(Position{X: 1.0, Y: 2.0}, Velocity{DX: 0.5, DY: 0.5})
	}
}

func BenchmarkCreateBatch(b *testing.B) {
	storage := ecs.NewStorage()
	batch := storage.NewCreateBatch()
	ecs.CreateBatchAdd(batch, Position{X: 1.0, Y: 2.0})
	ecs.CreateBatchAdd(batch, Velocity{DX: 0.5, DY: 0.5})
	ecs.CreateBatchAdd(batch, Health{Current: 100, Max: 100})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		batch.CreateEntity()
	}
}

func BenchmarkDelete(b *testing.B) {
	storage := ecs.NewStorage()

	ids := make([]ecs.EntityId, b.N)
	for i := 0; i < b.N; i++ {
		ids[i] = storage.Spawn(Position{X: 1.0, Y: 2.0}, Velocity{DX: 0.5, DY: 0.5})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		storage.Delete(ids[i])
	}
}

func BenchmarkGetComponent(b *testing.B) {
	storage := ecs.NewStorage()
	id := storage.Spawn(Position{X: 1.0, Y: 2.0}, Velocity{DX: 0.5, DY: 0.5})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ecs.GetComponent[Position](storage, id)
	}
}

func BenchmarkAddComponent(b *testing.B) {
	storage := ecs.NewStorage()

	ids := make([]ecs.EntityId, b.N)
	for i := 0; i < b.N; i++ {
		ids[i] = storage.Spawn(Position{X: 1.0, Y: 2.0})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ecs.AddComponent(storage, ids[i], Velocity{DX: 0.5, DY: 0.5})
	}
}

func BenchmarkRemoveComponent(b *testing.B) {
	storage := ecs.NewStorage()

	ids := make([]ecs.EntityId, b.N)
	for i := 0; i < b.N; i++ {
		ids[i] = storage.Spawn(Position{X: 1.0, Y: 2.0}, Velocity{DX: 0.5, DY: 0.5})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ecs.RemoveComponent[Velocity](storage, ids[i])
	}
}

func BenchmarkBatchApply(b *testing.B) {
	storage := ecs.NewStorage()

	ids := make([]ecs.EntityId, b.N)
	for i := 0; i < b.N; i++ {
		ids[i] = storage.Spawn(Position{}, Rotation{})
	}
	batch := storage.NewBatch()
	ecs.BatchAdd(batch, Name{Value: "bench"})
	ecs.BatchRemove[Rotation](batch)
	ecs.BatchAddTag[T1](batch)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = batch.ApplyTo(ids[i])
	}
}

func BenchmarkQueryChunks(b *testing.B) {
	storage := ecs.NewStorage()
	for i := 0; i < 10000; i++ {
		storage.Spawn(Position{X: float32(i)}, Velocity{DX: 1})
		if i%4 == 0 {
			storage.Spawn(Position{X: float32(i)}, Velocity{DX: 1}, Enemy{})
		}
	}
	query := ecs.NewQuery2[Position, Velocity](storage)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for chunk := range query.Chunks() {
			for idx := range chunk.Entities {
				chunk.C1[idx].X += chunk.C2[idx].DX
			}
		}
	}
}

func BenchmarkRunParallel(b *testing.B) {
	storage := ecs.NewStorage()
	for i := 0; i < 100000; i++ {
		storage.Spawn(Position{X: float32(i)}, Velocity{DX: 1})
	}

	runner := ecs.NewJobRunner(0)
	defer runner.Close()

	job := ecs.NewForEachJob(runner, ecs.NewQuery2[Position, Velocity](storage), func(ctx ecs.ExecutionContext, chunk ecs.Chunk2[Position, Velocity]) {
		for idx := range chunk.Entities {
			chunk.C1[idx].X += chunk.C2[idx].DX
		}
	}, 1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		job.RunParallel()
	}
}

func BenchmarkComponentSetOf(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = ecs.ComponentSetOf3[Position, Velocity, Health]()
	}
}
