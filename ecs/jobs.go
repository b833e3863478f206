package ecs

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/plus3/archstore/internal/statsd"
	"github.com/rs/zerolog"
)

// ExecutionContext tells a job function how the chunk it received is being run.
type ExecutionContext struct {
	// Parallel is true when the chunk runs on a pool worker.
	Parallel bool
	// Worker is the pool worker index, or -1 on the calling goroutine.
	Worker int
	// Offset is the row of the chunk's first entity within its archetype.
	Offset int
}

// RunnerStats holds cumulative counters for a JobRunner.
type RunnerStats struct {
	Runs             int64
	ParallelTasks    int64
	SequentialChunks int64
	TotalTime        time.Duration
}

// RunnerOption configures a JobRunner.
type RunnerOption func(r *JobRunner)

// WithRunnerLogger sets the logger used for worker lifecycle messages.
func WithRunnerLogger(logger zerolog.Logger) RunnerOption {
	return func(r *JobRunner) {
		r.logger = logger
	}
}

// JobRunner is a fixed pool of worker goroutines that runs query chunks in
// parallel. A runner is created once and reused for every job.
type JobRunner struct {
	workers int
	tasks   chan func(worker int)
	done    sync.WaitGroup
	closed  sync.Once
	logger  zerolog.Logger

	mu     sync.Mutex
	cond   *sync.Cond
	active []*jobAccess

	runs             atomic.Int64
	parallelTasks    atomic.Int64
	sequentialChunks atomic.Int64
	totalTime        atomic.Int64
}

// jobAccess is the component access of one running job.
type jobAccess struct {
	reads  ComponentSet
	writes ComponentSet
}

func (a *jobAccess) conflicts(other *jobAccess) bool {
	return a.writes.HasAny(other.writes) || a.writes.HasAny(other.reads) || a.reads.HasAny(other.writes)
}

// NewJobRunner starts a pool with the given number of workers. A count of
// zero or less uses GOMAXPROCS.
func NewJobRunner(workers int, opts ...RunnerOption) *JobRunner {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	r := &JobRunner{
		workers: workers,
		tasks:   make(chan func(int), workers*4),
		logger:  zerolog.Nop(),
	}
	r.cond = sync.NewCond(&r.mu)
	for _, opt := range opts {
		opt(r)
	}

	r.done.Add(workers)
	for worker := 0; worker < workers; worker++ {
		go r.work(worker)
	}
	r.logger.Debug().Int("workers", workers).Msg("job runner started")
	return r
}

func (r *JobRunner) work(worker int) {
	defer r.done.Done()
	for task := range r.tasks {
		task(worker)
	}
}

// Workers returns the size of the pool.
func (r *JobRunner) Workers() int {
	return r.workers
}

// Close stops the workers once pending tasks finish. Jobs must not be run
// after Close.
func (r *JobRunner) Close() {
	r.closed.Do(func() {
		close(r.tasks)
		r.done.Wait()
		r.logger.Debug().Int("workers", r.workers).Msg("job runner stopped")
	})
}

func (r *JobRunner) Stats() RunnerStats {
	return RunnerStats{
		Runs:             r.runs.Load(),
		ParallelTasks:    r.parallelTasks.Load(),
		SequentialChunks: r.sequentialChunks.Load(),
		TotalTime:        time.Duration(r.totalTime.Load()),
	}
}

// acquire blocks until no running job writes what this job touches or
// touches what this job writes.
func (r *JobRunner) acquire(reads, writes ComponentSet) *jobAccess {
	access := &jobAccess{reads: reads, writes: writes}
	r.mu.Lock()
	defer r.mu.Unlock()
	for r.conflicting(access) {
		r.cond.Wait()
	}
	r.active = append(r.active, access)
	return access
}

func (r *JobRunner) conflicting(access *jobAccess) bool {
	for _, other := range r.active {
		if access.conflicts(other) {
			return true
		}
	}
	return false
}

func (r *JobRunner) release(access *jobAccess) {
	r.mu.Lock()
	for idx, other := range r.active {
		if other == access {
			r.active = append(r.active[:idx], r.active[idx+1:]...)
			break
		}
	}
	r.mu.Unlock()
	r.cond.Broadcast()
}

// ChunkSource is implemented by the queries a ForEachJob can run over.
type ChunkSource[C any] interface {
	Access() (reads, writes ComponentSet)
	matching() []*Archetype
	chunkAt(a *Archetype, start, end int) C
}

// ForEachJob runs a function over every chunk of a query.
type ForEachJob[C any] struct {
	// MinParallelChunkLength is the smallest archetype population that is
	// split across workers. Smaller archetypes run on the calling goroutine.
	MinParallelChunkLength int

	runner *JobRunner
	source ChunkSource[C]
	fn     func(ExecutionContext, C)
}

// NewForEachJob creates a job over source. The function may be called
// concurrently with disjoint chunks of the same archetype and must
// synchronise any state it shares between calls.
func NewForEachJob[C any](runner *JobRunner, source ChunkSource[C], fn func(ExecutionContext, C), minParallelChunkLength int) *ForEachJob[C] {
	return &ForEachJob[C]{
		MinParallelChunkLength: minParallelChunkLength,
		runner:                 runner,
		source:                 source,
		fn:                     fn,
	}
}

// RunParallel processes every matched archetype and returns once all chunks
// are done. A panic in the job function is re-raised on the caller after the
// remaining chunks finish.
func (j *ForEachJob[C]) RunParallel() {
	start := time.Now()
	r := j.runner

	access := r.acquire(j.source.Access())
	defer r.release(access)

	var pending sync.WaitGroup
	var panicked atomic.Pointer[any]
	defer pending.Wait()

	minLength := max(j.MinParallelChunkLength, 1)
	for _, a := range j.source.matching() {
		n := a.EntityCount()
		if n == 0 {
			continue
		}
		if n < minLength {
			j.fn(ExecutionContext{Worker: -1}, j.source.chunkAt(a, 0, n))
			r.sequentialChunks.Add(1)
			continue
		}

		parts := min(r.workers, n)
		size := (n + parts - 1) / parts
		for from := 0; from < n; from += size {
			to := min(from+size, n)
			chunk := j.source.chunkAt(a, from, to)
			offset := from
			pending.Add(1)
			r.parallelTasks.Add(1)
			r.tasks <- func(worker int) {
				defer pending.Done()
				defer func() {
					if p := recover(); p != nil {
						panicked.CompareAndSwap(nil, &p)
					}
				}()
				j.fn(ExecutionContext{Parallel: true, Worker: worker, Offset: offset}, chunk)
			}
		}
	}
	pending.Wait()

	r.runs.Add(1)
	r.totalTime.Add(int64(time.Since(start)))
	statsd.EmitJobStat(start, "for_each")

	if p := panicked.Load(); p != nil {
		panic(*p)
	}
}

// Run processes every chunk on the calling goroutine.
func (j *ForEachJob[C]) Run() {
	for _, a := range j.source.matching() {
		if n := a.EntityCount(); n > 0 {
			j.fn(ExecutionContext{Worker: -1}, j.source.chunkAt(a, 0, n))
		}
	}
}
