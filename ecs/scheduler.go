package ecs

import (
	"context"
	"reflect"
	"time"

	"github.com/plus3/archstore/internal/statsd"
	"github.com/rs/zerolog"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// systemTimings accumulates the durations of one registered system.
type systemTimings struct {
	name  string
	count int64
	min   time.Duration
	max   time.Duration
	total time.Duration
	last  time.Duration
}

func (t *systemTimings) record(d time.Duration) {
	if t.count == 0 || d < t.min {
		t.min = d
	}
	t.max = max(t.max, d)
	t.count++
	t.total += d
	t.last = d
}

func (t *systemTimings) snapshot() SystemStats {
	stats := SystemStats{
		Name:           t.name,
		ExecutionCount: t.count,
		MinDuration:    t.min,
		MaxDuration:    t.max,
		LastDuration:   t.last,
		TotalDuration:  t.total,
	}
	if t.count > 0 {
		stats.AvgDuration = t.total / time.Duration(t.count)
	}
	return stats
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(s *Scheduler)

// WithJobRunner makes runner available to systems through UpdateFrame.Jobs.
func WithJobRunner(runner *JobRunner) SchedulerOption {
	return func(s *Scheduler) {
		s.jobs = runner
	}
}

// WithSchedulerLogger sets the logger used to report failed command flushes.
func WithSchedulerLogger(logger zerolog.Logger) SchedulerOption {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// Scheduler runs registered systems in registration order and applies the
// commands they record after each pass.
type Scheduler struct {
	storage  *Storage
	jobs     *JobRunner
	logger   zerolog.Logger
	commands *Commands
	systems  []System
	timings  []*systemTimings
}

// NewScheduler creates a new scheduler for the given storage.
func NewScheduler(storage *Storage, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		storage:  storage,
		logger:   zerolog.Nop(),
		commands: NewCommands(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// storageBinder is implemented by the typed queries and Singleton accessors.
type storageBinder interface {
	Init(storage *Storage)
}

// Register adds a system. Exported struct fields of the system that have an
// Init(*Storage) method, such as QueryN and Singleton values, are bound to
// the scheduler's storage.
func (s *Scheduler) Register(system System) {
	s.bindFields(system)
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	s.timings = append(s.timings, &systemTimings{name: systemType.Name()})
}

func (s *Scheduler) bindFields(system System) {
	value := reflect.ValueOf(system)
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < value.NumField(); i++ {
		field := value.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}
		if binder, ok := field.Addr().Interface().(storageBinder); ok {
			binder.Init(s.storage)
		}
	}
}

// Once executes all registered systems once with the given delta time, then
// flushes the commands they recorded.
func (s *Scheduler) Once(dt float64) error {
	frame := &UpdateFrame{
		DeltaTime: dt,
		Commands:  s.commands,
		Storage:   s.storage,
		Jobs:      s.jobs,
	}

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.timings[i].record(time.Since(start))
		statsd.EmitSystemStat(start, s.timings[i].name)
	}

	return s.commands.Flush(s.storage)
}

// Run executes all systems repeatedly at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			if err := s.Once(dt); err != nil {
				s.logger.Warn().Err(err).Msg("failed to apply deferred commands")
			}
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.timings)),
	}
	for i, t := range s.timings {
		stats.Systems[i] = t.snapshot()
		stats.TotalExecutions += t.count
	}
	return stats
}
