package main

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/profile"
	"github.com/plus3/archstore/ecs"
	"github.com/plus3/archstore/internal/statsd"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := realMain(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("ecs-stress failed")
	}
}

// realMain owns every deferred cleanup so profiles are flushed and the statsd
// client is closed before main exits.
func realMain(args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return eris.Wrap(err, "invalid configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return eris.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	switch cfg.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	if cfg.StatsdAddress != "" {
		if err := statsd.Init(cfg.StatsdAddress, []string{"app:ecs-stress"}); err != nil {
			return eris.Wrap(err, "failed to initialise statsd")
		}
		defer func() {
			if err := statsd.Reset(); err != nil {
				logger.Warn().Err(err).Msg("failed to close statsd client")
			}
		}()
	}

	report, err := run(context.Background(), cfg, logger)
	if err != nil {
		return eris.Wrap(err, "stress test failed")
	}

	if cfg.Format == "json" {
		err = report.WriteJSON(os.Stdout)
	} else {
		err = report.Generate(os.Stdout)
	}
	return eris.Wrap(err, "failed to generate report")
}

// run populates a storage, runs the systems until cfg.Duration elapses and
// returns the collected report.
func run(ctx context.Context, cfg Config, logger zerolog.Logger) (*Report, error) {
	runID := uuid.NewString()
	logger = logger.With().Str("run_id", runID).Logger()
	logger.Info().Msg("starting ECS stress test")

	storage := ecs.NewStorage(ecs.WithLogger(logger), ecs.WithInitialCapacity(cfg.Entities))
	jobs := ecs.NewJobRunner(cfg.Workers, ecs.WithRunnerLogger(logger))
	defer jobs.Close()

	movement := &MovementSystem{MinSize: cfg.MinChunk}
	reaper := &ReaperSystem{}
	scheduler := ecs.NewScheduler(storage, ecs.WithJobRunner(jobs), ecs.WithSchedulerLogger(logger))
	scheduler.Register(movement)
	scheduler.Register(&LifetimeSystem{})
	scheduler.Register(&WanderSystem{})
	scheduler.Register(reaper)

	logger.Info().Int("entities", cfg.Entities).Msg("populating storage")
	spawner := newSpawner(storage)
	for i := 0; i < cfg.Entities; i++ {
		spawnRandom(spawner)
	}
	storage.LogArchetypes(zerolog.DebugLevel)

	report := &Report{
		RunID:          runID,
		Duration:       cfg.Duration,
		Entities:       cfg.Entities,
		Workers:        jobs.Workers(),
		MinChunk:       cfg.MinChunk,
		Systems:        scheduler.GetStats().SystemCount,
		GCPauseMetrics: cfg.GCPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info().Dur("duration", cfg.Duration).Msg("running simulation")
	ctx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()

	startTime := time.Now()
	lastFrameTime := startTime

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			if err := scheduler.Once(deltaTime.Seconds()); err != nil {
				return nil, err
			}
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.EntitiesMoved = movement.moved.Load()
	report.EntitiesReaped = reaper.reaped
	report.Jobs = jobs.Stats()
	report.SystemStats = scheduler.GetStats().Systems
	report.Storage = storage.CollectStats()

	logger.Info().Int64("updates", report.TotalUpdates).Msg("simulation finished")
	return report, nil
}
