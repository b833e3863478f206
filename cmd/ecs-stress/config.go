package main

import (
	"flag"
	"time"

	"github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
)

// Config controls one stress run. Values come from STRESS_* environment
// variables first; command line flags override them.
type Config struct {
	Duration       time.Duration `config:"STRESS_DURATION"`
	Entities       int           `config:"STRESS_ENTITIES"`
	Workers        int           `config:"STRESS_WORKERS"`
	MinChunk       int           `config:"STRESS_MIN_CHUNK"`
	Format         string        `config:"STRESS_FORMAT"`
	Profile        string        `config:"STRESS_PROFILE"`
	LogLevel       string        `config:"STRESS_LOG_LEVEL"`
	StatsdAddress  string        `config:"STRESS_STATSD_ADDRESS"`
	GCPauseMetrics bool          `config:"STRESS_GC_PAUSE_METRICS"`
}

func defaultConfig() Config {
	return Config{
		Duration: 10 * time.Second,
		Entities: 10000,
		MinChunk: 256,
		Format:   "text",
		LogLevel: "info",
	}
}

func loadConfig(args []string) (Config, error) {
	cfg := defaultConfig()
	if err := config.FromEnv().To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "failed to read environment")
	}

	fs := flag.NewFlagSet("ecs-stress", flag.ContinueOnError)
	fs.DurationVar(&cfg.Duration, "duration", cfg.Duration, "The total duration the test should run for.")
	fs.IntVar(&cfg.Entities, "entities", cfg.Entities, "The initial number of entities to create.")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Job runner workers (0 uses GOMAXPROCS).")
	fs.IntVar(&cfg.MinChunk, "min-chunk", cfg.MinChunk, "Smallest archetype population split across workers.")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Report format: text or json.")
	fs.StringVar(&cfg.Profile, "profile", cfg.Profile, "Write a cpu or mem profile to the working directory.")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error).")
	fs.StringVar(&cfg.StatsdAddress, "statsd", cfg.StatsdAddress, "Send job and system timings to this statsd address.")
	fs.BoolVar(&cfg.GCPauseMetrics, "gc-pause-metrics", cfg.GCPauseMetrics, "Enable detailed GC pause metrics in the report.")
	if err := fs.Parse(args); err != nil {
		return cfg, eris.Wrap(err, "failed to parse flags")
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch {
	case c.Duration <= 0:
		return eris.New("duration must be positive")
	case c.Entities < 0:
		return eris.New("entities must not be negative")
	case c.Format != "text" && c.Format != "json":
		return eris.Errorf("unknown report format %q", c.Format)
	case c.Profile != "" && c.Profile != "cpu" && c.Profile != "mem":
		return eris.Errorf("unknown profile mode %q", c.Profile)
	}
	return nil
}
