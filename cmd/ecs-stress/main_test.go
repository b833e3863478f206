package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigEnvAndFlags(t *testing.T) {
	t.Setenv("STRESS_ENTITIES", "42")
	t.Setenv("STRESS_FORMAT", "json")
	t.Setenv("STRESS_DURATION", "3s")

	cfg, err := loadConfig([]string{"-entities", "7", "-workers", "2"})
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Entities, "flags override the environment")
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 3*time.Second, cfg.Duration)
}

func TestLoadConfigValidation(t *testing.T) {
	for _, args := range [][]string{
		{"-format", "xml"},
		{"-profile", "block"},
		{"-duration", "0s"},
		{"-entities", "-1"},
	} {
		_, err := loadConfig(args)
		assert.Error(t, err, "args %v", args)
	}
}

func TestStatsFinalize(t *testing.T) {
	stats := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	stats.Finalize()

	assert.Equal(t, time.Millisecond, stats.Min)
	assert.Equal(t, 3*time.Millisecond, stats.Max)
	assert.Equal(t, 2*time.Millisecond, stats.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestRunProducesReport(t *testing.T) {
	cfg := defaultConfig()
	cfg.Duration = 50 * time.Millisecond
	cfg.Entities = 500
	cfg.Workers = 2
	cfg.MinChunk = 64

	report, err := run(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Positive(t, report.TotalUpdates)
	assert.Equal(t, 2, report.Workers)
	assert.Equal(t, 4, report.Systems)
	assert.Equal(t, 500, report.Storage.TotalEntityCount, "reaped entities are replaced")
	assert.Positive(t, report.EntitiesMoved)

	var text bytes.Buffer
	require.NoError(t, report.Generate(&text))
	assert.Contains(t, text.String(), "# ECS Stress Test Report")
	assert.Contains(t, text.String(), "MovementSystem")

	var encoded bytes.Buffer
	require.NoError(t, report.WriteJSON(&encoded))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(encoded.Bytes(), &decoded))
	assert.Equal(t, report.RunID, decoded["run_id"])
	assert.Contains(t, decoded, "memory")
	assert.Contains(t, decoded, "system_stats")
}

func TestRealMainReturnsErrors(t *testing.T) {
	err := realMain([]string{"-format", "xml"})
	assert.ErrorContains(t, err, "invalid configuration")

	err = realMain([]string{"-log-level", "loud"})
	assert.ErrorContains(t, err, "invalid log level")
}
