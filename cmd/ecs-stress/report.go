package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/goccy/go-json"
	"github.com/plus3/archstore/ecs"
	"github.com/rotisserie/eris"
)

type Report struct {
	RunID string `json:"run_id"`

	// Configuration
	Duration time.Duration `json:"duration"`
	Entities int           `json:"entities"`
	Workers  int           `json:"workers"`
	MinChunk int           `json:"min_chunk"`
	Systems  int           `json:"systems"`

	// Results
	TotalUpdates   int64             `json:"total_updates"`
	TotalTime      time.Duration     `json:"total_time"`
	UpdateTime     Stats             `json:"update_time"`
	EntitiesMoved  int64             `json:"entities_moved"`
	EntitiesReaped int64             `json:"entities_reaped"`
	Jobs           ecs.RunnerStats   `json:"jobs"`
	SystemStats    []ecs.SystemStats `json:"system_stats"`
	Storage        ecs.StorageStats  `json:"storage"`
	GCPauseMetrics bool              `json:"-"`
	MemStatsStart  runtime.MemStats  `json:"-"`
	MemStatsEnd    runtime.MemStats  `json:"-"`
	Memory         map[string]int64  `json:"memory,omitempty"`
}

type Stats struct {
	Min     time.Duration   `json:"min"`
	Max     time.Duration   `json:"max"`
	Avg     time.Duration   `json:"avg"`
	Samples []time.Duration `json:"-"`
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// finalizeMemory fills the memory deltas used by the JSON report.
func (r *Report) finalizeMemory() {
	r.Memory = map[string]int64{
		"heap_alloc_delta":  int64(r.MemStatsEnd.HeapAlloc) - int64(r.MemStatsStart.HeapAlloc),
		"total_alloc_delta": int64(r.MemStatsEnd.TotalAlloc) - int64(r.MemStatsStart.TotalAlloc),
		"sys_delta":         int64(r.MemStatsEnd.Sys) - int64(r.MemStatsStart.Sys),
		"num_gc_delta":      int64(r.MemStatsEnd.NumGC) - int64(r.MemStatsStart.NumGC),
	}
	if r.GCPauseMetrics {
		r.Memory["gc_pause_total_ns"] = int64(r.MemStatsEnd.PauseTotalNs)
	}
}

// WriteJSON writes the report as a single JSON document.
func (r *Report) WriteJSON(w io.Writer) error {
	r.finalizeMemory()
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# ECS Stress Test Report

- **Run:** {{.RunID}}

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Initial Entities:** {{.Entities}}
- **Workers:** {{.Workers}}
- **Min Parallel Chunk:** {{.MinChunk}}
- **Systems:** {{.Systems}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
- **Entities Moved:** {{.EntitiesMoved}}
- **Entities Reaped:** {{.EntitiesReaped}}
- **Parallel Jobs:** {{.Jobs.Runs}} runs, {{.Jobs.ParallelTasks}} tasks, {{.Jobs.SequentialChunks}} sequential chunks

## Systems
{{range .SystemStats}}- {{.Name}}: {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## Storage
- **Archetypes:** {{.Storage.ArchetypeCount}}
- **Live Entities:** {{.Storage.TotalEntityCount}}
{{range .Storage.ArchetypeBreakdown}}  - {{.Signature}}: {{.EntityCount}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return eris.Wrap(err, "failed to parse report template")
	}

	return tmpl.Execute(w, r)
}
