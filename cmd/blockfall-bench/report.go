package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/game"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	Seed      uint64
	GameLimit int
	Step      time.Duration

	// Results
	TotalTime      time.Duration
	UpdateTime     Stats
	Session        game.Session
	Scheduler      *frame.SchedulerStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// FramesPerSecond is the simulated frame rate the host sustained.
func (r *Report) FramesPerSecond() float64 {
	if r.TotalTime <= 0 {
		return 0
	}
	return float64(len(r.UpdateTime.Samples)) / r.TotalTime.Seconds()
}

const reportTemplate = `
# Blockfall Benchmark Report

## Configuration
- **Max Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Game Limit:** {{if .GameLimit}}{{.GameLimit}}{{else}}none{{end}}
- **Frame Step:** {{.Step}}

## Session
- **Games:** {{.Session.Games}}
- **Pieces Locked:** {{.Session.Pieces}}
- **Rows Cleared:** {{.Session.Rows}}
- **Best Score:** {{.Session.BestScore}}
- **Simulated Play Time:** {{printf "%.1f" .Session.PlayTime}}s

## Performance Results
- **Total Frames:** {{.Session.Frames}}
- **Total Wall Time:** {{.TotalTime}}
- **Frames/s:** {{printf "%.0f" .FramesPerSecond}}
- **Frame Time:**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{with .Scheduler}}
## Systems
| System | Runs | Avg | Min | Max |
|---|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{end}}{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

func (r *Report) Generate(w io.Writer) error {
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
		return err
	}

	return tmpl.Execute(w, r)
}
