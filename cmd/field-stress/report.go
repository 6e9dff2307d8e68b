package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfield/game"
)

type Report struct {
	// Configuration
	Duration       time.Duration
	Seed           uint64
	Rows           int
	Cols           int
	SpawnBuffer    int
	Restart        bool
	GCPauseMetrics bool

	// Results
	TotalUpdates int64
	TotalTime    time.Duration
	Games        int
	Pieces       int
	Lines        int
	BestLines    int
	Commands     map[game.Command]*Stats
	CommandList  []*Stats

	// Cells a change-driven renderer would have redrawn.
	CellsRedrawn int64
	MaxRedrawn   int
	AvgRedrawn   float64

	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

// record adds the totals of one finished (or interrupted) game.
func (r *Report) record(s game.Stats) {
	r.Pieces += s.Pieces
	r.Lines += s.Lines
	r.BestLines = max(r.BestLines, s.Lines)
}

func (r *Report) addRedraw(cells int) {
	r.CellsRedrawn += int64(cells)
	r.MaxRedrawn = max(r.MaxRedrawn, cells)
}

func (r *Report) Finalize() {
	if r.TotalUpdates > 0 {
		r.AvgRedrawn = float64(r.CellsRedrawn) / float64(r.TotalUpdates)
	}

	r.CommandList = r.CommandList[:0]
	for _, cmd := range game.Commands {
		stats := r.Commands[cmd]
		stats.Finalize()
		r.CommandList = append(r.CommandList, stats)
	}
}

type Stats struct {
	Name  string
	Count int64
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	total time.Duration
}

func (s *Stats) Add(d time.Duration) {
	if s.Count == 0 || d < s.Min {
		s.Min = d
	}
	if d > s.Max {
		s.Max = d
	}
	s.total += d
	s.Count++
}

func (s *Stats) Finalize() {
	if s.Count == 0 {
		return
	}
	s.Avg = s.total / time.Duration(s.Count)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Field Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Field:** {{.Rows}}x{{.Cols}} (spawn buffer {{.SpawnBuffer}})
- **Restart On Game Over:** {{.Restart}}

## Game Results
- **Games:** {{.Games}}
- **Pieces Placed:** {{.Pieces}}
- **Lines Cleared:** {{.Lines}}
- **Best Game (Lines):** {{.BestLines}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
{{range .CommandList}}- **{{.Name}}** ({{.Count}} calls): avg {{.Avg}}, min {{.Min}}, max {{.Max}}
{{end}}
## Redraw Load
- **Cells Redrawn:** {{.CellsRedrawn}}
- **Per Update:** avg {{printf "%.2f" .AvgRedrawn}}, max {{.MaxRedrawn}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
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
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
