package stats

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/loop"
)

// Report describes a batch of sessions played back to back.
type Report struct {
	// Configuration
	Sessions int
	MaxTicks int64
	Seed     uint64

	// Results
	TotalTime     time.Duration
	StepTime      Durations
	Totals        Snapshot
	Summaries     []loop.Summary
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

// Durations aggregates timing samples.
type Durations struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

// Finalize computes Min, Max and Avg from the samples.
func (d *Durations) Finalize() {
	if len(d.Samples) == 0 {
		return
	}

	var total time.Duration
	d.Min = d.Samples[0]
	d.Max = d.Samples[0]

	for _, sample := range d.Samples {
		if sample < d.Min {
			d.Min = sample
		}
		if sample > d.Max {
			d.Max = sample
		}
		total += sample
	}
	d.Avg = total / time.Duration(len(d.Samples))
}

// BestScore returns the highest session score, or zero without sessions.
func (r *Report) BestScore() int {
	best := 0
	for _, s := range r.Summaries {
		best = max(best, s.Score)
	}
	return best
}

// MeanScore returns the average session score.
func (r *Report) MeanScore() float64 {
	if len(r.Summaries) == 0 {
		return 0
	}

	total := 0
	for _, s := range r.Summaries {
		total += s.Score
	}
	return float64(total) / float64(len(r.Summaries))
}

const reportTemplate = `
# Blockfall Session Report

## Configuration
- **Sessions:** {{.Sessions}}
- **Tick Cap:** {{if .MaxTicks}}{{.MaxTicks}}{{else}}none{{end}}
- **Seed:** {{if .Seed}}{{.Seed}}{{else}}random{{end}}

## Results
- **Total Time:** {{.TotalTime}}
- **Best Score:** {{.BestScore}}
- **Mean Score:** {{printf "%.1f" .MeanScore}}
- **Ticks:** {{.Totals.Ticks}} ({{.Totals.PausedTicks}} paused)
- **Locks:** {{.Totals.Locks}}
- **Lines:** {{.Totals.Lines}}
- **Game Overs:** {{.Totals.GameOvers}}
- **Step Time:**
  - **Avg:** {{.StepTime.Avg}}
  - **Min:** {{.StepTime.Min}}
  - **Max:** {{.StepTime.Max}}

## Pieces
{{range .Totals.Pieces}}- {{.Kind}}: {{.Count}}
{{else}}- none
{{end}}
## Clears
{{range .Totals.Clears}}- {{.Size}} {{if eq .Size 1}}line{{else}}lines{{end}}: {{.Count}}
{{else}}- none
{{end}}
## Sessions
{{range .Summaries}}- {{.Session}}: score {{.Score}}, lines {{.Lines}}, ticks {{.Ticks}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
- Total GC Pause: {{.MemStatsEnd.PauseTotalNs | ns}}
`

var reportFuncs = template.FuncMap{
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

var reportTmpl = template.Must(template.New("report").Funcs(reportFuncs).Parse(reportTemplate))

// Generate writes the report as markdown to w.
func (r *Report) Generate(w io.Writer) error {
	return reportTmpl.Execute(w, r)
}
