package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/tetris/loop"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Cols     int
	Rows     int
	Hidden   int
	Previews int
	Seed     uint64
	Bag      bool

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats[time.Duration]
	Systems        []loop.SystemStats
	Games          int
	Pieces         int
	Lines          int
	Clears         [4]int
	Score          Stats[int]
	LinesPerGame   *Histogram
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type sample interface {
	~int | ~int64
}

type Stats[T sample] struct {
	Min     T
	Max     T
	Avg     T
	Samples []T
}

func (s *Stats[T]) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total T
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
	s.Avg = total / T(len(s.Samples))
}

// Histogram counts integer samples.
type Histogram struct {
	counts *intmap.Map[int, int]
	max    int
	total  int
}

// Bucket is one histogram row.
type Bucket struct {
	Value int
	Count int
}

func NewHistogram() *Histogram {
	return &Histogram{counts: intmap.New[int, int](32)}
}

// Add records a non-negative sample.
func (h *Histogram) Add(v int) {
	n, _ := h.counts.Get(v)
	h.counts.Put(v, n+1)
	h.max = max(h.max, v)
	h.total++
}

// Total returns the number of samples.
func (h *Histogram) Total() int { return h.total }

// Buckets returns the non-empty buckets in ascending order.
func (h *Histogram) Buckets() []Bucket {
	buckets := make([]Bucket, 0, h.counts.Len())
	for v := 0; v <= h.max; v++ {
		if n, ok := h.counts.Get(v); ok {
			buckets = append(buckets, Bucket{Value: v, Count: n})
		}
	}
	return buckets
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetris Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Board:** {{.Cols}}x{{.Rows}} (+{{.Hidden}} hidden), {{.Previews}} preview(s)
- **Randomizer:** {{if .Bag}}7-bag{{else}}uniform{{end}}, seed {{.Seed}}

## Gameplay Results
- **Games Finished:** {{.Games}}
- **Pieces Spawned:** {{.Pieces}}
- **Lines Cleared:** {{.Lines}} (singles {{index .Clears 0}}, doubles {{index .Clears 1}}, triples {{index .Clears 2}}, tetrises {{index .Clears 3}})
- **Score per Game:** avg {{.Score.Avg}}, min {{.Score.Min}}, max {{.Score.Max}}
{{if .LinesPerGame.Total}}
### Lines per Game
| Lines | Games |
|---|---|
{{range .LinesPerGame.Buckets}}| {{.Value}} | {{.Count}} |
{{end}}{{end}}
## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

| System | Executions | Avg | Max |
|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
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
		return err
	}

	return tmpl.Execute(w, r)
}
