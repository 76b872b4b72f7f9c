package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/slots/slot"
)

type Report struct {
	// Configuration
	Strategy string
	Duration time.Duration
	Elements int
	AddRatio float64
	Seed     int64

	// Results
	TotalSteps     int64
	Adds           int64
	Removes        int64
	Checks         int64
	TotalTime      time.Duration
	StepTime       Stats
	Final          slot.Stats
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

// Finalize derives Min, Max and Avg from the collected samples.
func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	for _, sample := range s.Samples {
		total += sample
	}
	s.Min = slices.Min(s.Samples)
	s.Max = slices.Max(s.Samples)
	s.Avg = total / time.Duration(len(s.Samples))
}

func mebibytes(v uint64) string {
	return fmt.Sprintf("%.2f", float64(v)/1024/1024)
}

// mebibytesDelta formats end-start, which is negative when the heap shrank.
func mebibytesDelta(end, start uint64) string {
	return fmt.Sprintf("%+.2f", (float64(end)-float64(start))/1024/1024)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Slot Container Stress Report

## Configuration
- **Strategy:** {{.Strategy}}
- **Run Duration:** {{.Duration}}
- **Initial Elements:** {{.Elements}}
- **Add Ratio:** {{printf "%.2f" .AddRatio}}
- **Seed:** {{.Seed}}

## Results
- **Total Steps:** {{.TotalSteps}} ({{.Adds}} adds, {{.Removes}} removes)
- **Invariant Checks:** {{.Checks}}
- **Total Test Time:** {{.TotalTime}}
- **Step Time (per step, {{len .StepTime.Samples}} batches):**
  - **Avg:** {{.StepTime.Avg}}
  - **Min:** {{.StepTime.Min}}
  - **Max:** {{.StepTime.Max}}

## Final Occupancy
- Occupied:   {{.Final.Len}}
- Extent:     {{.Final.Extent}} ({{.Final.Vacant}} vacant)
- Free ids:   {{.Final.Free}} ({{.Final.StaleFree}} stale)

## Memory Usage (MiB)
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end) -> delta: {{mbdelta .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end)
- Sys Memory:     {{mb .MemStatsStart.Sys}} (start) -> {{mb .MemStatsEnd.Sys}} (end)
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{gcdelta .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

	fm := template.FuncMap{
		"mb":      mebibytes,
		"mbdelta": mebibytesDelta,
		"gcdelta": func(end, start uint32) uint32 {
			return end - start
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
