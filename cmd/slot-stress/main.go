package main

import (
	"context"
	"encoding/json"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/fulldump/goconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Steps are timed in batches; a single step is too short to measure on its own.
const batchSize = 1024

func main() {
	c := Default()
	goconfig.Read(&c)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if c.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := c.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	logConfig(log.Logger, c)

	report, err := run(context.Background(), c)
	if err != nil {
		log.Fatal().Err(err).Msg("stress test failed")
	}

	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("failed to generate report")
	}
	log.Info().Msg("stress test complete")
}

func logConfig(logger zerolog.Logger, c Config) {
	cfg, err := json.Marshal(c)
	if err != nil {
		logger.Debug().Err(err).Msg("cannot encode configuration")
		return
	}
	logger.Debug().RawJSON("config", cfg).Msg("configuration")
}

func run(ctx context.Context, c Config) (*Report, error) {
	duration, err := c.RunFor()
	if err != nil {
		return nil, err
	}

	container := newContainer(c.Strategy)
	w := NewWorkload(container, rand.New(rand.NewSource(c.Seed)), c.AddRatio)

	log.Info().Str("strategy", c.Strategy).Int("elements", c.Elements).Msg("populating container")
	w.Populate(c.Elements)
	if err := w.Check(); err != nil {
		return nil, err
	}

	report := &Report{
		Strategy:       c.Strategy,
		Duration:       duration,
		Elements:       c.Elements,
		AddRatio:       c.AddRatio,
		Seed:           c.Seed,
		GCPauseMetrics: c.GCPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Info().Dur("duration", duration).Int64("seed", c.Seed).Msg("running workload")
	ctx, cancel := context.WithTimeout(ctx, duration)
	defer cancel()

	startTime := time.Now()
	var steps int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		batchStart := time.Now()
		for i := 0; i < batchSize; i++ {
			if err := w.Step(); err != nil {
				return nil, err
			}
			steps++

			if steps%int64(c.CheckEvery) == 0 {
				if err := w.Check(); err != nil {
					return nil, err
				}
				report.Checks++
				log.Debug().Int64("steps", steps).Int("live", w.Live()).Msg("invariants hold")
			}
		}
		report.StepTime.Samples = append(report.StepTime.Samples, time.Since(batchStart)/batchSize)
	}

	if err := w.Check(); err != nil {
		return nil, err
	}
	report.Checks++

	report.TotalTime = time.Since(startTime)
	report.TotalSteps = steps
	report.Adds = w.Adds
	report.Removes = w.Removes
	report.StepTime.Finalize()
	report.Final = container.Stats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info().Int64("steps", steps).Int("live", w.Live()).Msg("workload finished")
	return report, nil
}
