package main

import (
	"time"

	"github.com/pkg/errors"
)

type Config struct {
	Strategy       string  `usage:"container strategy: dense, sparse or locked"`
	Duration       string  `usage:"total run time, e.g. 10s"`
	Elements       int     `usage:"initial number of elements"`
	AddRatio       float64 `usage:"probability that a step adds instead of removes"`
	CheckEvery     int     `usage:"verify container invariants every N steps"`
	Seed           int64   `usage:"random seed, 0 picks one from the clock"`
	GCPauseMetrics bool    `usage:"include GC pause durations in the report"`
	Verbose        bool    `usage:"enable debug logging"`
}

func Default() Config {
	return Config{
		Strategy:   "dense",
		Duration:   "10s",
		Elements:   10000,
		AddRatio:   0.5,
		CheckEvery: 10000,
	}
}

func (c Config) RunFor() (time.Duration, error) {
	d, err := time.ParseDuration(c.Duration)
	if err != nil {
		return 0, errors.Wrapf(err, "parse duration %q", c.Duration)
	}
	return d, nil
}

func (c Config) Validate() error {
	switch c.Strategy {
	case "dense", "sparse", "locked":
	default:
		return errors.Errorf("unknown strategy %q", c.Strategy)
	}
	if c.Elements < 0 {
		return errors.Errorf("elements must not be negative, got %d", c.Elements)
	}
	if c.AddRatio < 0 || c.AddRatio > 1 {
		return errors.Errorf("add ratio must be within [0, 1], got %v", c.AddRatio)
	}
	if c.CheckEvery <= 0 {
		return errors.Errorf("check interval must be positive, got %d", c.CheckEvery)
	}
	_, err := c.RunFor()
	return err
}
