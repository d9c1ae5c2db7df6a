package config

import (
	"fmt"
	"slices"
)

// Validate performs range checks on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir must not be empty")
	}
	if err := c.Fetch.validate(); err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	if err := c.Pipeline.validate(); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	if err := c.Reconcile.validate(); err != nil {
		return fmt.Errorf("reconcile: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

func (f *FetchConfig) validate() error {
	if f.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests_per_second must be > 0 (got %v)", f.RequestsPerSecond)
	}
	if f.Burst <= 0 {
		return fmt.Errorf("burst must be > 0 (got %d)", f.Burst)
	}
	if f.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be > 0 (got %d)", f.Concurrency)
	}
	if f.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", f.Timeout)
	}
	return nil
}

func (p *PipelineConfig) validate() error {
	if p.Version == "" {
		return fmt.Errorf("version must not be empty")
	}
	if p.BloomCapacity == 0 {
		return fmt.Errorf("bloom_capacity must be > 0")
	}
	if p.BloomFPRate <= 0 || p.BloomFPRate >= 1 {
		return fmt.Errorf("bloom_fp_rate must be in (0, 1) (got %v)", p.BloomFPRate)
	}
	return nil
}

func (r *ReconcileConfig) validate() error {
	if r.Property == "" {
		return fmt.Errorf("property must not be empty")
	}
	if r.NotFoundPause < 0 {
		return fmt.Errorf("not_found_pause must be >= 0 (got %s)", r.NotFoundPause)
	}
	if r.ProgressEvery <= 0 {
		return fmt.Errorf("progress_every must be > 0 (got %d)", r.ProgressEvery)
	}
	return nil
}

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"text", "json"}
)

func (l *LogConfig) validate() error {
	if !slices.Contains(validLevels, l.Level) {
		return fmt.Errorf("level must be one of %v (got %q)", validLevels, l.Level)
	}
	if !slices.Contains(validFormats, l.Format) {
		return fmt.Errorf("format must be one of %v (got %q)", validFormats, l.Format)
	}
	return nil
}
