// Package config loads lexso settings from an optional YAML file and the
// environment.
package config

import "time"

// Config is the root application configuration.
type Config struct {
	Data      DataConfig      `yaml:"data"`
	Fetch     FetchConfig     `yaml:"fetch"`
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Reconcile ReconcileConfig `yaml:"reconcile"`
	Log       LogConfig       `yaml:"log"`
}

// DataConfig holds file locations.
type DataConfig struct {
	Dir    string `yaml:"dir"     env:"LEXSO_DATA_DIR" env-default:"data"`
	DBPath string `yaml:"db_path" env:"LEXSO_DB_PATH"  env-default:"data/lexso.db"`
}

// HTMLDir returns the directory of the page archive.
func (d DataConfig) HTMLDir() string {
	return d.Dir + "/html"
}

// FetchConfig holds scraper settings.
type FetchConfig struct {
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"LEXSO_FETCH_RPS"         env-default:"2"`
	Burst             int           `yaml:"burst"               env:"LEXSO_FETCH_BURST"       env-default:"1"`
	Concurrency       int           `yaml:"concurrency"         env:"LEXSO_FETCH_CONCURRENCY" env-default:"5"`
	Timeout           time.Duration `yaml:"timeout"             env:"LEXSO_FETCH_TIMEOUT"     env-default:"10s"`
	UserAgent         string        `yaml:"user_agent"          env:"LEXSO_FETCH_USER_AGENT"`
}

// PipelineConfig holds extraction settings.
type PipelineConfig struct {
	// Version tags the output files so runs of different extractors do not mix.
	Version       string  `yaml:"version"        env:"LEXSO_PIPELINE_VERSION"   env-default:"1"`
	BloomCapacity uint    `yaml:"bloom_capacity" env:"LEXSO_BLOOM_CAPACITY"     env-default:"2000000"`
	BloomFPRate   float64 `yaml:"bloom_fp_rate"  env:"LEXSO_BLOOM_FP_RATE"      env-default:"0.0001"`
	CrossDocument bool    `yaml:"cross_document" env:"LEXSO_PIPELINE_CROSS_DOC" env-default:"false"`
}

// ReconcileConfig holds matcher settings.
type ReconcileConfig struct {
	Property      string        `yaml:"property"       env:"LEXSO_PROPERTY"       env-default:"P9837"`
	SourceItemID  string        `yaml:"source_item_id" env:"LEXSO_SOURCE_ITEM_ID" env-default:"Q108312794"`
	AddNoValue    bool          `yaml:"add_no_value"   env:"LEXSO_ADD_NO_VALUE"   env-default:"false"`
	NotFoundPause time.Duration `yaml:"not_found_pause" env:"LEXSO_NOT_FOUND_PAUSE" env-default:"3s"`
	ProgressEvery int           `yaml:"progress_every" env:"LEXSO_PROGRESS_EVERY" env-default:"1000"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LEXSO_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LEXSO_LOG_FORMAT" env-default:"text"`
}
