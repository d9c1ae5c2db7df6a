package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/lexso/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lexso.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validYAML = `
data:
  dir: "/srv/lexso"
  db_path: "/srv/lexso/catalog.db"

fetch:
  requests_per_second: 0.5
  concurrency: 3
  timeout: "20s"

pipeline:
  version: "2024b"
  cross_document: true

reconcile:
  add_no_value: true
  not_found_pause: "1s"

log:
  level: "debug"
  format: "json"
`

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, "data/html", cfg.Data.HTMLDir())
	assert.Equal(t, "P9837", cfg.Reconcile.Property)
	assert.Equal(t, "Q108312794", cfg.Reconcile.SourceItemID)
	assert.Equal(t, 3*time.Second, cfg.Reconcile.NotFoundPause)
	assert.Equal(t, 1000, cfg.Reconcile.ProgressEvery)
	assert.False(t, cfg.Reconcile.AddNoValue)
	assert.Equal(t, 5, cfg.Fetch.Concurrency)
	assert.Equal(t, 1, cfg.Fetch.Burst)
	assert.Equal(t, 10*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, "1", cfg.Pipeline.Version)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_ValidYAML(t *testing.T) {
	cfg, err := config.Load(writeYAML(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "/srv/lexso", cfg.Data.Dir)
	assert.Equal(t, "/srv/lexso/catalog.db", cfg.Data.DBPath)
	assert.Equal(t, 0.5, cfg.Fetch.RequestsPerSecond)
	assert.Equal(t, 3, cfg.Fetch.Concurrency)
	assert.Equal(t, 20*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, "2024b", cfg.Pipeline.Version)
	assert.True(t, cfg.Pipeline.CrossDocument)
	assert.True(t, cfg.Reconcile.AddNoValue)
	assert.Equal(t, time.Second, cfg.Reconcile.NotFoundPause)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	path := writeYAML(t, validYAML)
	t.Setenv("LEXSO_PIPELINE_VERSION", "2025a")
	t.Setenv("LEXSO_PROPERTY", "P9999")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "2025a", cfg.Pipeline.Version)
	assert.Equal(t, "P9999", cfg.Reconcile.Property)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "zero concurrency", env: map[string]string{"LEXSO_FETCH_CONCURRENCY": "0"}, want: "concurrency"},
		{name: "negative burst", env: map[string]string{"LEXSO_FETCH_BURST": "-2"}, want: "burst"},
		{name: "negative rate", env: map[string]string{"LEXSO_FETCH_RPS": "-1"}, want: "requests_per_second"},
		{name: "false positive rate of one", env: map[string]string{"LEXSO_BLOOM_FP_RATE": "1"}, want: "bloom_fp_rate"},
		{name: "negative pause", env: map[string]string{"LEXSO_NOT_FOUND_PAUSE": "-1s"}, want: "not_found_pause"},
		{name: "unknown log level", env: map[string]string{"LEXSO_LOG_LEVEL": "verbose"}, want: "level"},
		{name: "unknown log format", env: map[string]string{"LEXSO_LOG_FORMAT": "xml"}, want: "format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load("")

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
