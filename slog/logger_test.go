package slog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	lexsoslog "github.com/fwojciec/lexso/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("writes json when requested", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := lexsoslog.NewLogger(&buf, "info", "json")

		logger.Info("processed", "documents", 3)

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "processed", record["msg"])
		assert.Equal(t, float64(3), record["documents"])
	})

	t.Run("writes text by default and honours level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := lexsoslog.NewLogger(&buf, "warn", "")

		logger.Info("hidden")
		logger.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "msg=shown")
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, lexsoslog.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, lexsoslog.ParseLevel(" warn "))
	assert.Equal(t, slog.LevelError, lexsoslog.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, lexsoslog.ParseLevel("bogus"))
	assert.True(t, lexsoslog.NewLogger(&bytes.Buffer{}, "debug", "text").Enabled(context.Background(), slog.LevelDebug))
}
