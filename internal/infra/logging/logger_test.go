package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WritesEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskdeck.log")
	l := New(path, slog.LevelInfo)
	defer l.Close()

	l.Info("task", "created #1")
	l.Error("store", "write failed")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO] [task] created #1")
	assert.Contains(t, string(content), "[ERROR] [store] write failed")
}

func TestLogger_LevelFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskdeck.log")
	l := New(path, slog.LevelWarn)
	defer l.Close()

	l.Debug("task", "noise")
	l.Info("task", "noise")
	l.Warn("task", "kept")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "noise")
	assert.Contains(t, string(content), "kept")
}

func TestLogger_Disabled(t *testing.T) {
	l := New("", slog.LevelDebug)
	l.Info("task", "dropped")
	assert.NoError(t, l.Close())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}
