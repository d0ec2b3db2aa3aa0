package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" warn "))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestNewRenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{Level: "info"})
	l.Info("decode failed", "error", errors.New("boom"))
	assert.Contains(t, buf.String(), "err=boom")
	assert.NotContains(t, buf.String(), "error=")
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{Level: "warn"})
	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, Options{JSON: true}).Info("hi", "mode", "URI")
	assert.Contains(t, buf.String(), `"mode":"URI"`)
}

func TestOpenFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uricodec.log")
	l, closer, err := OpenFile(path, Options{})
	require.NoError(t, err)
	l.Info("first")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
}

func TestOpenFileError(t *testing.T) {
	_, _, err := OpenFile(filepath.Join(t.TempDir(), "missing", "x.log"), Options{})
	assert.Error(t, err)
}
