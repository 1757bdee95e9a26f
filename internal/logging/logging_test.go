package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf, slog.LevelInfo)

	l.Debug("hidden")
	l.Info("shown", "k", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "k=1")
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(t.Context(), slog.LevelError))
	assert.NoError(t, l.Close())
}

func TestWithFileFansOut(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "wgolf.log")

	l, err := NewTextLogger(&buf, slog.LevelInfo).WithFile(path, slog.LevelDebug)
	require.NoError(t, err)

	l.WithWords("warm", "cold").LogSolve("found", 4, 4, nil)
	l.Debug("file only")
	require.NoError(t, l.Close())

	assert.Contains(t, buf.String(), "start=warm")
	assert.NotContains(t, buf.String(), "file only")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "ladder search completed", rec["msg"])
	assert.Equal(t, "warm", rec["start"])
	assert.Equal(t, "found", rec["state"])
	assert.EqualValues(t, 4, rec["steps"])
}

func TestWithFileError(t *testing.T) {
	_, err := NoopLogger().WithFile(filepath.Join(t.TempDir(), "missing", "x.log"), slog.LevelInfo)
	assert.Error(t, err)
}

func TestLogLoad(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf, slog.LevelInfo)

	l.LogLoad("/usr/share/dict/words", 12, 4, nil)
	l.LogLoad("/nope", 0, 4, errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "dictionary loaded")
	assert.Contains(t, out, "words=12")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "error=boom")
}
