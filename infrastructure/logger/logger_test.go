package logger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLines(t *testing.T, dir string) []map[string]any {
	t.Helper()

	files, err := filepath.Glob(filepath.Join(dir, "test_*.json"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	f, err := os.Open(files[0])
	require.NoError(t, err)
	defer f.Close()

	var lines []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		lines = append(lines, line)
	}
	return lines
}

func TestFileLogger_WritesJSONLines(t *testing.T) {
	dir := t.TempDir()

	log, err := NewFileLogger(Config{Dir: dir, Prefix: "test", Level: "info"})
	require.NoError(t, err)

	log.Info("hello")
	log.Debug("hidden at info level")
	log.Error("boom", errors.New("cause"))
	log.Close()

	lines := readLines(t, dir)
	require.Len(t, lines, 2)

	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "hello", lines[0]["message"])
	assert.Equal(t, "TestFileLogger_WritesJSONLines", lines[0]["function"])
	assert.Equal(t, "logger_test.go", lines[0]["file"])
	assert.NotEmpty(t, lines[0]["run_id"])
	assert.Equal(t, lines[0]["run_id"], lines[1]["run_id"])

	assert.Equal(t, "error", lines[1]["level"])
	assert.Equal(t, "cause", lines[1]["error"])
}

func TestFileLogger_ConsoleMirror(t *testing.T) {
	var console bytes.Buffer

	log, err := NewFileLogger(Config{Dir: t.TempDir(), Prefix: "test", Level: "debug", Console: &console})
	require.NoError(t, err)
	defer log.Close()

	log.Warning("careful")

	assert.Contains(t, console.String(), "careful")
	assert.NotContains(t, console.String(), "run_id")
}

func TestNopLogger(t *testing.T) {
	log := NewNopLogger()
	assert.NotPanics(t, func() {
		log.Info("x")
		log.Error("x", errors.New("y"))
		log.Close()
	})
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}
