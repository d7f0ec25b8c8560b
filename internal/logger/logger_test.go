package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name  string
		json  bool
		debug bool
		level zapcore.Level
	}{
		{name: "console info", level: zapcore.InfoLevel},
		{name: "json debug", json: true, debug: true, level: zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.json, tt.debug)
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.level))
			assert.False(t, log.Core().Enabled(tt.level-1))
		})
	}
}

func TestBuild_JSONOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")

	log, err := build(true, false, []string{path})
	require.NoError(t, err)
	log.Info("catalog loaded", zap.Int("careers", 20))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "catalog loaded", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.EqualValues(t, 20, entry["careers"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "caller")
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in       string
		limit    int
		expected string
	}{
		{"short", 10, "short"},
		{"  padded  ", 10, "padded"},
		{"exactly", 7, "exactly"},
		{"truncated text", 9, "truncated..."},
		{"anything", 0, ""},
		{"héllo wörld", 5, "héllo..."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Truncate(tt.in, tt.limit))
	}
}

func TestTerms(t *testing.T) {
	assert.Equal(t, "ai,python", Terms([]string{"ai", "python"}, 50))
	assert.Equal(t, "ai,py...", Terms([]string{"ai", "python"}, 5))
	assert.Equal(t, "", Terms(nil, 10))
}
