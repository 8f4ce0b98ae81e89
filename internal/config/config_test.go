package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spellbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, []string{"abilities.json", "passives.json"}, cfg.DefinitionFiles)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
data_dir: ./content
tick_rate: 60
slots: [FireballSpell, FlameDashSpell]
telemetry: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "./content", cfg.DataDir)
	assert.Equal(t, 60, cfg.TickRate)
	assert.Equal(t, []string{"FireballSpell", "FlameDashSpell"}, cfg.Slots)
	assert.True(t, cfg.Telemetry)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, []string{"abilities.json", "passives.json"}, cfg.DefinitionFiles, "untouched keys keep defaults")
}

func TestLoadRejectsInvalid(t *testing.T) {
	_, err := Load(writeConfig(t, "tick_rate: 0\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "tick_rate: [\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "definition_files: []\n"))
	assert.Error(t, err)
}

func TestTickInterval(t *testing.T) {
	cfg := Default()
	cfg.TickRate = 50
	assert.Equal(t, 20*time.Millisecond, cfg.TickInterval())
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Config{LogLevel: tt.in}.SlogLevel(), tt.in)
	}
}
