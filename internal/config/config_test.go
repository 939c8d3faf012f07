package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE", "DATABASE_URL", "LEVEL_DIR", "MAZE_SEED", "TICK_RATE"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.LogFile)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.LevelDir)
	assert.Zero(t, cfg.MazeSeed)
	assert.Equal(t, 60, cfg.TickRate)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("DATABASE_URL", "postgres://localhost/maze")
	t.Setenv("LEVEL_DIR", "/srv/levels")
	t.Setenv("MAZE_SEED", "42")
	t.Setenv("TICK_RATE", "30")

	cfg := Load()
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "postgres://localhost/maze", cfg.DatabaseURL)
	assert.Equal(t, "/srv/levels", cfg.LevelDir)
	assert.Equal(t, int64(42), cfg.MazeSeed)
	assert.Equal(t, 30, cfg.TickRate)
}

func TestGetEnvInt_FallsBack(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"unset", "", 7},
		{"not a number", "fast", 7},
		{"negative", "-3", 7},
		{"valid", "12", 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MAZE_TEST_INT", tt.value)
			assert.Equal(t, tt.want, getEnvInt("MAZE_TEST_INT", 7))
		})
	}
}
