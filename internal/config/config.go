package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogFile     string // cmd/play only; empty discards logs
	DatabaseURL string // empty keeps scores in memory
	LevelDir    string // empty uses the embedded levels
	MazeSeed    int64
	TickRate    int
}

func Load() *Config {
	return &Config{
		Port:        getEnvInt("PORT", 8080),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		LogFile:     getEnv("LOG_FILE", ""),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		LevelDir:    getEnv("LEVEL_DIR", ""),
		MazeSeed:    int64(getEnvInt("MAZE_SEED", 0)),
		TickRate:    getEnvInt("TICK_RATE", 60),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i >= 0 {
			return i
		}
	}
	return fallback
}
