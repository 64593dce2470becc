// Package config loads run defaults from an optional .env file.
// Flags parsed in main override anything loaded here.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Env var names
const (
	EnvMapFile  = "MAZECRAWL_MAP"
	EnvMoves    = "MAZECRAWL_MOVES"
	EnvSeed     = "MAZECRAWL_SEED"
	EnvRenderer = "MAZECRAWL_RENDERER"
)

// Config holds the run defaults.
type Config struct {
	MapFile  string // path to a maze map; empty selects the demo map
	Moves    int    // move budget per exploration
	Seed     int64  // random-walk seed; 0 selects a clock seed
	Renderer string // "tui", "ebiten" or "none"
}

// Load reads the .env file when one exists and returns the defaults.
// A missing file is not an error; malformed numeric values fall back
// silently to the defaults.
func Load() Config {
	// Ignore the error: a missing .env simply means all defaults.
	_ = godotenv.Load()

	return Config{
		MapFile:  getString(EnvMapFile, ""),
		Moves:    getInt(EnvMoves, 200),
		Seed:     getInt64(EnvSeed, 0),
		Renderer: getString(EnvRenderer, "tui"),
	}
}

func getString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getInt64(key string, fallback int64) int64 {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
