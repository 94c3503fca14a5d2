package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Backend kinds selectable via ZEIT_BACKEND.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds the environment-driven settings of the tool.
type Config struct {
	DataDir  string
	Backend  string
	DBPath   string
	Timezone *time.Location
	LogLevel string
}

// Load reads configuration from the environment, with a best-effort .env
// load first. Defaults place all data under ~/.zeiterfassung and use the
// file backend in the host's local timezone.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dataDir := getEnv("ZEIT_DATA_DIR", "")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".zeiterfassung")
	}

	backend := getEnv("ZEIT_BACKEND", BackendFile)
	if backend != BackendFile && backend != BackendSQLite {
		return nil, fmt.Errorf("invalid ZEIT_BACKEND %q (expected %q or %q)",
			backend, BackendFile, BackendSQLite)
	}

	loc := time.Local
	if tz := getEnv("ZEIT_TZ", ""); tz != "" {
		var err error
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid ZEIT_TZ %q: %w", tz, err)
		}
	}

	return &Config{
		DataDir:  dataDir,
		Backend:  backend,
		DBPath:   getEnv("ZEIT_DB_PATH", filepath.Join(dataDir, "zeiterfassung.db")),
		Timezone: loc,
		LogLevel: getEnv("ZEIT_LOG_LEVEL", "warn"),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
