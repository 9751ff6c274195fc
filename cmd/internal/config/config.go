package config

import (
	"consultas/cmd/internal/service"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverMemory = "memory"
)

type Config struct {
	ListenAddr    string
	StorageDriver string
	DatabasePath  string
	BlobDir       string
	BlobKey       string
	StrictLoad    bool
	LogLevel      log.Lvl
}

// Load reads the given .env files (".env" when none is given) and then the
// process environment. Missing .env files are skipped; variables already
// set in the environment win over the files.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	cfg := &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", ":6060"),
		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", DriverSQLite)),
		DatabasePath:  getEnv("DATABASE_PATH", "./database.db"),
		BlobDir:       getEnv("BLOB_DIR", "./data"),
		BlobKey:       getEnv("BLOB_KEY", service.DefaultBlobKey),
	}

	switch cfg.StorageDriver {
	case DriverSQLite, DriverFile, DriverMemory:
	default:
		return nil, fmt.Errorf("invalid STORAGE_DRIVER %q: must be one of sqlite, file, memory", cfg.StorageDriver)
	}

	strict, err := strconv.ParseBool(getEnv("STRICT_LOAD", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid STRICT_LOAD: %w", err)
	}
	cfg.StrictLoad = strict

	lvl, err := parseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = lvl

	return cfg, nil
}

func parseLevel(s string) (log.Lvl, error) {
	switch strings.ToLower(s) {
	case "debug":
		return log.DEBUG, nil
	case "info":
		return log.INFO, nil
	case "warn":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	}
	return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}
