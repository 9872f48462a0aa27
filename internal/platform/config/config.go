package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvDataDir   = "SABIBI_DATA_DIR"
	EnvStore     = "SABIBI_STORE"
	EnvLogLevel  = "SABIBI_LOG_LEVEL"
	EnvLogFormat = "SABIBI_LOG_FORMAT"

	appDirName = "sabibi-timer"
)

// Store backends for the completion collection.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

type Config struct {
	DataDir     string
	Store       string
	StorePath   string
	DBPath      string
	PresetsPath string
	LogPath     string
	LogLevel    slog.Level
	LogFormat   string
}

// Options carries flag values. Empty fields fall back to the environment,
// then to defaults.
type Options struct {
	DataDir   string
	Store     string
	LogLevel  string
	LogFormat string
}

func New(opts Options) (Config, error) {
	dataDir := firstNonEmpty(opts.DataDir, os.Getenv(EnvDataDir))
	if dataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve user config dir: %w", err)
		}
		dataDir = filepath.Join(base, appDirName)
	}

	store := strings.ToLower(firstNonEmpty(opts.Store, os.Getenv(EnvStore), StoreFile))
	switch store {
	case StoreFile, StoreSQLite, StoreMemory:
	default:
		return Config{}, fmt.Errorf("unsupported store backend %q (file|sqlite|memory)", store)
	}

	level, err := ParseLevel(firstNonEmpty(opts.LogLevel, os.Getenv(EnvLogLevel), "info"))
	if err != nil {
		return Config{}, err
	}

	format := strings.ToLower(firstNonEmpty(opts.LogFormat, os.Getenv(EnvLogFormat), LogFormatText))
	if format != LogFormatText && format != LogFormatJSON {
		return Config{}, fmt.Errorf("unsupported log format %q (text|json)", format)
	}

	return Config{
		DataDir:     dataDir,
		Store:       store,
		StorePath:   filepath.Join(dataDir, "store"),
		DBPath:      filepath.Join(dataDir, "sabibi.db"),
		PresetsPath: filepath.Join(dataDir, "presets.yaml"),
		LogPath:     filepath.Join(dataDir, "sabibi.log"),
		LogLevel:    level,
		LogFormat:   format,
	}, nil
}

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment. Variables already set are left untouched and missing files
// are skipped.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load env file %s: %w", path, err)
		}
	}
	return nil
}

func ParseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unsupported log level %q (debug|info|warn|error)", raw)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
