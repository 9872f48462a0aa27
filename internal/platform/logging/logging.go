package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Canonical field names shared by every package that logs.
const (
	KeyKey     = "key"
	KeyStore   = "store"
	KeyMinutes = "minutes"
	KeyDate    = "date"
	KeyPath    = "path"
	KeyPreset  = "preset"
	KeyRoute   = "route"
	KeyError   = "error"
)

func Key(k string) slog.Attr        { return slog.String(KeyKey, k) }
func Store(name string) slog.Attr   { return slog.String(KeyStore, name) }
func Minutes(m int) slog.Attr       { return slog.Int(KeyMinutes, m) }
func Date(d string) slog.Attr       { return slog.String(KeyDate, d) }
func Path(p string) slog.Attr       { return slog.String(KeyPath, p) }
func Preset(label string) slog.Attr { return slog.String(KeyPreset, label) }
func Route(r string) slog.Attr      { return slog.String(KeyRoute, r) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

// New builds a logger writing to w in the given format ("text" or "json").
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// OpenFile opens (appending) a log file, creating its directory. The caller
// closes the returned file.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
