package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"sabibi/internal/platform/logging"
)

func TestHelperKeyNames(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		attr slog.Attr
		key  string
		val  string
	}{
		{"Key", logging.Key("k"), logging.KeyKey, "k"},
		{"Store", logging.Store("file"), logging.KeyStore, "file"},
		{"Minutes", logging.Minutes(25), logging.KeyMinutes, "25"},
		{"Date", logging.Date("2026-02-16"), logging.KeyDate, "2026-02-16"},
		{"Path", logging.Path("/tmp/x"), logging.KeyPath, "/tmp/x"},
		{"Preset", logging.Preset("Light"), logging.KeyPreset, "Light"},
		{"Route", logging.Route("/stats"), logging.KeyRoute, "/stats"},
		{"Error", logging.Error(errors.New("boom")), logging.KeyError, "boom"},
		{"NilError", logging.Error(nil), logging.KeyError, ""},
	}
	for _, tc := range cases {
		if tc.attr.Key != tc.key {
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.key, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.val {
			t.Fatalf("%s: expected value %s, got %s", tc.name, tc.val, got)
		}
	}
}

func TestNewJSONRespectsLevel(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelWarn, "json")
	logger.Info("dropped")
	logger.Warn("kept", logging.Minutes(10))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one record, got %d: %q", len(lines), buf.String())
	}
	record := map[string]any{}
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if record["msg"] != "kept" || record[logging.KeyMinutes] != float64(10) {
		t.Fatalf("unexpected record: %v", record)
	}
}

func TestOpenFileCreatesDirectory(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "sabibi.log")
	f, err := logging.OpenFile(path)
	if err != nil {
		t.Fatalf("open log file: %v", err)
	}
	defer f.Close()
	logging.New(f, slog.LevelInfo, "text").Info("hello")
}
