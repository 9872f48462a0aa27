package bootstrap_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"sabibi/internal/bootstrap"
	"sabibi/internal/platform/config"
)

func newConfig(t *testing.T, store string) config.Config {
	t.Helper()
	dir := t.TempDir()
	return config.Config{
		DataDir:     dir,
		Store:       store,
		StorePath:   filepath.Join(dir, "store"),
		DBPath:      filepath.Join(dir, "sabibi.db"),
		PresetsPath: filepath.Join(dir, "presets.yaml"),
		LogPath:     filepath.Join(dir, "sabibi.log"),
		LogFormat:   config.LogFormatText,
	}
}

func TestBackendsRecordAndAggregate(t *testing.T) {
	t.Parallel()
	for _, store := range []string{config.StoreFile, config.StoreSQLite, config.StoreMemory} {
		t.Run(store, func(t *testing.T) {
			t.Parallel()
			app, err := bootstrap.New(newConfig(t, store), nil)
			if err != nil {
				t.Fatalf("new app: %v", err)
			}
			defer app.Close()

			ctx := context.Background()
			if _, err := app.CompletionCLI.Record(ctx, 25); err != nil {
				t.Fatalf("record: %v", err)
			}
			if _, err := app.CompletionCLI.Record(ctx, 50); err != nil {
				t.Fatalf("record: %v", err)
			}
			stats, err := app.CompletionCLI.Stats(ctx, 14)
			if err != nil {
				t.Fatalf("stats: %v", err)
			}
			if len(stats.Days) != 14 || stats.Days[13].TotalMinutes != 75 || stats.Sessions != 2 {
				t.Fatalf("unexpected stats: %+v", stats)
			}
		})
	}
}

func TestFileBackendPersistsUnderStorePath(t *testing.T) {
	t.Parallel()
	cfg := newConfig(t, config.StoreFile)
	app, err := bootstrap.New(cfg, nil)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	if _, err := app.CompletionCLI.Record(context.Background(), 30); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.StorePath, "sabibi-timer-completions.json")); err != nil {
		t.Fatalf("expected collection file: %v", err)
	}
}

func TestPresetsFromYAMLFile(t *testing.T) {
	t.Parallel()
	cfg := newConfig(t, config.StoreMemory)
	yaml := "presets:\n  - label: Sprint\n    study_minutes: 15\n    break_minutes: 3\n"
	if err := os.WriteFile(cfg.PresetsPath, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write presets: %v", err)
	}
	app, err := bootstrap.New(cfg, nil)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	out, err := app.PresetCLI.List(context.Background())
	if err != nil {
		t.Fatalf("list presets: %v", err)
	}
	if len(out.Presets) != 1 || out.Presets[0].Label != "Sprint" || out.Source != "file" {
		t.Fatalf("unexpected presets: %+v", out)
	}
}

func TestUnknownBackend(t *testing.T) {
	t.Parallel()
	if _, err := bootstrap.New(newConfig(t, "redis"), nil); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
