package service

import (
	"context"
	"log/slog"

	"sabibi/internal/modules/preset/domain"
	presetout "sabibi/internal/modules/preset/port/out"
	"sabibi/internal/platform/logging"
)

const (
	SourceBuiltin = "builtin"
	SourceFile    = "file"
)

type PresetService struct {
	store  presetout.CatalogStore
	logger *slog.Logger
}

func NewPresetService(store presetout.CatalogStore, logger *slog.Logger) *PresetService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &PresetService{store: store, logger: logger}
}

// Catalog returns the user catalog when one exists, otherwise the defaults.
func (s *PresetService) Catalog(ctx context.Context) ([]domain.Preset, string, error) {
	if s.store == nil {
		return domain.Defaults(), SourceBuiltin, nil
	}
	presets, found, err := s.store.Load(ctx)
	if err != nil {
		return nil, "", err
	}
	if !found {
		return domain.Defaults(), SourceBuiltin, nil
	}
	if err := domain.ValidateCatalog(presets); err != nil {
		return nil, "", err
	}
	s.logger.Debug("loaded preset catalog from file", slog.Int("count", len(presets)))
	return presets, SourceFile, nil
}

func (s *PresetService) Find(ctx context.Context, label string) (domain.Preset, error) {
	presets, _, err := s.Catalog(ctx)
	if err != nil {
		return domain.Preset{}, err
	}
	return domain.Find(presets, label)
}
