package out

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"sabibi/internal/modules/preset/domain"
	presetout "sabibi/internal/modules/preset/port/out"
)

type YAMLCatalogStore struct {
	path string
}

func NewYAMLCatalogStore(path string) presetout.CatalogStore {
	return &YAMLCatalogStore{path: path}
}

type catalogFile struct {
	Presets []presetEntry `yaml:"presets"`
}

type presetEntry struct {
	Label        string `yaml:"label"`
	StudyMinutes int    `yaml:"study_minutes"`
	BreakMinutes int    `yaml:"break_minutes"`
}

func (s *YAMLCatalogStore) Load(_ context.Context) ([]domain.Preset, bool, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read preset catalog: %w", err)
	}
	var file catalogFile
	decoder := yaml.NewDecoder(bytes.NewReader(b))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return []domain.Preset{}, true, nil
		}
		return nil, false, fmt.Errorf("decode preset catalog %s: %w", s.path, err)
	}
	presets := make([]domain.Preset, 0, len(file.Presets))
	for _, e := range file.Presets {
		presets = append(presets, domain.Preset{Label: e.Label, StudyMinutes: e.StudyMinutes, BreakMinutes: e.BreakMinutes})
	}
	return presets, true, nil
}
