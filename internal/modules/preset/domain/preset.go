package domain

import (
	"fmt"
	"strings"

	apperrors "sabibi/internal/platform/errors"
)

type Preset struct {
	Label        string
	StudyMinutes int
	BreakMinutes int
}

// Defaults is the built-in catalog, in display order.
func Defaults() []Preset {
	return []Preset{
		{Label: "Light", StudyMinutes: 25, BreakMinutes: 5},
		{Label: "Standard", StudyMinutes: 50, BreakMinutes: 10},
		{Label: "Deep Focus", StudyMinutes: 80, BreakMinutes: 20},
	}
}

func (p Preset) Validate() error {
	if strings.TrimSpace(p.Label) == "" {
		return fmt.Errorf("%w: preset label is required", apperrors.ErrInvalidInput)
	}
	if p.StudyMinutes <= 0 {
		return fmt.Errorf("%w: preset %q study minutes must be positive", apperrors.ErrInvalidInput, p.Label)
	}
	if p.BreakMinutes < 0 {
		return fmt.Errorf("%w: preset %q break minutes must not be negative", apperrors.ErrInvalidInput, p.Label)
	}
	return nil
}

// ValidateCatalog checks every preset and rejects duplicate labels
// (case-insensitive) and empty catalogs.
func ValidateCatalog(presets []Preset) error {
	if len(presets) == 0 {
		return fmt.Errorf("%w: preset catalog is empty", apperrors.ErrInvalidInput)
	}
	seen := make(map[string]struct{}, len(presets))
	for _, p := range presets {
		if err := p.Validate(); err != nil {
			return err
		}
		key := strings.ToLower(strings.TrimSpace(p.Label))
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: duplicate preset label %q", apperrors.ErrInvalidInput, p.Label)
		}
		seen[key] = struct{}{}
	}
	return nil
}

func Find(presets []Preset, label string) (Preset, error) {
	want := strings.ToLower(strings.TrimSpace(label))
	for _, p := range presets {
		if strings.ToLower(strings.TrimSpace(p.Label)) == want {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: preset %q", apperrors.ErrNotFound, label)
}
