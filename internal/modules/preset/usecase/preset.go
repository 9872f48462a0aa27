package usecase

import (
	"context"

	"sabibi/internal/modules/preset/domain"
	"sabibi/internal/modules/preset/dto"
	presetin "sabibi/internal/modules/preset/port/in"
	"sabibi/internal/modules/preset/service"
)

type Interactor struct {
	svc *service.PresetService
}

func NewInteractor(svc *service.PresetService) presetin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) (dto.ListOutput, error) {
	presets, source, err := i.svc.Catalog(ctx)
	if err != nil {
		return dto.ListOutput{}, err
	}
	out := make([]dto.PresetOutput, 0, len(presets))
	for _, p := range presets {
		out = append(out, toOutput(p))
	}
	return dto.ListOutput{Presets: out, Source: source}, nil
}

func (i *Interactor) Find(ctx context.Context, label string) (dto.PresetOutput, error) {
	p, err := i.svc.Find(ctx, label)
	if err != nil {
		return dto.PresetOutput{}, err
	}
	return toOutput(p), nil
}

func toOutput(p domain.Preset) dto.PresetOutput {
	return dto.PresetOutput{Label: p.Label, StudyMinutes: p.StudyMinutes, BreakMinutes: p.BreakMinutes}
}
