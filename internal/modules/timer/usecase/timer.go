package usecase

import (
	"context"

	presetin "sabibi/internal/modules/preset/port/in"
	"sabibi/internal/modules/timer/domain"
	"sabibi/internal/modules/timer/dto"
	timerin "sabibi/internal/modules/timer/port/in"
	"sabibi/internal/modules/timer/service"
)

type Interactor struct {
	svc     *service.TimerService
	presets presetin.Usecase
}

func NewInteractor(svc *service.TimerService, presets presetin.Usecase) timerin.Usecase {
	return &Interactor{svc: svc, presets: presets}
}

func (i *Interactor) Run(ctx context.Context, input dto.RunInput, progress func(dto.TickOutput)) (dto.RunOutput, error) {
	plan, err := i.plan(ctx, input.Preset, input.Cycles)
	if err != nil {
		return dto.RunOutput{}, err
	}
	var report func(domain.Snapshot)
	if progress != nil {
		report = func(snap domain.Snapshot) { progress(toTickOutput(snap, nil)) }
	}
	result, err := i.svc.Run(ctx, plan, report)
	out := dto.RunOutput{
		Label:           plan.Label,
		CompletedCycles: result.CompletedCycles,
		RecordedMinutes: result.RecordedMinutes,
		Recorded:        result.Recorded,
	}
	return out, err
}

func (i *Interactor) Start(ctx context.Context, input dto.StartInput) (dto.TickOutput, error) {
	plan, err := i.plan(ctx, input.Preset, input.Cycles)
	if err != nil {
		return dto.TickOutput{}, err
	}
	snap, err := i.svc.Start(ctx, plan)
	if err != nil {
		return dto.TickOutput{}, err
	}
	return toTickOutput(snap, nil), nil
}

func (i *Interactor) Tick(ctx context.Context) (dto.TickOutput, error) {
	snap, events, err := i.svc.Tick(ctx)
	return toTickOutput(snap, events), err
}

func (i *Interactor) Pause(ctx context.Context) (dto.TickOutput, error) {
	snap, err := i.svc.Pause(ctx)
	if err != nil {
		return dto.TickOutput{}, err
	}
	return toTickOutput(snap, nil), nil
}

func (i *Interactor) Resume(ctx context.Context) (dto.TickOutput, error) {
	snap, err := i.svc.Resume(ctx)
	if err != nil {
		return dto.TickOutput{}, err
	}
	return toTickOutput(snap, nil), nil
}

func (i *Interactor) Reset(ctx context.Context) (dto.TickOutput, error) {
	return toTickOutput(i.svc.Reset(ctx), nil), nil
}

func (i *Interactor) State(ctx context.Context) (dto.TickOutput, error) {
	return toTickOutput(i.svc.State(ctx), nil), nil
}

func (i *Interactor) CompleteStudy(ctx context.Context, studyMinutes int) error {
	return i.svc.CompleteStudy(ctx, studyMinutes)
}

func (i *Interactor) plan(ctx context.Context, label string, cycles int) (domain.Plan, error) {
	preset, err := i.presets.Find(ctx, label)
	if err != nil {
		return domain.Plan{}, err
	}
	return domain.Plan{
		Label:        preset.Label,
		StudyMinutes: preset.StudyMinutes,
		BreakMinutes: preset.BreakMinutes,
		Cycles:       cycles,
	}, nil
}

func toTickOutput(snap domain.Snapshot, events []domain.Event) dto.TickOutput {
	out := dto.TickOutput{
		Label:         snap.Label,
		Phase:         string(snap.Phase),
		Paused:        snap.Paused,
		Cycle:         snap.Cycle,
		Cycles:        snap.Cycles,
		PhaseDuration: snap.PhaseDuration,
		Remaining:     snap.Remaining,
		Progress:      snap.Progress(),
		Finished:      snap.Phase == domain.PhaseFinished,
	}
	for _, event := range events {
		if event.Kind == domain.EventStudyCompleted {
			out.StudyCompleted = append(out.StudyCompleted, event.StudyMinutes)
		}
	}
	return out
}
