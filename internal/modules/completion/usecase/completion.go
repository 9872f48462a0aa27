package usecase

import (
	"context"

	"sabibi/internal/modules/completion/domain"
	"sabibi/internal/modules/completion/dto"
	completionin "sabibi/internal/modules/completion/port/in"
	completionout "sabibi/internal/modules/completion/port/out"
	"sabibi/internal/modules/completion/service"
)

type Interactor struct {
	svc      *service.CompletionService
	notifier completionout.ChangeNotifier
}

func NewInteractor(svc *service.CompletionService, notifier completionout.ChangeNotifier) completionin.Usecase {
	return &Interactor{svc: svc, notifier: notifier}
}

func (i *Interactor) Record(ctx context.Context, input dto.RecordInput) (dto.RecordOutput, error) {
	completion, count, err := i.svc.Record(ctx, input.StudyMinutes)
	if err != nil {
		return dto.RecordOutput{}, err
	}
	return dto.RecordOutput{Date: completion.Date, StudyMinutes: completion.StudyMinutes, Count: count}, nil
}

func (i *Interactor) History(ctx context.Context, input dto.HistoryInput) ([]dto.CompletionOutput, error) {
	completions := i.svc.History(ctx, input.Limit)
	out := make([]dto.CompletionOutput, 0, len(completions))
	for _, c := range completions {
		out = append(out, dto.CompletionOutput{Date: c.Date, StudyMinutes: c.StudyMinutes})
	}
	return out, nil
}

func (i *Interactor) Stats(ctx context.Context, input dto.StatsInput) (dto.StatsOutput, error) {
	summary := i.svc.Summary(ctx, input.Days)
	days := make([]dto.DayTotalOutput, 0, len(summary.Days))
	for _, day := range summary.Days {
		days = append(days, toDayTotalOutput(day))
	}
	return dto.StatsOutput{
		Days:         days,
		TotalMinutes: summary.TotalMinutes,
		Sessions:     summary.Sessions,
		ActiveDays:   summary.ActiveDays,
		BestDay:      toDayTotalOutput(summary.BestDay),
		Streak:       summary.Streak,
	}, nil
}

// Watch returns a channel signalled whenever the collection changes on disk.
// Without a notifier the returned channel is nil and never fires.
func (i *Interactor) Watch(ctx context.Context) (<-chan struct{}, error) {
	if i.notifier == nil {
		return nil, nil
	}
	return i.notifier.Watch(ctx)
}

func toDayTotalOutput(day domain.DayTotal) dto.DayTotalOutput {
	return dto.DayTotalOutput{Date: day.Date, TotalMinutes: day.TotalMinutes}
}
