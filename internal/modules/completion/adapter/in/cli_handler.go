package in

import (
	"context"

	"sabibi/internal/modules/completion/dto"
	completionin "sabibi/internal/modules/completion/port/in"
)

type CLIHandler struct {
	usecase completionin.Usecase
}

func NewCLIHandler(usecase completionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Record(ctx context.Context, studyMinutes int) (dto.RecordOutput, error) {
	return h.usecase.Record(ctx, dto.RecordInput{StudyMinutes: studyMinutes})
}

func (h CLIHandler) History(ctx context.Context, limit int) ([]dto.CompletionOutput, error) {
	return h.usecase.History(ctx, dto.HistoryInput{Limit: limit})
}

func (h CLIHandler) Stats(ctx context.Context, days int) (dto.StatsOutput, error) {
	return h.usecase.Stats(ctx, dto.StatsInput{Days: days})
}

func (h CLIHandler) Watch(ctx context.Context) (<-chan struct{}, error) {
	return h.usecase.Watch(ctx)
}
