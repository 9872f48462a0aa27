package in

import (
	"context"

	"sabibi/internal/modules/completion/dto"
)

type Usecase interface {
	Record(ctx context.Context, input dto.RecordInput) (dto.RecordOutput, error)
	History(ctx context.Context, input dto.HistoryInput) ([]dto.CompletionOutput, error)
	Stats(ctx context.Context, input dto.StatsInput) (dto.StatsOutput, error)
	Watch(ctx context.Context) (<-chan struct{}, error)
}
