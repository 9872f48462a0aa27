package in

import (
	"context"

	"sabibi/internal/modules/timer/dto"
)

type Usecase interface {
	Run(ctx context.Context, input dto.RunInput, progress func(dto.TickOutput)) (dto.RunOutput, error)
	Start(ctx context.Context, input dto.StartInput) (dto.TickOutput, error)
	Tick(ctx context.Context) (dto.TickOutput, error)
	Pause(ctx context.Context) (dto.TickOutput, error)
	Resume(ctx context.Context) (dto.TickOutput, error)
	Reset(ctx context.Context) (dto.TickOutput, error)
	State(ctx context.Context) (dto.TickOutput, error)
	CompleteStudy(ctx context.Context, studyMinutes int) error
}
