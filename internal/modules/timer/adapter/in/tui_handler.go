package in

import (
	"context"

	"sabibi/internal/modules/timer/dto"
	timerin "sabibi/internal/modules/timer/port/in"
)

type TUIHandler struct {
	usecase timerin.Usecase
}

func NewTUIHandler(usecase timerin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Start(ctx context.Context, preset string) (dto.TickOutput, error) {
	return h.usecase.Start(ctx, dto.StartInput{Preset: preset, Cycles: 1})
}

func (h TUIHandler) Tick(ctx context.Context) (dto.TickOutput, error) {
	return h.usecase.Tick(ctx)
}

func (h TUIHandler) Pause(ctx context.Context) (dto.TickOutput, error) {
	return h.usecase.Pause(ctx)
}

func (h TUIHandler) Resume(ctx context.Context) (dto.TickOutput, error) {
	return h.usecase.Resume(ctx)
}

func (h TUIHandler) Reset(ctx context.Context) (dto.TickOutput, error) {
	return h.usecase.Reset(ctx)
}

func (h TUIHandler) State(ctx context.Context) (dto.TickOutput, error) {
	return h.usecase.State(ctx)
}
