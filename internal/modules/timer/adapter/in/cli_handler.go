package in

import (
	"context"

	"sabibi/internal/modules/timer/dto"
	timerin "sabibi/internal/modules/timer/port/in"
)

type CLIHandler struct {
	usecase timerin.Usecase
}

func NewCLIHandler(usecase timerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Run(ctx context.Context, preset string, cycles int, progress func(dto.TickOutput)) (dto.RunOutput, error) {
	return h.usecase.Run(ctx, dto.RunInput{Preset: preset, Cycles: cycles}, progress)
}
