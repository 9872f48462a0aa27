package in

import (
	"context"

	"sabibi/internal/modules/preset/dto"
	presetin "sabibi/internal/modules/preset/port/in"
)

type CLIHandler struct {
	usecase presetin.Usecase
}

func NewCLIHandler(usecase presetin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) (dto.ListOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Find(ctx context.Context, label string) (dto.PresetOutput, error) {
	return h.usecase.Find(ctx, label)
}
