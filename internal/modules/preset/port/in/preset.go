package in

import (
	"context"

	"sabibi/internal/modules/preset/dto"
)

type Usecase interface {
	List(ctx context.Context) (dto.ListOutput, error)
	Find(ctx context.Context, label string) (dto.PresetOutput, error)
}
