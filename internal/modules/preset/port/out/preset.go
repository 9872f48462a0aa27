package out

import (
	"context"

	"sabibi/internal/modules/preset/domain"
)

// CatalogStore loads a user-supplied catalog. found is false when none exists.
type CatalogStore interface {
	Load(ctx context.Context) (presets []domain.Preset, found bool, err error)
}
