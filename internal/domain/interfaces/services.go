package interfaces

import (
	"context"

	domaintypes "rectarea/internal/domain/types"
)

// AreaService validates a rectangle and computes its area.
type AreaService interface {
	Compute(r domaintypes.Rectangle) (domaintypes.Area, error)
}

// DimensionReader prompts for and reads a single dimension.
type DimensionReader interface {
	ReadDimension(ctx context.Context, prompt string) (domaintypes.Dimension, error)
}
