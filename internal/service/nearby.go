package service

import (
	"context"

	apperrors "healthcare/internal/errors"
	"healthcare/internal/geo"
	"healthcare/internal/logger"
)

// filterNearby runs geo.Filter and tells the caller's mistakes (bad origin or
// radius) apart from rows stored with out-of-range coordinates.
func filterNearby[T geo.Locatable](cfg geo.Config, o *geo.Point, items []T, radiusKm float64) ([]geo.Annotated[T], error) {
	found, err := geo.Filter(cfg, o, items, radiusKm)
	if err == nil {
		return found, nil
	}
	if _, argErr := geo.Filter[T](cfg, o, nil, radiusKm); argErr != nil {
		return nil, argErr
	}
	return nil, apperrors.Internal("stored coordinates out of range", err)
}

// locatable drops rows whose stored coordinates are out of range, logging each.
// Rows without coordinates are kept; geo.Filter skips them.
func locatable[T geo.Locatable](ctx context.Context, items []T, kind string) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if p, ok := item.Coordinates(); ok {
			if err := geo.Validate(p); err != nil {
				logger.FromContext(ctx).Error().Err(err).Str("kind", kind).Int("row", i).
					Msg("skipping row with invalid coordinates")
				continue
			}
		}
		out = append(out, item)
	}
	return out
}
