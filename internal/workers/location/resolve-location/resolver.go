// internal/workers/location/resolve-location/resolver.go
package resolvelocation

import (
	"context"
	"strings"

	apperrors "bizstart-workers/internal/common/errors"
	"bizstart-workers/internal/common/kakao"
	"bizstart-workers/internal/common/logger"
	"bizstart-workers/internal/models"
)

type Resolver struct {
	geocoder Geocoder
	logger   logger.Logger
}

// NewResolver builds a resolver. A nil geocoder limits resolution to the known areas.
func NewResolver(geocoder Geocoder, log logger.Logger) *Resolver {
	return &Resolver{geocoder: geocoder, logger: log}
}

// FindKnownArea matches the query against area names and aliases, ignoring spaces.
func FindKnownArea(query string) (KnownArea, bool) {
	q := strings.ReplaceAll(strings.TrimSpace(query), " ", "")
	if q == "" {
		return KnownArea{}, false
	}
	for _, area := range KnownAreas {
		if strings.Contains(q, area.Name) {
			return area, true
		}
		for _, alias := range area.Aliases {
			if strings.Contains(q, alias) {
				return area, true
			}
		}
	}
	return KnownArea{}, false
}

// Resolve returns the coordinates for query from the known areas, then the geocoder. Geocoder
// failures are logged and reported as LOCATION_NOT_FOUND.
func (r *Resolver) Resolve(ctx context.Context, query string) (*models.ResolvedLocation, error) {
	query = strings.TrimSpace(query)

	if area, ok := FindKnownArea(query); ok {
		return &models.ResolvedLocation{
			Query:       query,
			Name:        area.Name,
			Coordinates: area.Coordinates,
			Source:      models.LocationSourceKnownArea,
		}, nil
	}

	var upstream *apperrors.StandardError
	if r.geocoder != nil {
		place, err := r.geocoder.Geocode(ctx, query)
		if err == nil {
			return &models.ResolvedLocation{
				Query:       query,
				Name:        place.Name,
				Address:     place.Address,
				Coordinates: place.Coordinates,
				Source:      models.LocationSourceKakao,
			}, nil
		}
		upstream = kakao.Classify(err)
		r.logger.Warn("geocoding failed", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
	}

	return nil, apperrors.NewLocationNotFoundError(query, KnownAreaNames()).WithCause(upstream)
}
