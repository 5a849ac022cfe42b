package driven

import (
	"context"

	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
)

// LocationLookup resolves where the interview is taking place.
// Implementations return an error on any failure; callers apply fallbacks.
type LocationLookup interface {
	Lookup(ctx context.Context) (domain.Location, error)
}

// WeatherLookup describes current conditions at a coordinate as
// "<Description>, <temperature>°F".
type WeatherLookup interface {
	Lookup(ctx context.Context, lat, lon float64) (string, error)
}
