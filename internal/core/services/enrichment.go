package services

import (
	"context"

	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
	"github.com/custodia-labs/fieldreport-cli/internal/logger"
)

// enrich resolves the location and weather strings for a new session.
// Both lookups are best-effort: any failure degrades to a fixed fallback
// string and never aborts the interview.
func (s *InterviewService) enrich(ctx context.Context) (location, weather string) {
	loc := domain.Location{Display: domain.UnknownLocation}
	if s.location != nil {
		found, err := s.location.Lookup(ctx)
		if err != nil {
			logger.Warn("location lookup failed: %v", err)
		} else {
			loc = found
		}
	}
	if loc.Display == "" {
		loc.Display = domain.UnknownLocation
	}

	if !loc.HasCoordinates {
		return loc.Display, domain.NoCoordinates
	}
	if s.weather == nil {
		return loc.Display, domain.WeatherUnavailable
	}

	summary, err := s.weather.Lookup(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		logger.Warn("weather lookup failed: %v", err)
		return loc.Display, domain.WeatherUnavailable
	}
	return loc.Display, summary
}
