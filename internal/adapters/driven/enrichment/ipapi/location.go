// Package ipapi provides a LocationLookup backed by the ip-api.com JSON endpoint.
package ipapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driven/enrichment"
	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
	"github.com/custodia-labs/fieldreport-cli/internal/core/ports/driven"
)

// Ensure LocationLookup implements the interface.
var _ driven.LocationLookup = (*LocationLookup)(nil)

// Config holds configuration for the ip-api.com lookup.
type Config struct {
	// URL is the lookup endpoint (default: domain.DefaultLocationURL).
	URL string

	// Timeout is the request timeout (default: domain.DefaultLookupTimeout).
	Timeout time.Duration

	// Limiter throttles requests; a default limiter is used when nil.
	Limiter *enrichment.RateLimiter
}

// LocationLookup geolocates the machine from its public IP address.
type LocationLookup struct {
	client  *http.Client
	url     string
	limiter *enrichment.RateLimiter
}

// response is the subset of the ip-api.com payload we read.
type response struct {
	Status     string   `json:"status"`
	Message    string   `json:"message"`
	City       string   `json:"city"`
	RegionName string   `json:"regionName"`
	Country    string   `json:"country"`
	Lat        *float64 `json:"lat"`
	Lon        *float64 `json:"lon"`
}

// NewLocationLookup creates a new ip-api.com location lookup.
func NewLocationLookup(cfg Config) *LocationLookup {
	if cfg.URL == "" {
		cfg.URL = domain.DefaultLocationURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = domain.DefaultLookupTimeout
	}
	if cfg.Limiter == nil {
		cfg.Limiter = enrichment.NewRateLimiter()
	}

	return &LocationLookup{
		client:  &http.Client{Timeout: cfg.Timeout},
		url:     cfg.URL,
		limiter: cfg.Limiter,
	}
}

// Lookup returns "City, Region, Country" and the coordinates when known.
func (l *LocationLookup) Lookup(ctx context.Context) (domain.Location, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return domain.Location{}, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return domain.Location{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return domain.Location{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		l.limiter.Backoff(resp.Header.Get("Retry-After"))
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.Location{}, fmt.Errorf("ip-api error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return domain.Location{}, fmt.Errorf("decode response: %w", err)
	}
	if r.Status != "" && r.Status != "success" {
		return domain.Location{}, fmt.Errorf("ip-api lookup failed: %s", r.Message)
	}

	loc := domain.Location{Display: display(r)}
	if r.Lat != nil && r.Lon != nil {
		loc.Latitude = *r.Lat
		loc.Longitude = *r.Lon
		loc.HasCoordinates = true
	}
	return loc, nil
}

// display joins the known place names, using "Unknown" for a missing city.
func display(r response) string {
	if r.City == "" && r.RegionName == "" && r.Country == "" {
		return domain.UnknownLocation
	}
	city := r.City
	if city == "" {
		city = "Unknown"
	}
	return city + ", " + r.RegionName + ", " + r.Country
}
