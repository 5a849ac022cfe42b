// Package openweather provides a WeatherLookup backed by the OpenWeather
// current weather API.
package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driven/enrichment"
	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
	"github.com/custodia-labs/fieldreport-cli/internal/core/ports/driven"
)

// Ensure WeatherLookup implements the interface.
var _ driven.WeatherLookup = (*WeatherLookup)(nil)

// ErrMissingAPIKey is returned when no API key is configured.
var ErrMissingAPIKey = errors.New("openweather: missing API key")

// Config holds configuration for the OpenWeather lookup.
type Config struct {
	// URL is the current weather endpoint (default: domain.DefaultWeatherURL).
	URL string

	// APIKey is the OpenWeather appid.
	APIKey string

	// Timeout is the request timeout (default: domain.DefaultLookupTimeout).
	Timeout time.Duration

	// Limiter throttles requests; a default limiter is used when nil.
	Limiter *enrichment.RateLimiter
}

// WeatherLookup reports current conditions in imperial units.
type WeatherLookup struct {
	client  *http.Client
	url     string
	apiKey  string
	limiter *enrichment.RateLimiter
}

// response is the subset of the OpenWeather payload we read.
type response struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main *struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

// NewWeatherLookup creates a new OpenWeather lookup.
func NewWeatherLookup(cfg Config) *WeatherLookup {
	if cfg.URL == "" {
		cfg.URL = domain.DefaultWeatherURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = domain.DefaultLookupTimeout
	}
	if cfg.Limiter == nil {
		cfg.Limiter = enrichment.NewRateLimiter()
	}

	return &WeatherLookup{
		client:  &http.Client{Timeout: cfg.Timeout},
		url:     cfg.URL,
		apiKey:  cfg.APIKey,
		limiter: cfg.Limiter,
	}
}

// Lookup returns "<Description>, <temp>°F" for the given coordinates.
func (w *WeatherLookup) Lookup(ctx context.Context, lat, lon float64) (string, error) {
	if w.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	endpoint, err := url.Parse(w.url)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	q := endpoint.Query()
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("appid", w.apiKey)
	q.Set("units", "imperial")
	endpoint.RawQuery = q.Encode()

	if err := w.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		w.limiter.Backoff(resp.Header.Get("Retry-After"))
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("openweather error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(r.Weather) == 0 || r.Main == nil {
		return "", errors.New("openweather: incomplete response")
	}

	return Format(r.Weather[0].Description, r.Main.Temp), nil
}

// Format renders a weather summary, e.g. Format("light rain", 51.3) is "Light rain, 51.3°F".
func Format(description string, tempF float64) string {
	temp := strconv.FormatFloat(tempF, 'f', -1, 64)
	if !strings.ContainsAny(temp, ".NI") {
		temp += ".0"
	}
	return capitalize(description) + ", " + temp + "°F"
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
