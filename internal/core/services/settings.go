package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
	"github.com/custodia-labs/fieldreport-cli/internal/core/ports/driven"
	"github.com/custodia-labs/fieldreport-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyTemplatePath     = "report.template_path"
	keyOutputPath       = "report.output_path"
	keyMaxRetries       = "interview.max_retries"
	keyQuestionnaire    = "interview.questionnaire"
	keyLocationURL      = "enrichment.location_url"
	keyWeatherURL       = "enrichment.weather_url"
	keyWeatherAPIKey    = "enrichment.weather_api_key"
	keyLookupTimeoutSec = "enrichment.timeout_seconds"
	keyPublishBucket    = "publish.s3_bucket"
	keyPublishRegion    = "publish.s3_region"
	keyPublishPrefix    = "publish.s3_prefix"
)

// intKeys are stored as integers; everything else is a string.
var intKeys = map[string]bool{
	keyMaxRetries:       true,
	keyLookupTimeoutSec: true,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	getenv      func(string) string
}

// NewSettingsService creates a new settings service.
// The weather API key may also come from the OPENWEATHER_API_KEY environment
// variable, which takes precedence over the config file.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		getenv:      os.Getenv,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	apiKey := s.getenv(domain.WeatherAPIKeyEnv)
	if apiKey == "" {
		apiKey = s.configStore.GetString(keyWeatherAPIKey)
	}

	settings := &domain.AppSettings{
		Report: domain.ReportSettings{
			TemplatePath: s.getString(keyTemplatePath, defaults.Report.TemplatePath),
			OutputPath:   s.getString(keyOutputPath, defaults.Report.OutputPath),
		},
		Interview: domain.InterviewSettings{
			MaxRetries:        s.getInt(keyMaxRetries, defaults.Interview.MaxRetries),
			QuestionnairePath: s.configStore.GetString(keyQuestionnaire), // No default - empty means built-in
		},
		Enrichment: domain.EnrichmentSettings{
			LocationURL:   s.getString(keyLocationURL, defaults.Enrichment.LocationURL),
			WeatherURL:    s.getString(keyWeatherURL, defaults.Enrichment.WeatherURL),
			WeatherAPIKey: apiKey,
			Timeout: time.Duration(
				s.getInt(keyLookupTimeoutSec, int(defaults.Enrichment.Timeout/time.Second)),
			) * time.Second,
		},
		Publish: domain.PublishSettings{
			Bucket: s.configStore.GetString(keyPublishBucket),
			Region: s.getString(keyPublishRegion, defaults.Publish.Region),
			Prefix: s.getString(keyPublishPrefix, defaults.Publish.Prefix),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{keyTemplatePath, settings.Report.TemplatePath},
		{keyOutputPath, settings.Report.OutputPath},
		{keyMaxRetries, settings.Interview.MaxRetries},
		{keyQuestionnaire, settings.Interview.QuestionnairePath},
		{keyLocationURL, settings.Enrichment.LocationURL},
		{keyWeatherURL, settings.Enrichment.WeatherURL},
		{keyLookupTimeoutSec, int(settings.Enrichment.Timeout / time.Second)},
		{keyPublishBucket, settings.Publish.Bucket},
		{keyPublishRegion, settings.Publish.Region},
		{keyPublishPrefix, settings.Publish.Prefix},
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	// Only persist the key when set, so an environment-provided key is never written to disk.
	if settings.Enrichment.WeatherAPIKey != "" && s.getenv(domain.WeatherAPIKeyEnv) == "" {
		if err := s.configStore.Set(keyWeatherAPIKey, settings.Enrichment.WeatherAPIKey); err != nil {
			return fmt.Errorf("save %s: %w", keyWeatherAPIKey, err)
		}
	}

	return nil
}

// Set updates a single setting by its config key.
func (s *SettingsService) Set(key, value string) error {
	if !s.isKnownKey(key) {
		return fmt.Errorf("%w: %s", domain.ErrUnknownSetting, key)
	}

	if intKeys[key] {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrInvalidInput, key)
		}
		if key == keyLookupTimeoutSec && n == 0 {
			return fmt.Errorf("%w: %s must be at least 1", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, n)
	}

	return s.configStore.Set(key, value)
}

// Keys lists the recognised config keys in sorted order.
func (s *SettingsService) Keys() []string {
	keys := []string{
		keyTemplatePath, keyOutputPath, keyMaxRetries, keyQuestionnaire,
		keyLocationURL, keyWeatherURL, keyWeatherAPIKey, keyLookupTimeoutSec,
		keyPublishBucket, keyPublishRegion, keyPublishPrefix,
	}
	sort.Strings(keys)
	return keys
}

// Validate checks that current settings can produce a report.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	var errs []error
	if strings.TrimSpace(settings.Report.TemplatePath) == "" {
		errs = append(errs, errors.New("report template path is empty"))
	}
	if strings.TrimSpace(settings.Report.OutputPath) == "" {
		errs = append(errs, errors.New("report output path is empty"))
	}
	if samePath(settings.Report.TemplatePath, settings.Report.OutputPath) {
		errs = append(errs, errors.New("report output path would overwrite the template"))
	}
	if settings.Interview.MaxRetries < 0 {
		errs = append(errs, errors.New("max retries must not be negative"))
	}
	if settings.Enrichment.Timeout <= 0 {
		errs = append(errs, errors.New("lookup timeout must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, errors.Join(errs...))
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) isKnownKey(key string) bool {
	for _, k := range s.Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// getString returns the stored string or the default when unset or empty.
func (s *SettingsService) getString(key, def string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return def
}

// getInt returns the stored integer or the default when the key is absent.
func (s *SettingsService) getInt(key string, def int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return def
	}
	return s.configStore.GetInt(key)
}

func samePath(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return filepath.Clean(a) == filepath.Clean(b)
}
