package driving

import "github.com/custodia-labs/fieldreport-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set updates a single setting by its config key.
	// Returns domain.ErrUnknownSetting for unrecognised keys.
	Set(key, value string) error

	// Keys lists the recognised config keys.
	Keys() []string

	// Validate checks that current settings can produce a report.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
