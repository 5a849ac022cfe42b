package domain

import "time"

// Default settings values.
const (
	DefaultTemplatePath  = "Daily_Report_Template.xlsx"
	DefaultOutputPath    = "VoiceReport.xlsx"
	DefaultMaxRetries    = 3
	DefaultLocationURL   = "http://ip-api.com/json/"
	DefaultWeatherURL    = "https://api.openweathermap.org/data/2.5/weather"
	DefaultLookupTimeout = 10 * time.Second
	DefaultPublishRegion = "us-east-1"
	DefaultPublishPrefix = "reports/"
	WeatherAPIKeyEnv     = "OPENWEATHER_API_KEY" //nolint:gosec // G101: env var name, not a credential.
)

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	Report     ReportSettings
	Interview  InterviewSettings
	Enrichment EnrichmentSettings
	Publish    PublishSettings
}

// ReportSettings configures the spreadsheet template and output.
type ReportSettings struct {
	// TemplatePath is the pre-existing workbook the answers are written into.
	TemplatePath string

	// OutputPath is where the filled workbook is saved.
	OutputPath string
}

// InterviewSettings configures the question loop.
type InterviewSettings struct {
	// MaxRetries is how many unparseable count responses are tolerated
	// before the question is skipped with no entries.
	MaxRetries int

	// QuestionnairePath optionally replaces the built-in base questions.
	QuestionnairePath string
}

// EnrichmentSettings configures the location and weather lookups.
type EnrichmentSettings struct {
	LocationURL   string
	WeatherURL    string
	WeatherAPIKey string
	Timeout       time.Duration
}

// PublishSettings configures optional upload of the finished report.
type PublishSettings struct {
	Bucket string
	Region string
	Prefix string
}

// IsConfigured returns true if a bucket has been set.
func (p PublishSettings) IsConfigured() bool {
	return p.Bucket != ""
}

// HasWeatherKey returns true if a weather API key is available.
func (e EnrichmentSettings) HasWeatherKey() bool {
	return e.WeatherAPIKey != ""
}

// DefaultAppSettings returns the default settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Report: ReportSettings{
			TemplatePath: DefaultTemplatePath,
			OutputPath:   DefaultOutputPath,
		},
		Interview: InterviewSettings{
			MaxRetries: DefaultMaxRetries,
		},
		Enrichment: EnrichmentSettings{
			LocationURL: DefaultLocationURL,
			WeatherURL:  DefaultWeatherURL,
			Timeout:     DefaultLookupTimeout,
		},
		Publish: PublishSettings{
			Region: DefaultPublishRegion,
			Prefix: DefaultPublishPrefix,
		},
	}
}
