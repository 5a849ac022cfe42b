package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
)

func newTestSettingsService(env map[string]string) (*SettingsService, *memory.ConfigStore) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)
	service.getenv = func(key string) string { return env[key] }
	return service, store
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service, _ := newTestSettingsService(nil)

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults, *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	service, store := newTestSettingsService(nil)
	_ = store.Set("report.template_path", "/srv/templates/daily.xlsx")
	_ = store.Set("interview.max_retries", int64(5))
	_ = store.Set("interview.questionnaire", "questions.json")
	_ = store.Set("enrichment.weather_api_key", "file-key")
	_ = store.Set("enrichment.timeout_seconds", int64(4))
	_ = store.Set("publish.s3_bucket", "site-reports")

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "/srv/templates/daily.xlsx", settings.Report.TemplatePath)
	assert.Equal(t, domain.DefaultOutputPath, settings.Report.OutputPath)
	assert.Equal(t, 5, settings.Interview.MaxRetries)
	assert.Equal(t, "questions.json", settings.Interview.QuestionnairePath)
	assert.Equal(t, "file-key", settings.Enrichment.WeatherAPIKey)
	assert.Equal(t, 4*time.Second, settings.Enrichment.Timeout)
	assert.True(t, settings.Publish.IsConfigured())
}

func TestSettingsService_Get_ZeroRetriesIsKept(t *testing.T) {
	service, store := newTestSettingsService(nil)
	_ = store.Set("interview.max_retries", 0)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, 0, settings.Interview.MaxRetries)
}

func TestSettingsService_Get_EnvironmentKeyWins(t *testing.T) {
	service, store := newTestSettingsService(map[string]string{
		domain.WeatherAPIKeyEnv: "env-key",
	})
	_ = store.Set("enrichment.weather_api_key", "file-key")

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "env-key", settings.Enrichment.WeatherAPIKey)
	assert.True(t, settings.Enrichment.HasWeatherKey())
}

func TestSettingsService_Save(t *testing.T) {
	service, store := newTestSettingsService(nil)
	settings := domain.DefaultAppSettings()
	settings.Report.OutputPath = "reports/today.xlsx"
	settings.Interview.MaxRetries = 1
	settings.Enrichment.WeatherAPIKey = "saved-key"
	settings.Enrichment.Timeout = 3 * time.Second

	require.NoError(t, service.Save(&settings))

	assert.Equal(t, "reports/today.xlsx", store.GetString("report.output_path"))
	assert.Equal(t, 1, store.GetInt("interview.max_retries"))
	assert.Equal(t, 3, store.GetInt("enrichment.timeout_seconds"))
	assert.Equal(t, "saved-key", store.GetString("enrichment.weather_api_key"))

	got, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, *got)
}

func TestSettingsService_Save_DoesNotPersistEnvironmentKey(t *testing.T) {
	service, store := newTestSettingsService(map[string]string{
		domain.WeatherAPIKeyEnv: "env-key",
	})
	settings, err := service.Get()
	require.NoError(t, err)

	require.NoError(t, service.Save(settings))

	_, ok := store.Get("enrichment.weather_api_key")
	assert.False(t, ok)
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		want    any
		wantErr error
	}{
		{name: "string key", key: "report.output_path", value: "out.xlsx", want: "out.xlsx"},
		{name: "int key", key: "interview.max_retries", value: " 2 ", want: 2},
		{name: "zero retries", key: "interview.max_retries", value: "0", want: 0},
		{name: "timeout", key: "enrichment.timeout_seconds", value: "15", want: 15},
		{name: "not a number", key: "interview.max_retries", value: "three", wantErr: domain.ErrInvalidInput},
		{name: "negative", key: "interview.max_retries", value: "-1", wantErr: domain.ErrInvalidInput},
		{name: "zero timeout", key: "enrichment.timeout_seconds", value: "0", wantErr: domain.ErrInvalidInput},
		{name: "unknown key", key: "search.mode", value: "hybrid", wantErr: domain.ErrUnknownSetting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store := newTestSettingsService(nil)

			err := service.Set(tt.key, tt.value)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				_, ok := store.Get(tt.key)
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			got, ok := store.Get(tt.key)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettingsService_Keys(t *testing.T) {
	service, _ := newTestSettingsService(nil)

	keys := service.Keys()

	assert.Len(t, keys, 11)
	assert.IsIncreasing(t, keys)
	assert.Contains(t, keys, "report.template_path")
	assert.Contains(t, keys, "publish.s3_prefix")
}

func TestSettingsService_Validate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		service, _ := newTestSettingsService(nil)
		assert.NoError(t, service.Validate())
	})

	t.Run("output overwrites template", func(t *testing.T) {
		service, store := newTestSettingsService(nil)
		_ = store.Set("report.output_path", "./"+domain.DefaultTemplatePath)

		err := service.Validate()

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), "overwrite the template")
	})

	t.Run("negative retries", func(t *testing.T) {
		service, store := newTestSettingsService(nil)
		_ = store.Set("interview.max_retries", -2)

		err := service.Validate()

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service, _ := newTestSettingsService(nil)

	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}
