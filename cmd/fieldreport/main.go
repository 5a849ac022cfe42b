// Command fieldreport runs voice-driven daily construction report interviews.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driven/enrichment"
	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driven/enrichment/ipapi"
	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driven/enrichment/openweather"
	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driven/publish/s3"
	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driven/questionnaire/jsonfile"
	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driven/spreadsheet/xlsx"
	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
	"github.com/custodia-labs/fieldreport-cli/internal/core/ports/driven"
	"github.com/custodia-labs/fieldreport-cli/internal/core/services"
	"github.com/custodia-labs/fieldreport-cli/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = ""

func main() {
	os.Exit(run())
}

func run() int {
	defer logger.Sync()

	loadDotEnv()

	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return 1
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading settings: %v\n", err)
		return 1
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: opening report archive: %v\n", err)
		return 1
	}
	defer store.Close()

	// Both lookups share one limiter so a burst of restarts stays polite.
	limiter := enrichment.NewRateLimiter()
	location := ipapi.NewLocationLookup(ipapi.Config{
		URL:     settings.Enrichment.LocationURL,
		Timeout: settings.Enrichment.Timeout,
		Limiter: limiter,
	})

	var weather driven.WeatherLookup
	if settings.Enrichment.HasWeatherKey() {
		weather = openweather.NewWeatherLookup(openweather.Config{
			URL:     settings.Enrichment.WeatherURL,
			APIKey:  settings.Enrichment.WeatherAPIKey,
			Timeout: settings.Enrichment.Timeout,
			Limiter: limiter,
		})
	} else {
		logger.Debug("no %s set, weather will be %q", domain.WeatherAPIKeyEnv, domain.WeatherUnavailable)
	}

	var publisher driven.ReportPublisher
	if settings.Publish.IsConfigured() {
		p, err := s3.NewPublisher(context.Background(), settings.Publish)
		if err != nil {
			logger.Warn("S3 publishing disabled: %v", err)
		} else {
			publisher = p
		}
	}

	var questionnaire driven.QuestionnaireLoader
	if settings.Interview.QuestionnairePath != "" {
		questionnaire = jsonfile.NewLoader(settings.Interview.QuestionnairePath)
	}

	reportStore := store.ReportStore()
	interviewService := services.NewInterviewService(
		xlsx.NewWriter(settings.Report.TemplatePath, settings.Report.OutputPath),
		reportStore,
		questionnaire,
		location,
		weather,
		publisher,
		settings.Interview.MaxRetries,
	)
	reportService := services.NewReportService(reportStore)

	cli.SetServices(interviewService, reportService, settingsService)
	cli.SetTUIConfig(&cli.TUIConfig{
		InterviewService: interviewService,
		SettingsService:  settingsService,
	})
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		// Cobra has already printed the error.
		return 1
	}
	return 0
}

// loadDotEnv loads secrets such as the OpenWeather key from ./.env and
// ~/.fieldreport/.env. Variables already set in the environment win.
func loadDotEnv() {
	paths := []string{".env"}
	if dir, err := file.DefaultDir(); err == nil {
		paths = append(paths, filepath.Join(dir, ".env"))
	}

	for _, path := range paths {
		err := godotenv.Load(path)
		switch {
		case err == nil:
			logger.Debug("loaded environment from %s", path)
		case errors.Is(err, os.ErrNotExist):
		default:
			logger.Warn("reading %s: %v", path, err)
		}
	}
}
