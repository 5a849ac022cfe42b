package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the report template, interview, enrichment and publishing settings.

Settings are stored in ~/.fieldreport/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a single setting",
	Long: `Change a single setting by its config key.

Run 'fieldreport settings keys' to list the recognised keys.

Examples:
  fieldreport settings set report.template_path ~/templates/Daily_Report_Template.xlsx
  fieldreport settings set interview.max_retries 2
  fieldreport settings set publish.s3_bucket site-reports`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List recognised setting keys",
	Args:  cobra.NoArgs,
	RunE:  runSettingsKeys,
}

var settingsWeatherKeyCmd = &cobra.Command{
	Use:   "weather-key",
	Short: "Store the OpenWeather API key",
	Long: `Prompts for the OpenWeather API key without echoing it and saves it to the config file.

The OPENWEATHER_API_KEY environment variable, or the same entry in a .env
file, takes precedence over the stored key.`,
	Args: cobra.NoArgs,
	RunE: runSettingsWeatherKey,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	settingsCmd.AddCommand(settingsWeatherKeyCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Report]")
	cmd.Printf("  Template: %s\n", settings.Report.TemplatePath)
	cmd.Printf("  Output: %s\n", settings.Report.OutputPath)
	cmd.Println()

	cmd.Println("[Interview]")
	cmd.Printf("  Max retries: %d\n", settings.Interview.MaxRetries)
	if settings.Interview.QuestionnairePath != "" {
		cmd.Printf("  Questionnaire: %s\n", settings.Interview.QuestionnairePath)
	} else {
		cmd.Printf("  Questionnaire: (built-in)\n")
	}
	cmd.Println()

	cmd.Println("[Enrichment]")
	cmd.Printf("  Location URL: %s\n", settings.Enrichment.LocationURL)
	cmd.Printf("  Weather URL: %s\n", settings.Enrichment.WeatherURL)
	if settings.Enrichment.HasWeatherKey() {
		cmd.Printf("  Weather API Key: %s\n", maskAPIKey(settings.Enrichment.WeatherAPIKey))
	} else {
		cmd.Printf("  Weather API Key: (not set, weather will be %q)\n", domain.WeatherUnavailable)
	}
	cmd.Printf("  Timeout: %s\n", settings.Enrichment.Timeout)
	cmd.Println()

	cmd.Println("[Publish]")
	if settings.Publish.IsConfigured() {
		cmd.Printf("  Bucket: %s\n", settings.Publish.Bucket)
		cmd.Printf("  Region: %s\n", settings.Publish.Region)
		cmd.Printf("  Prefix: %s\n", settings.Publish.Prefix)
	} else {
		cmd.Printf("  Status: disabled\n")
	}

	if err := settingsService.Validate(); err != nil {
		cmd.Println()
		cmd.Printf("Warning: %v\n", err)
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	if strings.HasSuffix(key, "api_key") {
		value = maskAPIKey(value)
	}
	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	for _, key := range settingsService.Keys() {
		cmd.Println(key)
	}
	return nil
}

func runSettingsWeatherKey(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Print("OpenWeather API key: ")
	key := readPassword(cmd.InOrStdin())
	cmd.Println()
	if key == "" {
		return errors.New("no API key entered")
	}

	if err := settingsService.Set("enrichment.weather_api_key", key); err != nil {
		return fmt.Errorf("failed to save API key: %w", err)
	}

	cmd.Printf("Saved weather API key %s\n", maskAPIKey(key))
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword(in io.Reader) string {
	// Try to read password without echo
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(in)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
