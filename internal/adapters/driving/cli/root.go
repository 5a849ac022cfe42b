// Package cli implements the fieldreport command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/fieldreport-cli/internal/core/ports/driving"
	"github.com/custodia-labs/fieldreport-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services used by the commands. Set by the composition root before Execute.
var (
	interviewService driving.InterviewService
	reportService    driving.ReportService
	settingsService  driving.SettingsService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "fieldreport",
	Short: "Voice-driven daily construction reports",
	Long: `fieldreport interviews a site superintendent one question at a time and
fills the answers into the daily report spreadsheet template.

Answers to count questions ("How many visitor entries?") add follow-up
questions for each entry. The site location, current weather and the date
are filled in automatically.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetServices wires the core services into the commands.
func SetServices(interview driving.InterviewService, reports driving.ReportService, settings driving.SettingsService) {
	interviewService = interview
	reportService = reports
	settingsService = settings
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
