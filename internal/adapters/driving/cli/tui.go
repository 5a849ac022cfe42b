package cli

import (
	"errors"
	"fmt"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/fieldreport-cli/internal/core/ports/driving"
)

// TUIConfig holds configuration for the TUI command.
type TUIConfig struct {
	InterviewService driving.InterviewService
	SettingsService  driving.SettingsService
}

// tuiConfig holds the current TUI configuration.
var tuiConfig *TUIConfig

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the interview in the interactive terminal UI",
	Long: `Run the daily report interview in the interactive terminal user interface.

Each question is shown in turn. Type or dictate the answer and press Enter.
Count questions ("How many visitor entries?") need a number such as "two"
or "3"; the follow-up questions for each entry are added to the end of the
interview. When the last question is answered the report is written.

Controls:
  Enter  - Submit answer
  Ctrl+U - Clear answer
  Ctrl+N - Start a new interview (after the report is written)
  Esc    - Quit`,
	RunE: runTUI,
}

// SetTUIConfig sets the configuration for the TUI command.
func SetTUIConfig(config *TUIConfig) {
	tuiConfig = config
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if tuiConfig == nil || tuiConfig.InterviewService == nil {
		return errors.New("interview service not configured")
	}

	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Panic in TUI: %v\n", r)
			fmt.Fprintf(cmd.ErrOrStderr(), "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(tui.NewPorts(tuiConfig.InterviewService, tuiConfig.SettingsService))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
