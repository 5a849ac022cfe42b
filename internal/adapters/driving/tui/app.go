package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driving/tui/views/interview"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// interviewView runs the question loop.
	interviewView *interview.View

	// paths is the template and output line shown under the interview.
	paths string

	// err holds a settings error that prevents the interview from starting.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		interviewView: interview.NewView(s, keymap.DefaultKeyMap(), ports.Interview),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.interviewView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// Invalid settings stop the interview before any question is asked.
func (a *App) Init() tea.Cmd {
	title := tea.SetWindowTitle("fieldreport - Daily Report")

	if a.ports.Settings != nil {
		if err := a.ports.Settings.Validate(); err != nil {
			a.err = err
			return tea.Batch(title, func() tea.Msg { return messages.ErrorOccurred{Err: err} })
		}
		if settings, err := a.ports.Settings.Get(); err == nil {
			a.paths = fmt.Sprintf("Template: %s  Output: %s",
				settings.Report.TemplatePath, settings.Report.OutputPath)
		}
	}

	return tea.Batch(title, a.interviewView.Init())
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		// Settings must be fixed outside the TUI before a new interview.
		if a.err != nil && msg.String() == "ctrl+n" {
			return a, nil
		}

	case messages.Quit:
		return a, tea.Quit
	}

	a.interviewView, cmd = a.interviewView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	out := a.interviewView.View()
	if a.paths != "" && a.err == nil {
		out += "\n" + a.styles.Muted.Render(a.paths)
	}
	return out
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	// Leave a line for the paths footer.
	a.interviewView.SetDimensions(width, height-1)
}

// Err returns the settings error, if any.
func (a *App) Err() error {
	return a.err
}

// Ready reports whether the first window size has arrived.
func (a *App) Ready() bool {
	return a.ready
}

// InterviewView returns the interview view.
func (a *App) InterviewView() *interview.View {
	return a.interviewView
}
