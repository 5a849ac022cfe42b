// Package interview provides the interview view for the TUI.
// Each submitted line is one transcript; the view shows the numbered
// question, echoes the answer, and warns when a count question needs a number.
package interview

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
	"github.com/custodia-labs/fieldreport-cli/internal/core/ports/driving"
)

// RetryMessage is shown when a count answer contained no number.
const RetryMessage = "I didn't catch a number. Please say a number like 'two' or '3'."

// View is the interview screen: header, transcript log, answer box and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.AnswerInput
	spinner   spinner.Model
	statusbar *status.Bar

	interviewService driving.InterviewService
	ctx              context.Context

	session *domain.Session
	report  *domain.Report
	log     []string
	err     error

	width  int
	height int
}

// NewView creates a new interview view.
func NewView(s *styles.Styles, km *keymap.KeyMap, interviewService driving.InterviewService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(s.Theme().Primary)

	return &View{
		styles:           s,
		keymap:           km,
		input:            input.NewAnswerInput(s),
		spinner:          sp,
		statusbar:        status.NewBar(s, km),
		interviewService: interviewService,
		ctx:              context.Background(),
		width:            80,
		height:           24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init starts a session and the input and spinner animations.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.spinner.Tick, v.startSession())
}

// Update handles messages for the interview view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SessionStarted:
		v.handleSessionStarted(msg)
		return v, nil

	case messages.ReportFinalized:
		v.handleReportFinalized(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.fail(msg.Err)
		return v, nil

	case spinner.TickMsg:
		if !v.Busy() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }

	case keymap.Matches(keyStr, v.keymap.Restart):
		if v.Busy() || (v.session != nil && v.report == nil && v.err == nil) {
			return v, nil
		}
		return v, v.restart()

	case keymap.Matches(keyStr, v.keymap.Clear):
		v.input.Reset()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Submit):
		return v, v.submit()
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// submit applies the typed line as the response to the current question.
// Blank lines are not utterances and are ignored.
func (v *View) submit() tea.Cmd {
	if v.session == nil || v.Busy() {
		return nil
	}
	response := strings.TrimSpace(v.input.Value())
	if response == "" {
		return nil
	}
	v.input.Reset()

	turn, err := v.interviewService.Answer(v.session, response)
	if err != nil {
		v.fail(err)
		return nil
	}
	v.recordTurn(turn)

	if turn.State == domain.StateComplete {
		v.statusbar.SetState(status.StateFinalizing)
		v.input.Blur()
		return tea.Batch(v.spinner.Tick, v.finalize())
	}

	v.askCurrent()
	return nil
}

func (v *View) recordTurn(turn domain.Turn) {
	v.log = append(v.log, v.styles.Answer.Render("You said: "+turn.Response))
	switch turn.Outcome {
	case domain.TurnRetry:
		v.log = append(v.log, v.styles.Warning.Render(RetryMessage))
	case domain.TurnSkipped:
		v.log = append(v.log, v.styles.Warning.Render("Still no number. Skipping this question."))
	case domain.TurnExpanded:
		if n := len(turn.Added); n > 0 {
			v.log = append(v.log, v.styles.Muted.Render(fmt.Sprintf("  Adding %d follow-up questions.", n)))
		}
	case domain.TurnStored:
	}
}

// askCurrent logs the pending question unless it is being asked again.
func (v *View) askCurrent() {
	q, ok := v.session.Current()
	if !ok {
		return
	}
	if v.session.State() == domain.StateRetrying {
		v.statusbar.SetState(status.StateRetrying)
	} else {
		v.statusbar.SetState(status.StateAwaiting)
		v.log = append(v.log, v.styles.Question.Render(fmt.Sprintf("Q%d: %s", v.session.QuestionNumber(), q.Prompt)))
	}
	v.statusbar.SetProgress(v.session.QuestionNumber(), v.session.Queue.Remaining())
}

func (v *View) handleSessionStarted(msg messages.SessionStarted) {
	if msg.Err != nil {
		v.fail(msg.Err)
		return
	}
	v.session = msg.Session
	v.log = append(v.log,
		v.styles.Muted.Render("Location: "+v.session.Location),
		v.styles.Muted.Render("Weather:  "+v.session.Weather),
		"",
	)
	v.askCurrent()
}

func (v *View) handleReportFinalized(msg messages.ReportFinalized) {
	if msg.Err != nil {
		v.fail(msg.Err)
		return
	}
	v.report = msg.Report
	v.log = append(v.log, "", v.styles.Success.Render("Interview complete."),
		v.styles.Normal.Render("Report saved to "+msg.Report.OutputPath))
	if msg.Report.PublishedTo != "" {
		v.log = append(v.log, v.styles.Normal.Render("Published to "+msg.Report.PublishedTo))
	}
	v.statusbar.SetState(status.StateDone)
	v.statusbar.SetMessage("Saved " + msg.Report.OutputPath)
}

func (v *View) fail(err error) {
	v.err = err
	v.input.Blur()
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

func (v *View) restart() tea.Cmd {
	v.session = nil
	v.report = nil
	v.err = nil
	v.log = nil
	v.statusbar.SetMessage("")
	v.statusbar.SetState(status.StateStarting)
	return tea.Batch(v.input.Focus(), v.spinner.Tick, v.startSession())
}

func (v *View) startSession() tea.Cmd {
	svc, ctx := v.interviewService, v.ctx
	return func() tea.Msg {
		session, err := svc.NewSession(ctx)
		return messages.SessionStarted{Session: session, Err: err}
	}
}

func (v *View) finalize() tea.Cmd {
	svc, ctx, session := v.interviewService, v.ctx, v.session
	return func() tea.Msg {
		report, err := svc.Finalize(ctx, session)
		return messages.ReportFinalized{Report: report, Err: err}
	}
}

// View renders the interview screen.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("fieldreport · Daily Report Interview"))
	b.WriteString("\n\n")

	// Keep the newest lines that fit above the input and status bar.
	room := v.height - 8
	if room < 3 {
		room = 3
	}
	lines := v.log
	if len(lines) > room {
		lines = lines[len(lines)-room:]
	}
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	case v.Busy():
		b.WriteString(v.spinner.View() + " " + v.styles.Muted.Render(v.busyLabel()))
	case v.report == nil:
		b.WriteString(v.input.View())
	}
	b.WriteString("\n\n")
	b.WriteString(v.statusbar.View())

	return b.String()
}

func (v *View) busyLabel() string {
	if v.statusbar.State() == status.StateFinalizing {
		return "Writing report..."
	}
	return "Looking up location and weather..."
}

// Busy reports whether a session start or finalization is in flight.
func (v *View) Busy() bool {
	state := v.statusbar.State()
	return state == status.StateStarting || state == status.StateFinalizing
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// Session returns the running session, if any.
func (v *View) Session() *domain.Session {
	return v.session
}

// Report returns the written report once the interview is finalized.
func (v *View) Report() *domain.Report {
	return v.report
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// Log returns the rendered transcript lines.
func (v *View) Log() []string {
	return v.log
}
