// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driving/tui/styles"
)

// State represents the current interview state for display.
type State string

const (
	StateStarting   State = "starting"
	StateAwaiting   State = "awaiting"
	StateRetrying   State = "retrying"
	StateFinalizing State = "finalizing"
	StateDone       State = "done"
	StateError      State = "error"
)

// Bar displays interview progress and keybinding hints.
type Bar struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	state     State
	message   string
	question  int
	remaining int
	width     int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateStarting,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	inner := s.width - s.styles.StatusBar.GetHorizontalFrameSize()
	padding := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the state and progress.
func (s *Bar) renderLeft() string {
	switch s.state {
	case StateStarting:
		return s.styles.Muted.Render("Looking up location and weather...")
	case StateAwaiting:
		return s.styles.Normal.Render(s.progress())
	case StateRetrying:
		return s.styles.Warning.UnsetPaddingLeft().Render(s.progress() + " (waiting for a number)")
	case StateFinalizing:
		return s.styles.Muted.Render("Writing report...")
	case StateDone:
		if s.message != "" {
			return s.styles.Success.Render(s.message)
		}
		return s.styles.Success.Render("Done")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	}
	return ""
}

func (s *Bar) progress() string {
	return fmt.Sprintf("Q%d · %d left", s.question, s.remaining)
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	var bindings []key.Binding
	switch s.state {
	case StateDone, StateError:
		bindings = s.keymap.DoneHelp()
	case StateStarting, StateAwaiting, StateRetrying, StateFinalizing:
		bindings = s.keymap.InterviewHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetProgress sets the current question number and how many questions remain.
func (s *Bar) SetProgress(question, remaining int) {
	s.question = question
	s.remaining = remaining
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}
