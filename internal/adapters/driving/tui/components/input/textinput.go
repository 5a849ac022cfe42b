// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driving/tui/styles"
)

// AnswerInput wraps a bubbles textinput for typing or dictating answers.
// The submitted line is treated exactly like a speech transcript.
type AnswerInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewAnswerInput creates a new answer input component.
func NewAnswerInput(s *styles.Styles) *AnswerInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Type or dictate your answer..."
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 50

	return &AnswerInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init initialises the answer input.
func (a *AnswerInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (a *AnswerInput) Update(msg tea.Msg) (*AnswerInput, tea.Cmd) {
	var cmd tea.Cmd
	a.textinput, cmd = a.textinput.Update(msg)
	return a, cmd
}

// View renders the answer input.
func (a *AnswerInput) View() string {
	label := a.styles.Title.Render("Answer: ")
	input := a.styles.InputField.Render(a.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, input)
}

// Value returns the current input value.
func (a *AnswerInput) Value() string {
	return a.textinput.Value()
}

// SetValue sets the input value.
func (a *AnswerInput) SetValue(value string) {
	a.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (a *AnswerInput) Focus() tea.Cmd {
	return a.textinput.Focus()
}

// Blur removes focus from the input.
func (a *AnswerInput) Blur() {
	a.textinput.Blur()
}

// Focused returns whether the input is focused.
func (a *AnswerInput) Focused() bool {
	return a.textinput.Focused()
}

// SetWidth sets the width of the input.
func (a *AnswerInput) SetWidth(width int) {
	a.width = width
	// Account for label and padding
	inputWidth := width - 12
	if inputWidth < 20 {
		inputWidth = 20
	}
	a.textinput.Width = inputWidth
}

// Width returns the current width.
func (a *AnswerInput) Width() int {
	return a.width
}

// Reset clears the input.
func (a *AnswerInput) Reset() {
	a.textinput.Reset()
}
