// Package tui provides an interactive terminal user interface for fieldreport.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/fieldreport-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Interview runs the interview session.
	Interview driving.InterviewService

	// Settings is validated before the first interview and its report
	// paths are shown under the interview; optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(interview driving.InterviewService, settings driving.SettingsService) *Ports {
	return &Ports{
		Interview: interview,
		Settings:  settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Interview == nil {
		return ErrMissingInterviewService
	}
	return nil
}
