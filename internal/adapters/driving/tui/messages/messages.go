// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
)

// SessionStarted carries a new interview session, with location and weather filled in.
type SessionStarted struct {
	Session *domain.Session
	Err     error
}

// ReportFinalized carries the written report.
type ReportFinalized struct {
	Report *domain.Report
	Err    error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
