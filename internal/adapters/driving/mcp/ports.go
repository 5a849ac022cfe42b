package mcp

import (
	"github.com/custodia-labs/fieldreport-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Interview runs the interview session.
	Interview driving.InterviewService

	// Reports exposes the archive of finished reports.
	Reports driving.ReportService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Interview == nil {
		return ErrMissingInterviewService
	}
	// Reports is optional; without it the report resources list nothing.
	return nil
}
