package driven

import (
	"context"

	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
)

// ReportWriter fills the report template with a report's cells and saves it.
// A missing template must be reported as domain.ErrTemplateNotFound.
type ReportWriter interface {
	// Write saves the filled workbook and returns the written path.
	Write(ctx context.Context, report *domain.Report) (string, error)
}

// ReportStore archives finalized reports.
type ReportStore interface {
	// Save inserts or replaces the report with the same session ID.
	Save(ctx context.Context, report *domain.Report) error

	// Get retrieves a report by session ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, sessionID string) (*domain.Report, error)

	// List returns summaries of all archived reports, newest first.
	List(ctx context.Context) ([]domain.ReportSummary, error)

	// Delete removes a report. Deleting a missing report is not an error.
	Delete(ctx context.Context, sessionID string) error
}

// ReportPublisher uploads a written report file somewhere shareable.
type ReportPublisher interface {
	// Publish uploads the file at path and returns its remote location.
	Publish(ctx context.Context, report *domain.Report, path string) (string, error)
}
