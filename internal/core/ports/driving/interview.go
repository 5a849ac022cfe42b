package driving

import (
	"context"

	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
)

// InterviewService runs daily report interviews.
type InterviewService interface {
	// NewSession starts an interview with the configured base questions
	// and best-effort location and weather enrichment.
	NewSession(ctx context.Context) (*domain.Session, error)

	// NewSessionFrom starts an interview with the given base questions
	// instead of the configured ones.
	NewSessionFrom(ctx context.Context, base []domain.Question) (*domain.Session, error)

	// Answer applies one transcribed response to the current question.
	// Returns domain.ErrSessionComplete if no question is pending.
	Answer(session *domain.Session, response string) (domain.Turn, error)

	// Conduct runs the blocking speak/listen loop over channel until the
	// session is complete, then finalizes it. onTurn, if not nil, receives
	// every applied turn for display.
	Conduct(
		ctx context.Context, session *domain.Session, channel SpeechChannel, onTurn func(domain.Turn),
	) (*domain.Report, error)

	// Finalize writes, archives and optionally publishes a complete session.
	// Returns domain.ErrSessionIncomplete if questions remain.
	Finalize(ctx context.Context, session *domain.Session) (*domain.Report, error)
}

// SpeechChannel carries one prompt out and one transcript back per turn.
// Speech synthesis and transcription happen behind it.
type SpeechChannel interface {
	// Speak presents a prompt to the respondent.
	Speak(ctx context.Context, text string) error

	// Listen blocks until the next transcribed response is available.
	Listen(ctx context.Context) (string, error)
}

// ReportService reads the archive of finalized reports.
type ReportService interface {
	// List returns summaries of archived reports, newest first.
	List(ctx context.Context) ([]domain.ReportSummary, error)

	// Get returns an archived report by session ID.
	Get(ctx context.Context, sessionID string) (*domain.Report, error)

	// Delete removes an archived report.
	Delete(ctx context.Context, sessionID string) error
}
