package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
	"github.com/custodia-labs/fieldreport-cli/internal/core/ports/driven"
	"github.com/custodia-labs/fieldreport-cli/internal/core/ports/driving"
	"github.com/custodia-labs/fieldreport-cli/internal/logger"
)

// Ensure InterviewService implements the interface.
var _ driving.InterviewService = (*InterviewService)(nil)

// InterviewService runs the question loop and finalizes daily reports.
type InterviewService struct {
	writer        driven.ReportWriter
	store         driven.ReportStore
	questionnaire driven.QuestionnaireLoader
	location      driven.LocationLookup
	weather       driven.WeatherLookup
	publisher     driven.ReportPublisher
	maxRetries    int
	now           func() time.Time
	newID         func() string
}

// NewInterviewService creates a new interview service.
// The questionnaire, location, weather and publisher parameters are optional
// (can be nil): the built-in questions and enrichment fallbacks are used and
// nothing is published. A negative maxRetries selects the default.
func NewInterviewService(
	writer driven.ReportWriter,
	store driven.ReportStore,
	questionnaire driven.QuestionnaireLoader,
	location driven.LocationLookup,
	weather driven.WeatherLookup,
	publisher driven.ReportPublisher,
	maxRetries int,
) *InterviewService {
	if maxRetries < 0 {
		maxRetries = domain.DefaultMaxRetries
	}
	return &InterviewService{
		writer:        writer,
		store:         store,
		questionnaire: questionnaire,
		location:      location,
		weather:       weather,
		publisher:     publisher,
		maxRetries:    maxRetries,
		now:           time.Now,
		newID:         uuid.NewString,
	}
}

// WithClock overrides the time source for session dates and archive stamps.
func (s *InterviewService) WithClock(now func() time.Time) *InterviewService {
	s.now = now
	return s
}

// NewSession starts an interview with the configured base questions.
func (s *InterviewService) NewSession(ctx context.Context) (*domain.Session, error) {
	base := domain.DefaultQuestionnaire()
	if s.questionnaire != nil {
		loaded, err := s.questionnaire.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load questionnaire: %w", err)
		}
		base = loaded
	}
	return s.NewSessionFrom(ctx, base)
}

// NewSessionFrom starts an interview with the given base questions.
func (s *InterviewService) NewSessionFrom(ctx context.Context, base []domain.Question) (*domain.Session, error) {
	base, err := domain.ValidateQuestionnaire(base)
	if err != nil {
		return nil, fmt.Errorf("load questionnaire: %w", err)
	}

	session := domain.NewSession(s.newID(), base, s.now())
	session.Location, session.Weather = s.enrich(ctx)

	logger.Section("Session")
	logger.Info("session %s: %d base questions", session.ID, session.Queue.Len())
	logger.Info("location=%q weather=%q", session.Location, session.Weather)

	return session, nil
}

// Answer applies one response to the current question.
//
// A concrete question stores the response verbatim and advances. A count
// question either expands (follow-ups appended at the tail of the queue, after
// everything already scheduled) and advances, or, when no count can be read,
// leaves the queue and cursor untouched so the same question is asked again.
// Once the retry budget is spent the count question is skipped with no entries.
func (s *InterviewService) Answer(session *domain.Session, response string) (domain.Turn, error) {
	q, ok := session.Current()
	if !ok {
		return domain.Turn{}, domain.ErrSessionComplete
	}

	turn := domain.Turn{
		Number:   session.QuestionNumber(),
		Question: q,
		Response: response,
	}

	if !q.IsCount() {
		session.Answers.Set(q.Coordinate, response)
		session.Retries = 0
		session.Queue.Advance()
		turn.Outcome = domain.TurnStored
		turn.State = session.State()
		logger.Debug("Q%d stored at %s", turn.Number, q.Coordinate)
		return turn, nil
	}

	count, found := domain.ExtractCount(response)
	if found && q.Category.IsValid() && count > q.Category.MaxEntries() {
		logger.Warn("Q%d: count %d does not fit the sheet (max %d)", turn.Number, count, q.Category.MaxEntries())
		found = false
	}
	switch {
	case found:
		added := domain.Expand(q.Category, count)
		if !q.Category.IsValid() {
			logger.Warn("Q%d has no entry category; count %d queues nothing", turn.Number, count)
		}
		session.Queue.Append(added...)
		session.Retries = 0
		session.Queue.Advance()
		turn.Outcome = domain.TurnExpanded
		turn.Count = count
		turn.Added = added
		logger.Debug("Q%d count=%d queued %d questions (queue length %d)",
			turn.Number, count, len(added), session.Queue.Len())

	case session.Retries >= s.maxRetries:
		logger.Warn("Q%d: no number after %d retries, skipping %q", turn.Number, session.Retries, q.Prompt)
		session.Retries = 0
		session.Queue.Advance()
		turn.Outcome = domain.TurnSkipped

	default:
		session.Retries++
		turn.Outcome = domain.TurnRetry
		logger.Debug("Q%d: no number in %q (retry %d/%d)", turn.Number, response, session.Retries, s.maxRetries)
	}

	turn.State = session.State()
	return turn, nil
}

// Conduct runs the blocking speak/listen loop.
// Exactly one question is in flight at a time; the loop waits on the channel
// for each transcript before applying it.
func (s *InterviewService) Conduct(
	ctx context.Context,
	session *domain.Session,
	channel driving.SpeechChannel,
	onTurn func(domain.Turn),
) (*domain.Report, error) {
	if channel == nil {
		return nil, domain.ErrSpeechUnavailable
	}

	for {
		q, ok := session.Current()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		number := session.QuestionNumber()
		if err := channel.Speak(ctx, q.Prompt); err != nil {
			// The prompt is still shown by the caller; a silent question is not fatal.
			logger.Warn("Q%d: speak failed: %v", number, err)
		}

		response, err := channel.Listen(ctx)
		if err != nil {
			return nil, fmt.Errorf("listen for Q%d: %w", number, err)
		}

		turn, err := s.Answer(session, response)
		if err != nil {
			return nil, err
		}
		if onTurn != nil {
			onTurn(turn)
		}
	}

	return s.Finalize(ctx, session)
}

// Finalize writes the report, archives it and publishes it when configured.
// The same session always produces the same report cells.
func (s *InterviewService) Finalize(ctx context.Context, session *domain.Session) (*domain.Report, error) {
	if session.State() != domain.StateComplete {
		return nil, domain.ErrSessionIncomplete
	}

	logger.Section("Finalize")
	report := domain.BuildReport(session)

	path, err := s.writer.Write(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	report.OutputPath = path
	logger.Info("wrote %d cells to %s", len(report.Cells), path)

	if s.publisher != nil {
		location, err := s.publisher.Publish(ctx, report, path)
		if err != nil {
			logger.Warn("publish report: %v", err)
		} else {
			report.PublishedTo = location
			logger.Info("published to %s", location)
		}
	}

	report.CreatedAt = s.now()
	if s.store != nil {
		if err := s.store.Save(ctx, report); err != nil {
			return nil, fmt.Errorf("archive report: %w", err)
		}
	}

	return report, nil
}
