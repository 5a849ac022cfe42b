package mcp

import (
	"context"

	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
	"github.com/custodia-labs/fieldreport-cli/internal/core/ports/driving"
)

// mockInterviewService is a mock implementation of driving.InterviewService.
type mockInterviewService struct {
	NewSessionFunc func(ctx context.Context) (*domain.Session, error)
	AnswerFunc     func(s *domain.Session, response string) (domain.Turn, error)
	FinalizeFunc   func(ctx context.Context, s *domain.Session) (*domain.Report, error)

	startedFrom []domain.Question
}

func (m *mockInterviewService) NewSession(ctx context.Context) (*domain.Session, error) {
	if m.NewSessionFunc != nil {
		return m.NewSessionFunc(ctx)
	}
	return domain.NewSession("session-1", domain.DefaultQuestionnaire(), testNow), nil
}

func (m *mockInterviewService) NewSessionFrom(_ context.Context, base []domain.Question) (*domain.Session, error) {
	m.startedFrom = base
	return domain.NewSession("session-custom", base, testNow), nil
}

func (m *mockInterviewService) Answer(s *domain.Session, response string) (domain.Turn, error) {
	if m.AnswerFunc != nil {
		return m.AnswerFunc(s, response)
	}
	return domain.Turn{}, nil
}

func (m *mockInterviewService) Conduct(
	_ context.Context, _ *domain.Session, _ driving.SpeechChannel, _ func(domain.Turn),
) (*domain.Report, error) {
	return nil, domain.ErrSpeechUnavailable
}

func (m *mockInterviewService) Finalize(ctx context.Context, s *domain.Session) (*domain.Report, error) {
	if m.FinalizeFunc != nil {
		return m.FinalizeFunc(ctx, s)
	}
	return domain.BuildReport(s), nil
}

// mockReportService is a mock implementation of driving.ReportService.
type mockReportService struct {
	summaries []domain.ReportSummary
	report    *domain.Report
	err       error
}

func (m *mockReportService) List(_ context.Context) ([]domain.ReportSummary, error) {
	return m.summaries, m.err
}

func (m *mockReportService) Get(_ context.Context, _ string) (*domain.Report, error) {
	return m.report, m.err
}

func (m *mockReportService) Delete(_ context.Context, _ string) error {
	return m.err
}

// mockReportWriter records written reports for end-to-end tool tests.
type mockReportWriter struct {
	written []*domain.Report
}

func (m *mockReportWriter) Write(_ context.Context, report *domain.Report) (string, error) {
	m.written = append(m.written, report)
	return "VoiceReport.xlsx", nil
}
