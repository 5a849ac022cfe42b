package cli

import (
	"context"

	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
	"github.com/custodia-labs/fieldreport-cli/internal/core/ports/driving"
)

// mockInterviewService implements driving.InterviewService for testing.
type mockInterviewService struct {
	NewSessionFunc     func(ctx context.Context) (*domain.Session, error)
	NewSessionFromFunc func(ctx context.Context, base []domain.Question) (*domain.Session, error)
	ConductFunc        func(ctx context.Context, s *domain.Session, ch driving.SpeechChannel, onTurn func(domain.Turn)) (*domain.Report, error)
}

func (m *mockInterviewService) NewSession(ctx context.Context) (*domain.Session, error) {
	if m.NewSessionFunc != nil {
		return m.NewSessionFunc(ctx)
	}
	return domain.NewSession("0123456789abcdef", domain.DefaultQuestionnaire(), testNow), nil
}

func (m *mockInterviewService) NewSessionFrom(ctx context.Context, base []domain.Question) (*domain.Session, error) {
	if m.NewSessionFromFunc != nil {
		return m.NewSessionFromFunc(ctx, base)
	}
	return domain.NewSession("from-file", base, testNow), nil
}

func (m *mockInterviewService) Answer(_ *domain.Session, _ string) (domain.Turn, error) {
	return domain.Turn{}, nil
}

func (m *mockInterviewService) Conduct(
	ctx context.Context, s *domain.Session, ch driving.SpeechChannel, onTurn func(domain.Turn),
) (*domain.Report, error) {
	if m.ConductFunc != nil {
		return m.ConductFunc(ctx, s, ch, onTurn)
	}
	return &domain.Report{SessionID: s.ID, OutputPath: "VoiceReport.xlsx"}, nil
}

func (m *mockInterviewService) Finalize(_ context.Context, s *domain.Session) (*domain.Report, error) {
	return &domain.Report{SessionID: s.ID}, nil
}

// mockReportService implements driving.ReportService for testing.
type mockReportService struct {
	reports map[string]*domain.Report
	deleted []string
}

func (m *mockReportService) List(_ context.Context) ([]domain.ReportSummary, error) {
	summaries := make([]domain.ReportSummary, 0, len(m.reports))
	for _, id := range []string{"bbb222", "aaa111"} {
		if r, ok := m.reports[id]; ok {
			summaries = append(summaries, r.Summary())
		}
	}
	return summaries, nil
}

func (m *mockReportService) Get(_ context.Context, id string) (*domain.Report, error) {
	if r, ok := m.reports[id]; ok {
		return r, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockReportService) Delete(_ context.Context, id string) error {
	if _, ok := m.reports[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.reports, id)
	m.deleted = append(m.deleted, id)
	return nil
}

// mockSettingsService implements driving.SettingsService for testing.
type mockSettingsService struct {
	settings    domain.AppSettings
	validateErr error
	setCalls    map[string]string
}

func newMockSettingsService() *mockSettingsService {
	return &mockSettingsService{
		settings: domain.DefaultAppSettings(),
		setCalls: make(map[string]string),
	}
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(settings *domain.AppSettings) error {
	m.settings = *settings
	return nil
}

func (m *mockSettingsService) Set(key, value string) error {
	if key == "unknown.key" {
		return domain.ErrUnknownSetting
	}
	m.setCalls[key] = value
	return nil
}

func (m *mockSettingsService) Keys() []string {
	return []string{"interview.max_retries", "report.output_path"}
}

func (m *mockSettingsService) Validate() error {
	return m.validateErr
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}
