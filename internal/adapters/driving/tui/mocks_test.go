package tui

import (
	"context"

	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
	"github.com/custodia-labs/fieldreport-cli/internal/core/ports/driving"
)

// MockInterviewService is a mock implementation of driving.InterviewService.
type MockInterviewService struct {
	NewSessionFunc func(ctx context.Context) (*domain.Session, error)
	AnswerFunc     func(session *domain.Session, response string) (domain.Turn, error)
	FinalizeFunc   func(ctx context.Context, session *domain.Session) (*domain.Report, error)
}

var _ driving.InterviewService = (*MockInterviewService)(nil)

func (m *MockInterviewService) NewSession(ctx context.Context) (*domain.Session, error) {
	if m.NewSessionFunc != nil {
		return m.NewSessionFunc(ctx)
	}
	return domain.NewSession("0123456789abcdef", domain.DefaultQuestionnaire(), testNow), nil
}

func (m *MockInterviewService) NewSessionFrom(ctx context.Context, _ []domain.Question) (*domain.Session, error) {
	return m.NewSession(ctx)
}

func (m *MockInterviewService) Answer(session *domain.Session, response string) (domain.Turn, error) {
	if m.AnswerFunc != nil {
		return m.AnswerFunc(session, response)
	}
	q, _ := session.Current()
	session.Queue.Advance()
	return domain.Turn{Question: q, Response: response, Outcome: domain.TurnStored, State: session.State()}, nil
}

func (m *MockInterviewService) Conduct(
	_ context.Context, _ *domain.Session, _ driving.SpeechChannel, _ func(domain.Turn),
) (*domain.Report, error) {
	return nil, nil
}

func (m *MockInterviewService) Finalize(ctx context.Context, session *domain.Session) (*domain.Report, error) {
	if m.FinalizeFunc != nil {
		return m.FinalizeFunc(ctx, session)
	}
	return &domain.Report{SessionID: session.ID, OutputPath: domain.DefaultOutputPath}, nil
}

// MockSettingsService is a mock implementation of driving.SettingsService.
type MockSettingsService struct {
	Settings    *domain.AppSettings
	ValidateErr error
}

var _ driving.SettingsService = (*MockSettingsService)(nil)

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	if m.Settings == nil {
		defaults := domain.DefaultAppSettings()
		return &defaults, nil
	}
	return m.Settings, nil
}

func (m *MockSettingsService) Save(settings *domain.AppSettings) error {
	m.Settings = settings
	return nil
}

func (m *MockSettingsService) Set(_, _ string) error { return nil }

func (m *MockSettingsService) Keys() []string { return nil }

func (m *MockSettingsService) Validate() error { return m.ValidateErr }

func (m *MockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}
