package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
	"github.com/custodia-labs/fieldreport-cli/internal/core/services"
)

var testNow = time.Date(2024, 6, 3, 14, 30, 0, 0, time.UTC)

func newTestServer(t *testing.T, interview *mockInterviewService) *Server {
	t.Helper()
	server, err := NewServer(&Ports{Interview: interview})
	require.NoError(t, err)
	return server
}

func TestServer_handleStart(t *testing.T) {
	ctx := context.Background()

	t.Run("starts with configured questions", func(t *testing.T) {
		server := newTestServer(t, &mockInterviewService{})

		_, output, err := server.handleStart(ctx, nil, StartInput{})

		require.NoError(t, err)
		assert.Equal(t, "session-1", output.SessionID)
		assert.Equal(t, "awaiting_response", output.State)
		assert.Equal(t, 1, output.QuestionNumber)
		assert.Equal(t, "What is the contract number?", output.Prompt)
		assert.Equal(t, len(domain.DefaultQuestionnaire()), output.Remaining)
	})

	t.Run("starts with custom questions", func(t *testing.T) {
		interview := &mockInterviewService{}
		server := newTestServer(t, interview)

		_, output, err := server.handleStart(ctx, nil, StartInput{Questions: []QuestionInput{
			{Prompt: "Job name?", Coordinate: "F4"},
			{Prompt: "How many visitors?", Category: "visitor"},
		}})

		require.NoError(t, err)
		assert.Equal(t, "session-custom", output.SessionID)
		assert.Equal(t, []domain.Question{
			{Prompt: "Job name?", Coordinate: "F4"},
			{Prompt: "How many visitors?", Category: domain.CategoryVisitor},
		}, interview.startedFrom)
	})

	t.Run("returns error on start failure", func(t *testing.T) {
		server := newTestServer(t, &mockInterviewService{
			NewSessionFunc: func(_ context.Context) (*domain.Session, error) {
				return nil, domain.ErrInvalidQuestionnaire
			},
		})

		_, _, err := server.handleStart(ctx, nil, StartInput{})

		assert.ErrorIs(t, err, domain.ErrInvalidQuestionnaire)
		_, _, err = server.handleStatus(ctx, nil, StatusInput{})
		assert.ErrorIs(t, err, domain.ErrNoSession)
	})
}

func TestServer_ToolsRequireSession(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, &mockInterviewService{})

	_, _, err := server.handleStatus(ctx, nil, StatusInput{})
	assert.ErrorIs(t, err, domain.ErrNoSession)

	_, _, err = server.handleAnswer(ctx, nil, AnswerInput{Response: "12-345"})
	assert.ErrorIs(t, err, domain.ErrNoSession)

	_, _, err = server.handleFinalize(ctx, nil, FinalizeInput{})
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestServer_handleAnswer_PropagatesError(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, &mockInterviewService{
		AnswerFunc: func(_ *domain.Session, _ string) (domain.Turn, error) {
			return domain.Turn{}, errors.New("answer failed")
		},
	})
	_, _, err := server.handleStart(ctx, nil, StartInput{})
	require.NoError(t, err)

	_, _, err = server.handleAnswer(ctx, nil, AnswerInput{Response: "x"})

	assert.ErrorContains(t, err, "answer failed")
}

func TestServer_handleFinalize_KeepsSessionOnFailure(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, &mockInterviewService{
		FinalizeFunc: func(_ context.Context, _ *domain.Session) (*domain.Report, error) {
			return nil, domain.ErrSessionIncomplete
		},
	})
	_, _, err := server.handleStart(ctx, nil, StartInput{})
	require.NoError(t, err)

	_, _, err = server.handleFinalize(ctx, nil, FinalizeInput{})

	assert.ErrorIs(t, err, domain.ErrSessionIncomplete)
	_, status, err := server.handleStatus(ctx, nil, StatusInput{})
	require.NoError(t, err)
	assert.Equal(t, "session-1", status.SessionID)
}

func TestServer_FullInterview(t *testing.T) {
	ctx := context.Background()
	writer := &mockReportWriter{}
	store := memory.NewReportStore()
	interview := services.NewInterviewService(writer, store, nil, nil, nil, nil, 1)
	server, err := NewServer(&Ports{Interview: interview})
	require.NoError(t, err)

	_, started, err := server.handleStart(ctx, nil, StartInput{Questions: []QuestionInput{
		{Prompt: "What is the contract number?", Coordinate: "C4"},
		{Prompt: "How many visitor entries?", Category: "visitor"},
	}})
	require.NoError(t, err)
	assert.Equal(t, 2, started.Remaining)

	_, out, err := server.handleAnswer(ctx, nil, AnswerInput{Response: "12-345"})
	require.NoError(t, err)
	assert.Equal(t, "stored", out.Outcome)
	assert.Equal(t, 2, out.Status.QuestionNumber)

	_, out, err = server.handleAnswer(ctx, nil, AnswerInput{Response: "not sure"})
	require.NoError(t, err)
	assert.Equal(t, "retry", out.Outcome)
	assert.Equal(t, "retrying", out.Status.State)
	assert.Equal(t, "How many visitor entries?", out.Status.Prompt)

	_, out, err = server.handleAnswer(ctx, nil, AnswerInput{Response: "one visitor"})
	require.NoError(t, err)
	assert.Equal(t, "expanded", out.Outcome)
	assert.Equal(t, 1, out.Count)
	assert.Equal(t, 3, out.Added)
	assert.Equal(t, 3, out.Status.Remaining)

	for _, response := range []string{"Acme Inspections", "Lee Park", "2"} {
		_, out, err = server.handleAnswer(ctx, nil, AnswerInput{Response: response})
		require.NoError(t, err)
	}
	assert.Equal(t, "complete", out.Status.State)
	assert.Zero(t, out.Status.QuestionNumber)

	_, final, err := server.handleFinalize(ctx, nil, FinalizeInput{})
	require.NoError(t, err)
	assert.Equal(t, started.SessionID, final.SessionID)
	assert.Equal(t, "VoiceReport.xlsx", final.OutputPath)
	// C4 + three visitor cells + location, weather and date.
	assert.Equal(t, 7, final.CellCount)
	require.Len(t, writer.written, 1)

	archived, err := store.Get(ctx, started.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "12-345", archived.Cells["C4"])

	_, _, err = server.handleStatus(ctx, nil, StatusInput{})
	assert.ErrorIs(t, err, domain.ErrNoSession)
}
