package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
)

// StartInput is the input schema for the interview_start tool.
type StartInput struct {
	Questions []QuestionInput `json:"questions,omitempty" jsonschema:"base questions to ask instead of the configured questionnaire"`
}

// QuestionInput is one custom base question.
type QuestionInput struct {
	Prompt     string `json:"prompt" jsonschema:"the question read to the superintendent"`
	Coordinate string `json:"coordinate,omitempty" jsonschema:"target cell such as C4; omit for count questions"`
	Category   string `json:"category,omitempty" jsonschema:"labor, subcontractor, visitor or work_performed"`
}

// StatusInput is the input schema for the interview_status tool.
type StatusInput struct{}

// StatusOutput describes the running session.
type StatusOutput struct {
	SessionID      string `json:"session_id"`
	State          string `json:"state"`
	QuestionNumber int    `json:"question_number,omitempty"`
	Prompt         string `json:"prompt,omitempty"`
	Remaining      int    `json:"remaining"`
	Location       string `json:"location"`
	Weather        string `json:"weather"`
}

// AnswerInput is the input schema for the interview_answer tool.
type AnswerInput struct {
	Response string `json:"response" jsonschema:"the transcribed answer to the current question"`
}

// AnswerOutput is the result of applying one answer.
type AnswerOutput struct {
	Outcome string       `json:"outcome"`
	Count   int          `json:"count,omitempty"`
	Added   int          `json:"added,omitempty"`
	Status  StatusOutput `json:"status"`
}

// FinalizeInput is the input schema for the interview_finalize tool.
type FinalizeInput struct{}

// FinalizeOutput describes the written report.
type FinalizeOutput struct {
	SessionID   string `json:"session_id"`
	OutputPath  string `json:"output_path"`
	PublishedTo string `json:"published_to,omitempty"`
	CellCount   int    `json:"cell_count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "interview_start",
		Description: "Start a new daily report interview, replacing any unfinished one. " +
			"Returns the first question to ask.",
	}, s.handleStart)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "interview_status",
		Description: "Show the current question and progress of the running interview",
	}, s.handleStatus)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "interview_answer",
		Description: "Submit the superintendent's transcribed answer to the current question. " +
			"A 'retry' outcome means the same question must be asked again.",
	}, s.handleAnswer)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "interview_finalize",
		Description: "Write the finished interview into the report spreadsheet",
	}, s.handleFinalize)
}

// handleStart handles the interview_start tool invocation.
func (s *Server) handleStart(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input StartInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	var (
		session *domain.Session
		err     error
	)
	if len(input.Questions) > 0 {
		session, err = s.ports.Interview.NewSessionFrom(ctx, toQuestions(input.Questions))
	} else {
		session, err = s.ports.Interview.NewSession(ctx)
	}
	if err != nil {
		return nil, StatusOutput{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session

	return nil, status(session), nil
}

// handleStatus handles the interview_status tool invocation.
func (s *Server) handleStatus(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ StatusInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, StatusOutput{}, domain.ErrNoSession
	}
	return nil, status(s.session), nil
}

// handleAnswer handles the interview_answer tool invocation.
func (s *Server) handleAnswer(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input AnswerInput,
) (*mcp.CallToolResult, AnswerOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, AnswerOutput{}, domain.ErrNoSession
	}

	turn, err := s.ports.Interview.Answer(s.session, input.Response)
	if err != nil {
		return nil, AnswerOutput{}, err
	}

	return nil, AnswerOutput{
		Outcome: string(turn.Outcome),
		Count:   turn.Count,
		Added:   len(turn.Added),
		Status:  status(s.session),
	}, nil
}

// handleFinalize handles the interview_finalize tool invocation.
// The session is released once its report is written.
func (s *Server) handleFinalize(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ FinalizeInput,
) (*mcp.CallToolResult, FinalizeOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, FinalizeOutput{}, domain.ErrNoSession
	}

	report, err := s.ports.Interview.Finalize(ctx, s.session)
	if err != nil {
		return nil, FinalizeOutput{}, err
	}
	s.session = nil

	return nil, FinalizeOutput{
		SessionID:   report.SessionID,
		OutputPath:  report.OutputPath,
		PublishedTo: report.PublishedTo,
		CellCount:   len(report.Cells),
	}, nil
}

func status(session *domain.Session) StatusOutput {
	out := StatusOutput{
		SessionID: session.ID,
		State:     session.State().String(),
		Remaining: session.Queue.Remaining(),
		Location:  session.Location,
		Weather:   session.Weather,
	}
	if q, ok := session.Current(); ok {
		out.QuestionNumber = session.QuestionNumber()
		out.Prompt = q.Prompt
	}
	return out
}

func toQuestions(in []QuestionInput) []domain.Question {
	questions := make([]domain.Question, len(in))
	for i, q := range in {
		questions[i] = domain.Question{
			Prompt:     q.Prompt,
			Coordinate: domain.Coordinate(q.Coordinate),
			Category:   domain.Category(q.Category),
		}
	}
	return questions
}
