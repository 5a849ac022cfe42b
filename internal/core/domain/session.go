package domain

import "time"

// SessionState describes where an interview stands between turns.
type SessionState string

// Interview states.
const (
	// StateAwaitingResponse means the current question has not been answered yet.
	StateAwaitingResponse SessionState = "awaiting_response"

	// StateRetrying means the last response to a count question had no number.
	StateRetrying SessionState = "retrying"

	// StateComplete means every queued question has been consumed.
	StateComplete SessionState = "complete"
)

// String returns the string representation.
func (s SessionState) String() string {
	return string(s)
}

// Session is one interview run.
// It is created once, mutated once per turn by the interview service and
// handed to finalization when complete. There is a single writer; callers
// sharing a session across goroutines must serialise access themselves.
type Session struct {
	// ID uniquely identifies the session and the archived report.
	ID string

	// Queue is the interview script and cursor.
	Queue *QuestionQueue

	// Answers collects verbatim responses to concrete questions.
	Answers *AnswerStore

	// Retries counts consecutive unparseable responses to the current count question.
	Retries int

	// Location is the human-readable site location.
	Location string

	// Weather is the weather summary at interview start.
	Weather string

	// Date is the interview date.
	Date time.Time

	// StartedAt is when the session was created.
	StartedAt time.Time
}

// NewSession creates a session positioned at the first base question.
func NewSession(id string, base []Question, now time.Time) *Session {
	return &Session{
		ID:        id,
		Queue:     NewQuestionQueue(base),
		Answers:   NewAnswerStore(),
		Date:      now,
		StartedAt: now,
	}
}

// State derives the current state from the queue and retry counter.
func (s *Session) State() SessionState {
	switch {
	case s.Queue.Done():
		return StateComplete
	case s.Retries > 0:
		return StateRetrying
	default:
		return StateAwaitingResponse
	}
}

// Current returns the question awaiting a response.
func (s *Session) Current() (Question, bool) {
	return s.Queue.Current()
}

// QuestionNumber returns the 1-based number of the current question.
func (s *Session) QuestionNumber() int {
	return s.Queue.Index() + 1
}

// TurnOutcome classifies what a single response did to the session.
type TurnOutcome string

// Turn outcomes.
const (
	// TurnStored means the response was written to the question's cell.
	TurnStored TurnOutcome = "stored"

	// TurnExpanded means a count was parsed and follow-ups were queued.
	TurnExpanded TurnOutcome = "expanded"

	// TurnRetry means no count was found; the same question must be asked again.
	TurnRetry TurnOutcome = "retry"

	// TurnSkipped means retries ran out and the count question was passed with no entries.
	TurnSkipped TurnOutcome = "skipped"
)

// Turn is the result of applying one response.
type Turn struct {
	// Number is the 1-based number of the question that was answered.
	Number int

	// Question is the question that was answered.
	Question Question

	// Response is the transcript as received.
	Response string

	// Outcome is what the response did.
	Outcome TurnOutcome

	// Count is the parsed count for expanded turns.
	Count int

	// Added lists follow-up questions appended to the queue.
	Added []Question

	// State is the session state after the turn.
	State SessionState
}
