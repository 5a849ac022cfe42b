package domain

// QuestionQueue is the ordered interview script.
// Questions are only ever appended at the tail and the cursor only moves
// forward, so neither the length nor the index can decrease.
type QuestionQueue struct {
	questions []Question
	index     int
}

// NewQuestionQueue creates a queue positioned at the first question.
func NewQuestionQueue(base []Question) *QuestionQueue {
	q := &QuestionQueue{questions: make([]Question, len(base))}
	copy(q.questions, base)
	return q
}

// Current returns the question awaiting a response.
// The boolean is false once every question has been consumed.
func (q *QuestionQueue) Current() (Question, bool) {
	if q.Done() {
		return Question{}, false
	}
	return q.questions[q.index], true
}

// Advance moves past the current question. It is a no-op when done.
func (q *QuestionQueue) Advance() {
	if !q.Done() {
		q.index++
	}
}

// Append adds questions at the tail.
// Generated follow-ups therefore come after every question already queued.
func (q *QuestionQueue) Append(questions ...Question) {
	q.questions = append(q.questions, questions...)
}

// Len returns the number of queued questions, consumed or not.
func (q *QuestionQueue) Len() int {
	return len(q.questions)
}

// Index returns the 0-based position of the current question.
func (q *QuestionQueue) Index() int {
	return q.index
}

// Remaining returns how many questions are still to be asked.
func (q *QuestionQueue) Remaining() int {
	return len(q.questions) - q.index
}

// Done returns true when the cursor has reached the end.
func (q *QuestionQueue) Done() bool {
	return q.index >= len(q.questions)
}

// Questions returns a copy of the full script.
func (q *QuestionQueue) Questions() []Question {
	out := make([]Question, len(q.questions))
	copy(out, q.questions)
	return out
}
