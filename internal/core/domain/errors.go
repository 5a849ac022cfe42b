package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Interview Errors.

	// ErrSessionComplete indicates a response was submitted after the last question.
	ErrSessionComplete = errors.New("session complete")

	// ErrSessionIncomplete indicates finalization was requested while questions remain.
	ErrSessionIncomplete = errors.New("session incomplete")

	// ErrNoSession indicates no interview session has been started.
	ErrNoSession = errors.New("no active session")

	// ErrInvalidQuestionnaire indicates a question set that cannot drive an interview.
	ErrInvalidQuestionnaire = errors.New("invalid questionnaire")

	// ErrSpeechUnavailable indicates no listener or speaker is configured.
	// The turn loop needs both; single-turn answering does not.
	ErrSpeechUnavailable = errors.New("speech collaborator unavailable")

	// ErrListenerClosed indicates the transcript source has no more input.
	ErrListenerClosed = errors.New("listener closed")

	// Report Errors.

	// ErrTemplateNotFound indicates the report template file does not exist.
	ErrTemplateNotFound = errors.New("report template not found")

	// ErrPublisherUnavailable indicates report publishing is not configured.
	ErrPublisherUnavailable = errors.New("report publisher unavailable")

	// Settings Errors.

	// ErrUnknownSetting indicates a settings key that fieldreport does not recognise.
	ErrUnknownSetting = errors.New("unknown setting")
)
