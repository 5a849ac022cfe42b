package driven

import "context"

// Listener delivers one transcribed response per call.
// Audio capture and speech-to-text happen outside fieldreport; Listen blocks
// until the next transcript is available, the context is cancelled, or the
// source is exhausted (domain.ErrListenerClosed).
type Listener interface {
	Listen(ctx context.Context) (string, error)
}

// Speaker presents a prompt to the respondent (text-to-speech, console, ...).
type Speaker interface {
	Speak(ctx context.Context, text string) error
}
