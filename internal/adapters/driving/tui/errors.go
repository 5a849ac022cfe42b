package tui

import "errors"

// ErrMissingInterviewService is returned when the interview service is not provided.
var ErrMissingInterviewService = errors.New("tui: interview service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
