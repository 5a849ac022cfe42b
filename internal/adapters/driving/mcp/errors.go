// Package mcp provides an MCP (Model Context Protocol) server adapter for fieldreport.
// It lets an AI assistant relay transcribed answers into a daily report interview.
package mcp

import "errors"

// ErrMissingInterviewService is returned when the interview service is not provided.
var ErrMissingInterviewService = errors.New("mcp: interview service is required")
