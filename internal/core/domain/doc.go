// Package domain defines the core business entities for fieldreport.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Question: A prompt with an optional target cell
//   - QuestionQueue: The ordered, tail-growing interview script
//   - AnswerStore: Verbatim answers keyed by cell coordinate
//   - Session: One interview run from first question to finalized report
//   - Report: The flat cell map handed to the spreadsheet writer
//
// The pure interview rules also live here: ExtractCount parses a count
// from transcribed speech and Expand turns a count into follow-up questions.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
