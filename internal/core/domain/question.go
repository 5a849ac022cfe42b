package domain

import (
	"strconv"
	"strings"
)

// Category identifies which kind of repeated entry a count question expands into.
type Category string

// Available entry categories.
const (
	// CategoryNone marks a question that does not expand.
	CategoryNone Category = ""

	// CategoryLabor is a self-performed labor line (position, crew, hours).
	CategoryLabor Category = "labor"

	// CategorySubcontractor is a subcontractor line (company, crew, hours).
	CategorySubcontractor Category = "subcontractor"

	// CategoryVisitor is a site visitor line (company, name, hours).
	CategoryVisitor Category = "visitor"

	// CategoryWorkPerformed is a work-performed line (work, equipment, contractor).
	CategoryWorkPerformed Category = "work_performed"
)

// AllCategories returns every expandable category.
func AllCategories() []Category {
	return []Category{
		CategoryLabor,
		CategorySubcontractor,
		CategoryVisitor,
		CategoryWorkPerformed,
	}
}

// IsValid returns true if the category is recognised.
func (c Category) IsValid() bool {
	switch c {
	case CategoryLabor, CategorySubcontractor, CategoryVisitor, CategoryWorkPerformed:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c Category) String() string {
	return string(c)
}

// Description returns a human-readable description of the category.
func (c Category) Description() string {
	switch c {
	case CategoryLabor:
		return "Labor entries"
	case CategorySubcontractor:
		return "Subcontractor entries"
	case CategoryVisitor:
		return "Visitor entries"
	case CategoryWorkPerformed:
		return "Work performed entries"
	default:
		return "Unknown"
	}
}

// DetectCategory infers a category from count-question wording.
// Only used when loading question sets that omit an explicit category;
// returns CategoryNone when nothing matches.
func DetectCategory(prompt string) Category {
	switch {
	case strings.Contains(prompt, "Trident Builders"):
		return CategoryLabor
	case strings.Contains(prompt, "Subcontractor"):
		return CategorySubcontractor
	case strings.Contains(strings.ToLower(prompt), "visitor"):
		return CategoryVisitor
	case strings.Contains(prompt, "Work Performed"):
		return CategoryWorkPerformed
	default:
		return CategoryNone
	}
}

// Question is an immutable interview prompt.
// A question with a Coordinate is concrete: its answer is written to that cell.
// A question without one is a count question: its answer says how many
// follow-up entries of Category to generate.
type Question struct {
	// Prompt is the text read to the respondent.
	Prompt string `json:"prompt"`

	// Coordinate is the target cell; empty for count questions.
	Coordinate Coordinate `json:"coordinate,omitempty"`

	// Category is the expansion kind for count questions.
	Category Category `json:"category,omitempty"`
}

// IsCount returns true if the answer to this question is a count.
func (q Question) IsCount() bool {
	return q.Coordinate.IsZero()
}

// Fixed cells bound to the built-in base questions.
const (
	CoordContractNumber Coordinate = "C4"
	CoordSuperintendent Coordinate = "C5"
	CoordJobName        Coordinate = "F4"
	CoordReportNumber   Coordinate = "K5"
	CoordHoursWorked    Coordinate = "B26"
	CoordWeatherImpact  Coordinate = "J10"
)

// DefaultQuestionnaire returns the built-in daily report base questions.
// A new slice is returned on each call.
func DefaultQuestionnaire() []Question {
	return []Question{
		{Prompt: "What is the contract number?", Coordinate: CoordContractNumber},
		{Prompt: "Who is the superintendent?", Coordinate: CoordSuperintendent},
		{Prompt: "What is the job name?", Coordinate: CoordJobName},
		{Prompt: "What is the report number?", Coordinate: CoordReportNumber},
		{Prompt: "How many hours were worked?", Coordinate: CoordHoursWorked},
		{Prompt: "Is there a weather impact? (Yes or No)", Coordinate: CoordWeatherImpact},
		{Prompt: "How many Trident Builders labor entries?", Category: CategoryLabor},
		{Prompt: "How many Subcontractor labor entries?", Category: CategorySubcontractor},
		{Prompt: "How many visitor entries?", Category: CategoryVisitor},
		{Prompt: "How many 'Work Performed This Date' entries?", Category: CategoryWorkPerformed},
	}
}

// ValidateQuestionnaire checks that a question set can drive an interview.
// Count questions without a category are resolved through DetectCategory;
// the returned slice carries the resolved categories.
func ValidateQuestionnaire(questions []Question) ([]Question, error) {
	if len(questions) == 0 {
		return nil, ErrInvalidQuestionnaire
	}

	seen := make(map[Coordinate]bool, len(questions))
	resolved := make([]Question, len(questions))
	for i, q := range questions {
		if strings.TrimSpace(q.Prompt) == "" {
			return nil, &QuestionnaireError{Index: i, Reason: "empty prompt"}
		}
		if q.IsCount() {
			if q.Category == CategoryNone {
				q.Category = DetectCategory(q.Prompt)
			}
			if !q.Category.IsValid() {
				return nil, &QuestionnaireError{Index: i, Reason: "count question has no known category"}
			}
		} else {
			if !q.Coordinate.IsValid() {
				return nil, &QuestionnaireError{Index: i, Reason: "malformed coordinate " + q.Coordinate.String()}
			}
			if seen[q.Coordinate] {
				return nil, &QuestionnaireError{Index: i, Reason: "duplicate coordinate " + q.Coordinate.String()}
			}
			seen[q.Coordinate] = true
			q.Category = CategoryNone
		}
		resolved[i] = q
	}
	return resolved, nil
}

// QuestionnaireError describes why a question in a set was rejected.
type QuestionnaireError struct {
	Index  int
	Reason string
}

func (e *QuestionnaireError) Error() string {
	return "question " + strconv.Itoa(e.Index+1) + ": " + e.Reason
}

// Unwrap allows errors.Is(err, ErrInvalidQuestionnaire).
func (e *QuestionnaireError) Unwrap() error {
	return ErrInvalidQuestionnaire
}
