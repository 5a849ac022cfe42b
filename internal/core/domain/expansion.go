package domain

import "fmt"

// entryField is one column of a repeated entry row.
type entryField struct {
	column string
	prompt string // format with the 1-based entry number
}

// entryLayout is the per-category row template.
type entryLayout struct {
	baseRow int
	fields  [3]entryField
}

var entryLayouts = map[Category]entryLayout{
	CategoryLabor: {
		baseRow: 15,
		fields: [3]entryField{
			{"B", "Position #%d?"},
			{"C", "Crew size for Position #%d?"},
			{"D", "Hours for Position #%d?"},
		},
	},
	CategorySubcontractor: {
		baseRow: 15,
		fields: [3]entryField{
			{"E", "Company #%d?"},
			{"F", "Crew size for Company #%d?"},
			{"G", "Hours for Company #%d?"},
		},
	},
	CategoryVisitor: {
		baseRow: 15,
		fields: [3]entryField{
			{"H", "Visitor Company #%d?"},
			{"I", "Visitor Name #%d?"},
			{"J", "Visitor Hours #%d?"},
		},
	},
	CategoryWorkPerformed: {
		baseRow: 32,
		fields: [3]entryField{
			{"B", "What is Work Performed #%d?"},
			{"G", "Equip/Tools on Site #%d?"},
			{"I", "Contractor for entry #%d?"},
		},
	},
}

// MaxSheetRow is the last row an xlsx worksheet can hold.
const MaxSheetRow = 1048576

// BaseRow returns the first template row used by the category, or 0 if unknown.
func (c Category) BaseRow() int {
	return entryLayouts[c].baseRow
}

// MaxEntries returns how many entries fit between BaseRow and MaxSheetRow,
// or 0 if the category is unknown.
func (c Category) MaxEntries() int {
	layout, ok := entryLayouts[c]
	if !ok {
		return 0
	}
	return MaxSheetRow - layout.baseRow + 1
}

// Columns returns the three entry columns in asking order, or nil if unknown.
func (c Category) Columns() []string {
	layout, ok := entryLayouts[c]
	if !ok {
		return nil
	}
	cols := make([]string, len(layout.fields))
	for i, f := range layout.fields {
		cols[i] = f.column
	}
	return cols
}

// Expand generates the follow-up questions for count entries of a category.
// Entry k (1-based) occupies row BaseRow()+k-1 and contributes its three
// fields in column order, so the result always has exactly 3*count questions.
// An unknown category, a non-positive count, or a count past MaxEntries
// yields nil.
func Expand(category Category, count int) []Question {
	layout, ok := entryLayouts[category]
	if !ok || count <= 0 || count > category.MaxEntries() {
		return nil
	}

	questions := make([]Question, 0, count*len(layout.fields))
	for i := 0; i < count; i++ {
		row := layout.baseRow + i
		for _, f := range layout.fields {
			questions = append(questions, Question{
				Prompt:     fmt.Sprintf(f.prompt, i+1),
				Coordinate: Cell(f.column, row),
			})
		}
	}
	return questions
}
