// Package jsonfile loads interview questionnaires from JSON files.
//
// A questionnaire lists base questions in asking order:
//
//	{"questions": [
//	  {"prompt": "What is the contract number?", "coordinate": "C4"},
//	  {"prompt": "How many visitor entries?", "category": "visitor"}
//	]}
//
// Questions without a coordinate are count questions. Files are checked
// against an embedded JSON Schema before decoding.
package jsonfile

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
	"github.com/custodia-labs/fieldreport-cli/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.QuestionnaireLoader = (*Loader)(nil)

//go:embed schema.json
var schemaJSON []byte

var schemaLoader = gojsonschema.NewBytesLoader(schemaJSON)

// Loader reads a questionnaire file on every Load, so edits apply to the next session.
type Loader struct {
	path string
}

type document struct {
	Questions []domain.Question `json:"questions"`
}

// NewLoader creates a loader for the file at path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads, validates and decodes the questionnaire.
func (l *Loader) Load(ctx context.Context) ([]domain.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("questionnaire %s: %w", l.path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("read questionnaire: %w", err)
	}

	if err := Validate(data); err != nil {
		return nil, fmt.Errorf("questionnaire %s: %w", l.path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrInvalidQuestionnaire, l.path, err)
	}

	return doc.Questions, nil
}

// Validate checks raw questionnaire JSON against the schema.
func Validate(data []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidQuestionnaire, err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("%w: %s", domain.ErrInvalidQuestionnaire, strings.Join(errs, "; "))
	}

	return nil
}
