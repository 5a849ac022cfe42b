package driven

import (
	"context"

	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
)

// QuestionnaireLoader supplies the base questions of an interview.
type QuestionnaireLoader interface {
	Load(ctx context.Context) ([]domain.Question, error)
}
