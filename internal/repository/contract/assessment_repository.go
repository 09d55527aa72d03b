package contract

import (
	"context"

	"studiq-be/internal/entity"
	"studiq-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AssessmentRepository interface {
	Create(ctx context.Context, assessment *entity.Assessment) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Assessment, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Assessment, error)

	CreateSubmission(ctx context.Context, submission *entity.AssessmentSubmission) error
	FindSubmissions(ctx context.Context, specs ...specification.Specification) ([]*entity.AssessmentSubmission, error)
}
