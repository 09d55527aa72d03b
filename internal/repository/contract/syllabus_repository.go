package contract

import (
	"context"

	"studiq-be/internal/entity"
	"studiq-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SyllabusRepository interface {
	Create(ctx context.Context, syllabus *entity.Syllabus) error
	Update(ctx context.Context, syllabus *entity.Syllabus) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Syllabus, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Syllabus, error)
}
