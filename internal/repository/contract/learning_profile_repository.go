package contract

import (
	"context"

	"studiq-be/internal/entity"
	"studiq-be/internal/repository/specification"

	"github.com/google/uuid"
)

type LearningProfileRepository interface {
	// Upsert creates the profile on first save and replaces style and
	// answers on every retake.
	Upsert(ctx context.Context, profile *entity.LearningProfile) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LearningProfile, error)
	DeleteByUser(ctx context.Context, userId uuid.UUID) error
}
