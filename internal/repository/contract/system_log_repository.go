package contract

import (
	"context"

	"studiq-be/internal/entity"
	"studiq-be/internal/repository/specification"
)

type SystemLogRepository interface {
	Create(ctx context.Context, log *entity.SystemLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SystemLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
