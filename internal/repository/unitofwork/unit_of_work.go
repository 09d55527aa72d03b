package unitofwork

import (
	"context"

	"studiq-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	LearningProfileRepository() contract.LearningProfileRepository
	AssessmentRepository() contract.AssessmentRepository
	SyllabusRepository() contract.SyllabusRepository
	SystemLogRepository() contract.SystemLogRepository
}
