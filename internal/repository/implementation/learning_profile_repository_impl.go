package implementation

import (
	"context"
	"errors"

	"studiq-be/internal/entity"
	"studiq-be/internal/mapper"
	"studiq-be/internal/model"
	"studiq-be/internal/repository/contract"
	"studiq-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LearningProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LearningProfileMapper
}

func NewLearningProfileRepository(db *gorm.DB) contract.LearningProfileRepository {
	return &LearningProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewLearningProfileMapper(),
	}
}

func (r *LearningProfileRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LearningProfileRepositoryImpl) Upsert(ctx context.Context, profile *entity.LearningProfile) error {
	m := r.mapper.ToModel(profile)

	// One profile per user. Retaking the quiz replaces style and answers.
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"style", "answers", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}

	*profile = *r.mapper.ToEntity(m)
	return nil
}

func (r *LearningProfileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LearningProfile, error) {
	var m model.LearningProfile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *LearningProfileRepositoryImpl) DeleteByUser(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.LearningProfile{}).Error
}
