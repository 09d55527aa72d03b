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
)

type SyllabusRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SyllabusMapper
}

func NewSyllabusRepository(db *gorm.DB) contract.SyllabusRepository {
	return &SyllabusRepositoryImpl{
		db:     db,
		mapper: mapper.NewSyllabusMapper(),
	}
}

func (r *SyllabusRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SyllabusRepositoryImpl) Create(ctx context.Context, syllabus *entity.Syllabus) error {
	m := r.mapper.ToModel(syllabus)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*syllabus = *r.mapper.ToEntity(m)
	return nil
}

func (r *SyllabusRepositoryImpl) Update(ctx context.Context, syllabus *entity.Syllabus) error {
	m := r.mapper.ToModel(syllabus)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*syllabus = *r.mapper.ToEntity(m)
	return nil
}

func (r *SyllabusRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Syllabus{}).Error
}

func (r *SyllabusRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Syllabus, error) {
	var m model.Syllabus
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *SyllabusRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Syllabus, error) {
	var models []*model.Syllabus
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}
