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

type AssessmentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AssessmentMapper
}

func NewAssessmentRepository(db *gorm.DB) contract.AssessmentRepository {
	return &AssessmentRepositoryImpl{
		db:     db,
		mapper: mapper.NewAssessmentMapper(),
	}
}

func (r *AssessmentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AssessmentRepositoryImpl) Create(ctx context.Context, assessment *entity.Assessment) error {
	m, err := r.mapper.ToModel(assessment)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	mapped, err := r.mapper.ToEntity(m)
	if err != nil {
		return err
	}
	*assessment = *mapped
	return nil
}

func (r *AssessmentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Assessment{}).Error
}

func (r *AssessmentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Assessment, error) {
	var m model.Assessment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m)
}

func (r *AssessmentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Assessment, error) {
	var models []*model.Assessment
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	assessments := make([]*entity.Assessment, 0, len(models))
	for _, m := range models {
		e, err := r.mapper.ToEntity(m)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, e)
	}
	return assessments, nil
}

func (r *AssessmentRepositoryImpl) CreateSubmission(ctx context.Context, submission *entity.AssessmentSubmission) error {
	m, err := r.mapper.SubmissionToModel(submission)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	mapped, err := r.mapper.SubmissionToEntity(m)
	if err != nil {
		return err
	}
	*submission = *mapped
	return nil
}

func (r *AssessmentRepositoryImpl) FindSubmissions(ctx context.Context, specs ...specification.Specification) ([]*entity.AssessmentSubmission, error) {
	var models []*model.AssessmentSubmission
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	submissions := make([]*entity.AssessmentSubmission, 0, len(models))
	for _, m := range models {
		e, err := r.mapper.SubmissionToEntity(m)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, e)
	}
	return submissions, nil
}
