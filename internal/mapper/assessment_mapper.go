package mapper

import (
	"encoding/json"

	"studiq-be/internal/entity"
	"studiq-be/internal/model"
	"studiq-be/pkg/tutor/assessment"
)

type AssessmentMapper struct{}

func NewAssessmentMapper() *AssessmentMapper {
	return &AssessmentMapper{}
}

func (m *AssessmentMapper) ToEntity(a *model.Assessment) (*entity.Assessment, error) {
	if a == nil {
		return nil, nil
	}

	var questions []assessment.Question
	if len(a.Questions) > 0 {
		if err := json.Unmarshal(a.Questions, &questions); err != nil {
			return nil, err
		}
	}

	return &entity.Assessment{
		Id:        a.Id,
		TeacherId: a.TeacherId,
		Title:     a.Title,
		Subject:   a.Subject,
		Questions: questions,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}, nil
}

func (m *AssessmentMapper) ToModel(a *entity.Assessment) (*model.Assessment, error) {
	if a == nil {
		return nil, nil
	}

	questions, err := json.Marshal(a.Questions)
	if err != nil {
		return nil, err
	}

	return &model.Assessment{
		Id:        a.Id,
		TeacherId: a.TeacherId,
		Title:     a.Title,
		Subject:   a.Subject,
		Questions: questions,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}, nil
}

func (m *AssessmentMapper) SubmissionToEntity(s *model.AssessmentSubmission) (*entity.AssessmentSubmission, error) {
	if s == nil {
		return nil, nil
	}

	var answers []int
	if len(s.Answers) > 0 {
		if err := json.Unmarshal(s.Answers, &answers); err != nil {
			return nil, err
		}
	}

	return &entity.AssessmentSubmission{
		Id:           s.Id,
		AssessmentId: s.AssessmentId,
		StudentId:    s.StudentId,
		Answers:      answers,
		Score:        s.Score,
		Total:        s.Total,
		SubmittedAt:  s.SubmittedAt,
	}, nil
}

func (m *AssessmentMapper) SubmissionToModel(s *entity.AssessmentSubmission) (*model.AssessmentSubmission, error) {
	if s == nil {
		return nil, nil
	}

	answers, err := json.Marshal(s.Answers)
	if err != nil {
		return nil, err
	}

	return &model.AssessmentSubmission{
		Id:           s.Id,
		AssessmentId: s.AssessmentId,
		StudentId:    s.StudentId,
		Answers:      answers,
		Score:        s.Score,
		Total:        s.Total,
		SubmittedAt:  s.SubmittedAt,
	}, nil
}
