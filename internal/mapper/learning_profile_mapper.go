package mapper

import (
	"fmt"

	"gorm.io/datatypes"

	"studiq-be/internal/entity"
	"studiq-be/internal/model"
	"studiq-be/pkg/tutor/style"
)

type LearningProfileMapper struct{}

func NewLearningProfileMapper() *LearningProfileMapper {
	return &LearningProfileMapper{}
}

func (m *LearningProfileMapper) ToEntity(p *model.LearningProfile) *entity.LearningProfile {
	if p == nil {
		return nil
	}

	answers := make(map[string]string, len(p.Answers))
	for key, value := range p.Answers {
		answers[key] = fmt.Sprintf("%v", value)
	}

	st, err := style.Parse(p.Style)
	if err != nil {
		st = style.Blended
	}

	return &entity.LearningProfile{
		Id:        p.Id,
		UserId:    p.UserId,
		Style:     st,
		Answers:   answers,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *LearningProfileMapper) ToModel(p *entity.LearningProfile) *model.LearningProfile {
	if p == nil {
		return nil
	}

	answers := make(datatypes.JSONMap, len(p.Answers))
	for key, value := range p.Answers {
		answers[key] = value
	}

	return &model.LearningProfile{
		Id:        p.Id,
		UserId:    p.UserId,
		Style:     string(p.Style),
		Answers:   answers,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
