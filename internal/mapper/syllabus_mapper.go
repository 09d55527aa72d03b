package mapper

import (
	"studiq-be/internal/entity"
	"studiq-be/internal/model"
)

type SyllabusMapper struct{}

func NewSyllabusMapper() *SyllabusMapper {
	return &SyllabusMapper{}
}

func (m *SyllabusMapper) ToEntity(s *model.Syllabus) *entity.Syllabus {
	if s == nil {
		return nil
	}
	return &entity.Syllabus{
		Id:        s.Id,
		TeacherId: s.TeacherId,
		Title:     s.Title,
		Subject:   s.Subject,
		Content:   s.Content,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (m *SyllabusMapper) ToModel(s *entity.Syllabus) *model.Syllabus {
	if s == nil {
		return nil
	}
	return &model.Syllabus{
		Id:        s.Id,
		TeacherId: s.TeacherId,
		Title:     s.Title,
		Subject:   s.Subject,
		Content:   s.Content,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (m *SyllabusMapper) ToEntities(syllabi []*model.Syllabus) []*entity.Syllabus {
	entities := make([]*entity.Syllabus, len(syllabi))
	for i, s := range syllabi {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
