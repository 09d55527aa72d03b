package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OwnedByTeacher struct {
	TeacherID uuid.UUID
}

func (s OwnedByTeacher) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("teacher_id = ?", s.TeacherID)
}

type SubmittedBy struct {
	StudentID uuid.UUID
}

func (s SubmittedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("student_id = ?", s.StudentID)
}

type ForAssessment struct {
	AssessmentID uuid.UUID
}

func (s ForAssessment) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("assessment_id = ?", s.AssessmentID)
}

// Log Specs

type ByLevel struct {
	Level string
}

func (s ByLevel) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("level = ?", s.Level)
}
