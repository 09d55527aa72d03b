package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Assessment struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TeacherId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title     string         `gorm:"type:varchar(255);not null"`
	Subject   string         `gorm:"type:varchar(255)"`
	Questions datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (Assessment) TableName() string {
	return "assessments"
}

type AssessmentSubmission struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AssessmentId uuid.UUID      `gorm:"type:uuid;not null;index"`
	StudentId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Answers      datatypes.JSON `gorm:"type:jsonb;not null"`
	Score        int            `gorm:"not null;default:0"`
	Total        int            `gorm:"not null;default:0"`
	SubmittedAt  time.Time      `gorm:"autoCreateTime"`
}

func (AssessmentSubmission) TableName() string {
	return "assessment_submissions"
}
