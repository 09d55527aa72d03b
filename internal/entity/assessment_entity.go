package entity

import (
	"time"

	"github.com/google/uuid"

	"studiq-be/pkg/tutor/assessment"
)

type Assessment struct {
	Id        uuid.UUID
	TeacherId uuid.UUID
	Title     string
	Subject   string
	Questions []assessment.Question
	CreatedAt time.Time
	UpdatedAt time.Time
}

type AssessmentSubmission struct {
	Id           uuid.UUID
	AssessmentId uuid.UUID
	StudentId    uuid.UUID
	Answers      []int
	Score        int
	Total        int
	SubmittedAt  time.Time
}
