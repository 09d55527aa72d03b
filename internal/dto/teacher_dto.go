package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAssessmentRequest struct {
	Title     string            `json:"title" validate:"required,min=3"`
	Subject   string            `json:"subject" validate:"omitempty,max=255"`
	Questions []QuizQuestionDTO `json:"questions" validate:"required,min=1,dive"`
}

type AssessmentResponse struct {
	Id        uuid.UUID         `json:"id"`
	TeacherId uuid.UUID         `json:"teacher_id"`
	Title     string            `json:"title"`
	Subject   string            `json:"subject"`
	Questions []QuizQuestionDTO `json:"questions"`
	CreatedAt time.Time         `json:"created_at"`
}

type SubmitAssessmentRequest struct {
	Answers []int `json:"answers" validate:"required,min=1"`
}

type SubmissionResponse struct {
	Id           uuid.UUID `json:"id"`
	AssessmentId uuid.UUID `json:"assessment_id"`
	StudentId    uuid.UUID `json:"student_id"`
	Score        int       `json:"score"`
	Total        int       `json:"total"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

type CreateSyllabusRequest struct {
	Title   string `json:"title" validate:"required,min=3"`
	Subject string `json:"subject" validate:"omitempty,max=255"`
	Content string `json:"content" validate:"required"`
}

type SyllabusResponse struct {
	Id        uuid.UUID `json:"id"`
	TeacherId uuid.UUID `json:"teacher_id"`
	Title     string    `json:"title"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
