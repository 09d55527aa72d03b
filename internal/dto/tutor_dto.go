package dto

import "time"

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Response string `json:"response"`
	// Epoch seconds, matching the numeric timestamps clients already parse.
	Timestamp int64  `json:"timestamp"`
	AudioURL  string `json:"audio_url,omitempty"`
}

type ChatTurnDTO struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
	AudioURL  string `json:"audio_url,omitempty"`
}

type HistoryResponse struct {
	Turns []ChatTurnDTO `json:"turns"`
}

type DocumentDTO struct {
	Id         string    `json:"id"`
	Filename   string    `json:"filename"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type UploadResponse struct {
	Document   DocumentDTO `json:"document"`
	TextLength int         `json:"text_length"`
	Message    string      `json:"message"`
}

type SetStyleRequest struct {
	Style string `json:"style" validate:"required"`
}

type GenerateQuizRequest struct {
	QuestionCount int `json:"question_count" validate:"omitempty,min=1,max=20"`
}

type QuizQuestionDTO struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
}

type GenerateQuizResponse struct {
	Questions []QuizQuestionDTO `json:"questions"`
}
