package dto

type SaveQuizRequest struct {
	Answers map[string]string `json:"answers" validate:"required"`
}

type ProfileResponse struct {
	Style       string            `json:"learning_style"`
	Description string            `json:"description"`
	Answers     map[string]string `json:"answers,omitempty"`
}
