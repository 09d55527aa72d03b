package assessment

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"studiq-be/pkg/tutor/prompt"
	"studiq-be/pkg/tutor/style"
)

// Question is one generated multiple-choice question. CorrectAnswer indexes
// into Options.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
}

// DefaultQuestionCount is used when the caller does not ask for a specific
// number of questions.
const DefaultQuestionCount = 5

var styleDirectives = map[style.Style]string{
	style.Visual:   "Make the questions focused on relationships, patterns, and visual concepts.",
	style.Auditory: "Phrase questions conversationally, focusing on dialogue and verbal concepts.",
	style.HandsOn:  "Focus questions on practical applications, problem-solving, and step-by-step processes.",
	style.Reading:  "Create detailed, text-focused questions that test comprehension and analytical reading skills.",
}

// BuildPrompt assembles the quiz-generation prompt from document content,
// the requested learning style and the user's quiz answers.
func BuildPrompt(content string, st style.Style, answers map[string]string, count int) string {
	if count <= 0 {
		count = DefaultQuestionCount
	}

	parts := []string{
		fmt.Sprintf("Generate %d multiple-choice quiz questions about the following content.", count),
		"Each question should have exactly 4 options with one correct answer.",
		`Format the response as a JSON array of objects with the structure: [{"question": "Question text", "options": ["option1", "option2", "option3", "option4"], "correct_answer": 0}] where correct_answer is the index (0-3) of the correct option.`,
	}

	if directive, ok := styleDirectives[st]; ok {
		parts = append(parts, directive)
	}

	if answers["chatbotInteraction"] == "Witty and humorous" {
		parts = append(parts, "Add a light touch of humor to the questions where appropriate.")
	}
	if answers["struggleHelp"] == "Hints or clues" {
		parts = append(parts, "Include subtle hints within the options for challenging questions.")
	}
	switch answers["studyDuration"] {
	case "less than 15 minutes":
		parts = append(parts, "Keep questions concise and straightforward.")
	case "More than an hour":
		parts = append(parts, "Include some more complex, multi-step thinking questions.")
	}

	return strings.Join(parts, "\n") + "\n\nContent:\n" + prompt.TruncateRunes(content, prompt.ExcerptLimit)
}

var jsonArrayRe = regexp.MustCompile(`(?s)\[\s*\{.*\}\s*\]`)

// ParseQuestions pulls the JSON question array out of a model response,
// tolerating markdown code fences and surrounding prose.
func ParseQuestions(raw string) ([]Question, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	match := jsonArrayRe.FindString(cleaned)
	if match == "" {
		return nil, fmt.Errorf("no question array found in response")
	}

	var questions []Question
	if err := json.Unmarshal([]byte(match), &questions); err != nil {
		return nil, fmt.Errorf("failed to parse generated questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("response contained no questions")
	}

	for i, q := range questions {
		if q.Question == "" || len(q.Options) == 0 {
			return nil, fmt.Errorf("question %d is malformed", i)
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return nil, fmt.Errorf("question %d has an out-of-range answer index", i)
		}
	}

	return questions, nil
}
