package assessment

import (
	"strings"
	"testing"

	"studiq-be/pkg/tutor/style"
)

const sampleArray = `[
	{"question": "What is 2+2?", "options": ["3", "4", "5", "6"], "correct_answer": 1},
	{"question": "What is H2O?", "options": ["water", "salt", "air", "fire"], "correct_answer": 0}
]`

func TestParseQuestionsBareArray(t *testing.T) {
	questions, err := ParseQuestions(sampleArray)
	if err != nil {
		t.Fatal(err)
	}
	if len(questions) != 2 {
		t.Fatalf("parsed %d questions", len(questions))
	}
	if questions[0].CorrectAnswer != 1 || questions[0].Options[1] != "4" {
		t.Errorf("question parsed wrong: %+v", questions[0])
	}
}

func TestParseQuestionsFencedWithProse(t *testing.T) {
	raw := "Here are your questions:\n```json\n" + sampleArray + "\n```\nGood luck!"
	questions, err := ParseQuestions(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(questions) != 2 {
		t.Errorf("parsed %d questions", len(questions))
	}
}

func TestParseQuestionsRejectsGarbage(t *testing.T) {
	cases := []string{
		"no json here at all",
		"[]",
		`[{"question": "", "options": ["a"], "correct_answer": 0}]`,
		`[{"question": "q", "options": ["a", "b"], "correct_answer": 5}]`,
	}
	for _, raw := range cases {
		if _, err := ParseQuestions(raw); err == nil {
			t.Errorf("ParseQuestions(%q) did not error", raw)
		}
	}
}

func TestBuildPromptIncludesDirectives(t *testing.T) {
	answers := map[string]string{
		"chatbotInteraction": "Witty and humorous",
		"struggleHelp":       "Hints or clues",
		"studyDuration":      "More than an hour",
	}
	got := BuildPrompt("the content body", style.HandsOn, answers, 3)

	for _, fragment := range []string{
		"Generate 3 multiple-choice quiz questions",
		styleDirectives[style.HandsOn],
		"light touch of humor",
		"subtle hints",
		"multi-step thinking",
		"Content:\nthe content body",
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("prompt missing %q", fragment)
		}
	}
}

func TestBuildPromptDefaults(t *testing.T) {
	got := BuildPrompt("c", style.Blended, nil, 0)
	if !strings.Contains(got, "Generate 5 multiple-choice quiz questions") {
		t.Error("default question count not applied")
	}
	// blended has no style directive
	for _, directive := range styleDirectives {
		if strings.Contains(got, directive) {
			t.Errorf("unexpected style directive %q", directive)
		}
	}
}
