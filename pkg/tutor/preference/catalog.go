package preference

import (
	"fmt"
	"strings"

	"studiq-be/pkg/tutor/style"
)

// Quiz answer keys as stored on the learning profile.
const (
	KeyLearningStyle = "learningStyle"
	KeyStudyEnv      = "studyEnv"
	KeyRetainInfo    = "retainInfo"
	KeyTopicApproach = "newTopicPreference"
	KeyStudyDuration = "studyDuration"
	KeyStruggleHelp  = "struggleHelp"
	KeyInteraction   = "chatbotInteraction"
)

// AdaptiveFallback is used when no quiz answers are available.
const AdaptiveFallback = "I'll adapt to your learning style as we interact."

var studyEnvironments = map[string]string{
	"Quiet room": "I'll structure my explanations for deep focus, with clear breaks and sections to help you concentrate in your quiet study space.",
	"With music": "I'll structure explanations into rhythm-friendly chunks that work well when studying with background music.",
	"Café":       "I'll provide explanations that work well in busy environments with potential distractions - using clear highlights and summaries.",
	"Library":    "I'll provide comprehensive, well-structured content optimized for deep, focused study sessions in quiet environments.",
}

var focusDurations = map[string]string{
	"less than 15 minutes": "I'll keep explanations very concise with key points highlighted at the beginning.",
	"15-30 minutes":        "I'll provide medium-length explanations with clear structure and breaks.",
	"30-60 minutes":        "I'll offer more comprehensive explanations with multiple examples and deeper connections.",
	"More than an hour":    "I'll provide in-depth content with multiple perspectives, examples, and connections to other topics.",
}

var helpApproaches = map[string]string{
	"Step-by-step guidance":           "When you're stuck, I'll guide you through solutions one clear step at a time, checking understanding at each stage.",
	"A detailed explanation":          "When you're stuck, I'll provide thorough explanations with context and principles to deepen your understanding.",
	"Hints or clues":                  "When you're stuck, I'll offer subtle hints that lead you to discover the solution yourself.",
	"A summary or analogy":            "When you face challenges, I'll use analogies and simplified summaries to make concepts more intuitive.",
	"Re-explanation from a new angle": "If you're struggling, I'll approach the topic from completely different perspectives until we find what clicks for you.",
}

var interactionStyles = map[string]string{
	"Friendly and casual":              "I'll maintain a warm, conversational tone with encouraging language.",
	"Professional and straightforward": "I'll keep explanations clear, concise and focused, maintaining a professional tone.",
	"Encouraging and motivational":     "I'll emphasize progress, potential, and positive reinforcement throughout our interactions.",
	"Witty and humorous":               "I'll incorporate appropriate humor and interesting facts to keep learning engaging.",
}

var retentionGuidance = map[string]string{
	"Writing notes":            "I'll structure content in a way that's easy to take notes on, with clear key points and organized sections.",
	"Applying it in practice":  "I'll emphasize practical applications and provide examples you can try yourself.",
	"Teaching others":          "I'll frame explanations in a way that prepares you to explain concepts to others.",
	"Rewatching videos":        "I'll create explanations with clear visual markers and memorable structure.",
}

// StudyEnvironment returns the guidance for a study-environment answer,
// empty for unknown answers.
func StudyEnvironment(answer string) string { return studyEnvironments[answer] }

// FocusDuration returns the guidance for a focus-duration answer.
func FocusDuration(answer string) string { return focusDurations[answer] }

// HelpApproach returns the guidance for a help-seeking answer.
func HelpApproach(answer string) string { return helpApproaches[answer] }

// InteractionStyle returns the guidance for an interaction-style answer.
func InteractionStyle(answer string) string { return interactionStyles[answer] }

// Summary builds the personalized-guidance sentence block from the raw quiz
// answers. Unknown answers are omitted rather than erroring; a nil or fully
// unrecognized answer set yields the adaptive fallback sentence.
func Summary(answers map[string]string) string {
	if len(answers) == 0 {
		return AdaptiveFallback
	}

	var parts []string

	if answer, ok := answers[KeyLearningStyle]; ok {
		parts = append(parts, fmt.Sprintf("Your primary learning style appears to be: %s.", style.FromQuizAnswer(answer)))
	}

	if guidance := studyEnvironments[answers[KeyStudyEnv]]; guidance != "" {
		parts = append(parts, guidance)
	}

	if guidance := retentionGuidance[answers[KeyRetainInfo]]; guidance != "" {
		parts = append(parts, guidance)
	}

	if approach, ok := answers[KeyTopicApproach]; ok {
		lower := strings.ToLower(approach)
		if strings.Contains(lower, "broad overview") {
			parts = append(parts, "I'll start with big-picture concepts before diving into details.")
		} else if strings.Contains(lower, "dive into details") {
			parts = append(parts, "I'll focus on specific details and mechanisms right away.")
		}
	}

	if guidance := focusDurations[answers[KeyStudyDuration]]; guidance != "" {
		parts = append(parts, guidance)
	}

	if guidance := helpApproaches[answers[KeyStruggleHelp]]; guidance != "" {
		parts = append(parts, guidance)
	}

	if guidance := interactionStyles[answers[KeyInteraction]]; guidance != "" {
		parts = append(parts, guidance)
	}

	if len(parts) == 0 {
		return AdaptiveFallback
	}
	return strings.Join(parts, " ")
}
