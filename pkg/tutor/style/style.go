package style

import "fmt"

// Style is the closed set of learning styles the tutor adapts to.
type Style string

const (
	Visual   Style = "visual"
	Auditory Style = "auditory"
	HandsOn  Style = "hands-on"
	Reading  Style = "reading"
	Blended  Style = "blended"
)

// Profile carries the tutoring directives associated with a style.
type Profile struct {
	// Prompt is the instruction block injected into the composed prompt.
	Prompt string
	// Description is the human-readable summary shown in style-change notices.
	Description string
	// Example is a representative opener for this style.
	Example string
	// ModelInstruction is the extra formatting directive for the model.
	ModelInstruction string
}

var profiles = map[Style]Profile{
	Visual: {
		Prompt:           "Use visual descriptions, diagrams, and spatial organization to explain concepts. Organize information with clear headings, bullet points, and visual markers. Describe concepts in terms of how they would look visually.",
		Description:      "Visual learner who prefers diagrams, images, and spatial information",
		Example:          "Imagine a flowchart showing...",
		ModelInstruction: "Create visually structured explanations with clear headings, bullet points, emojis as visual markers, and spatial organization to help with mental mapping.",
	},
	Auditory: {
		Prompt:           "Explain clearly in a conversational tone as if speaking aloud to the student. Use rhythm, repetition, clear transitions, and storytelling approaches. Focus on how ideas sound when explained verbally.",
		Description:      "Auditory learner who processes information best through hearing and speaking",
		Example:          "Listen to how these concepts connect...",
		ModelInstruction: "use a conversational tone with clear transitions and storytelling techniques",
	},
	HandsOn: {
		Prompt:           "Provide actionable exercises, practical examples, and step-by-step instructions. Break down concepts into clear steps that can be practiced, focusing on how the student can apply the knowledge immediately.",
		Description:      "Kinesthetic learner who prefers learning by doing and practical examples",
		Example:          "Try this exercise to understand the concept...",
		ModelInstruction: "include practical examples, step-by-step instructions, and actionable exercises",
	},
	Reading: {
		Prompt:           "Provide detailed, well-structured written explanations with logical flow. Include relevant context, nuanced details, and proper citations when applicable. Focus on precise language and thorough coverage of concepts.",
		Description:      "Reader who prefers comprehensive written explanations",
		Example:          "The following elements are crucial to understand...",
		ModelInstruction: "write detailed, well-structured explanations with logical flow and precise language",
	},
	Blended: {
		Prompt:           "Combine visual elements, clear explanations, practical examples, and well-structured text. Provide a balanced mix of learning approaches, addressing different aspects of learning. Include both theoretical explanations and practical applications.",
		Description:      "Balanced learner who benefits from mixed learning approaches",
		Example:          "Consider both the theory and practice of this concept...",
		ModelInstruction: "provide a balanced mix of visual elements, clear explanations, and practical examples",
	},
}

// quiz answer values for the "how do you prefer to learn" question
var fromAnswer = map[string]Style{
	"Watching videos":       Visual,
	"Reading books":         Reading,
	"Listening to podcasts": Auditory,
	"Doing it myself":       HandsOn,
}

var toAnswer = map[Style]string{
	Visual:   "Watching videos",
	Reading:  "Reading books",
	Auditory: "Listening to podcasts",
	HandsOn:  "Doing it myself",
	Blended:  "Others",
}

// All lists every valid style in a stable order.
func All() []Style {
	return []Style{Visual, Auditory, HandsOn, Reading, Blended}
}

// Parse validates an API-supplied style value.
func Parse(value string) (Style, error) {
	s := Style(value)
	if _, ok := profiles[s]; !ok {
		return "", fmt.Errorf("invalid learning style %q", value)
	}
	return s, nil
}

// ProfileFor returns the directives for a style. Unknown styles fall back to
// the blended profile so callers never receive empty directives.
func ProfileFor(s Style) Profile {
	if p, ok := profiles[s]; ok {
		return p
	}
	return profiles[Blended]
}

// FromQuizAnswer maps the learning-style quiz answer onto a style.
// Missing or unrecognized answers resolve to Blended.
func FromQuizAnswer(answer string) Style {
	if s, ok := fromAnswer[answer]; ok {
		return s
	}
	return Blended
}

// ToQuizAnswer is the write-back mapping used when a user changes their
// style from the chat UI and the quiz record must follow.
func ToQuizAnswer(s Style) string {
	if a, ok := toAnswer[s]; ok {
		return a
	}
	return "Others"
}
