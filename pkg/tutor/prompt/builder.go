package prompt

import (
	"strings"

	"studiq-be/pkg/store"
	"studiq-be/pkg/tutor/style"
)

// ExcerptLimit caps how much extracted document text is injected into a
// prompt, counted in characters, never splitting a codepoint.
const ExcerptLimit = 5000

// HistoryWindow is how many recent turns are replayed as context.
const HistoryWindow = 5

// Builder assembles the tutoring prompt sent to the generation API. It is
// deterministic and performs no I/O; callers gather the inputs first.
type Builder struct {
	style           style.Style
	personalization string
	history         []store.ChatTurn
	excerpt         string
	question        string
}

func NewBuilder(st style.Style, personalization string, history []store.ChatTurn, excerpt, question string) *Builder {
	return &Builder{
		style:           st,
		personalization: personalization,
		history:         history,
		excerpt:         excerpt,
		question:        question,
	}
}

// Build produces the prompt in a fixed section order: role framing, style
// instruction, personalization, formatting directives, visual enhancement
// (visual style only), document excerpt or no-document note, recent
// conversation, the user's question, closing instructions.
func (b *Builder) Build() string {
	var prompt strings.Builder

	b.writeFraming(&prompt)
	b.writeFormatting(&prompt)
	b.writeVisualEnhancement(&prompt)
	b.writeDocument(&prompt)
	b.writeConversation(&prompt)
	b.writeQuestion(&prompt)

	return prompt.String()
}

func (b *Builder) writeFraming(prompt *strings.Builder) {
	profile := style.ProfileFor(b.style)

	prompt.WriteString("You are a helpful AI tutor assistant named StudiQ. Be conversational, friendly, and helpful.\n")
	prompt.WriteString("Learning style: ")
	prompt.WriteString(string(b.style))
	prompt.WriteString("\nInstructions: ")
	prompt.WriteString(profile.Prompt)
	prompt.WriteString("\n\nPersonal learning preferences: ")
	prompt.WriteString(b.personalization)
	prompt.WriteString("\n\n")
}

func (b *Builder) writeFormatting(prompt *strings.Builder) {
	profile := style.ProfileFor(b.style)

	prompt.WriteString("Format your response properly using Markdown:\n")
	prompt.WriteString("- Use **bold** for important concepts\n")
	prompt.WriteString("- Use proper paragraph breaks for readability\n")
	prompt.WriteString("- Use bullet points or numbered lists when appropriate\n")
	prompt.WriteString("- Use headings with # symbols for section titles\n")
	prompt.WriteString("- ")
	prompt.WriteString(profile.ModelInstruction)
	prompt.WriteString("\n\n")
}

func (b *Builder) writeVisualEnhancement(prompt *strings.Builder) {
	if b.style != style.Visual {
		return
	}
	prompt.WriteString("For visual learners, focus on:\n")
	prompt.WriteString("- Using emojis as visual indicators\n")
	prompt.WriteString("- Creating clear hierarchical structure with headings\n")
	prompt.WriteString("- Using bullet points and numbered lists for steps\n")
	prompt.WriteString("- Creating visual separation between concepts\n")
	prompt.WriteString("- Using spatial organization to illustrate relationships\n\n")
}

func (b *Builder) writeDocument(prompt *strings.Builder) {
	if b.excerpt == "" {
		prompt.WriteString("The user has not uploaded any documents yet, so please respond to general questions.\n")
		prompt.WriteString("If they ask about specific content, politely suggest they upload a document first.\n\n")
		return
	}

	prompt.WriteString("Recent document content:\n")
	prompt.WriteString(TruncateRunes(b.excerpt, ExcerptLimit))
	prompt.WriteString("\n\n")
}

func (b *Builder) writeConversation(prompt *strings.Builder) {
	history := b.history
	if len(history) > HistoryWindow {
		history = history[len(history)-HistoryWindow:]
	}
	if len(history) == 0 {
		return
	}

	prompt.WriteString("Recent conversation:\n")
	for _, turn := range history {
		if turn.Role == store.ChatRoleUser {
			prompt.WriteString("User: ")
		} else {
			prompt.WriteString("AI: ")
		}
		prompt.WriteString(turn.Content)
		prompt.WriteString("\n")
	}
	prompt.WriteString("\n")
}

func (b *Builder) writeQuestion(prompt *strings.Builder) {
	prompt.WriteString("User's question: ")
	prompt.WriteString(b.question)
	prompt.WriteString("\n\nPlease respond directly to the user's question.")
	if b.excerpt != "" {
		prompt.WriteString(" If the question is about the document content, refer to it in your answer.")
	}
	prompt.WriteString("\nMake your response well-structured and easy to read with proper formatting.\n")
}

// TruncateRunes cuts s to at most limit characters on a rune boundary.
func TruncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}
	return s
}
