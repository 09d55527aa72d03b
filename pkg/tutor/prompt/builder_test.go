package prompt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"studiq-be/pkg/store"
	"studiq-be/pkg/tutor/style"
)

func TestBuildWithoutDocument(t *testing.T) {
	b := NewBuilder(style.Reading, "personalized guidance", nil, "", "What is photosynthesis?")
	got := b.Build()

	if !strings.Contains(got, "has not uploaded any documents") {
		t.Error("missing no-document note")
	}
	if strings.Contains(got, "Recent document content:") {
		t.Error("document section present without a document")
	}
	if strings.Contains(got, "refer to it in your answer") {
		t.Error("document closing present without a document")
	}
	if !strings.Contains(got, "User's question: What is photosynthesis?") {
		t.Error("question missing")
	}
}

func TestBuildWithDocument(t *testing.T) {
	b := NewBuilder(style.Blended, "guidance", nil, "cell biology chapter one", "Summarize it")
	got := b.Build()

	if !strings.Contains(got, "Recent document content:\ncell biology chapter one") {
		t.Error("excerpt section missing")
	}
	if strings.Contains(got, "has not uploaded any documents") {
		t.Error("no-document note present despite excerpt")
	}
	if !strings.Contains(got, "refer to it in your answer") {
		t.Error("document closing missing")
	}
}

func TestBuildSectionOrder(t *testing.T) {
	history := []store.ChatTurn{
		{Role: store.ChatRoleUser, Content: "earlier question"},
		{Role: store.ChatRoleAssistant, Content: "earlier answer"},
	}
	got := NewBuilder(style.Visual, "prefs", history, "doc text", "now what").Build()

	sections := []string{
		"You are a helpful AI tutor assistant named StudiQ",
		"Learning style: visual",
		"Personal learning preferences: prefs",
		"Format your response properly using Markdown",
		"For visual learners, focus on:",
		"Recent document content:",
		"Recent conversation:",
		"User: earlier question",
		"AI: earlier answer",
		"User's question: now what",
	}

	last := -1
	for _, section := range sections {
		idx := strings.Index(got, section)
		if idx < 0 {
			t.Fatalf("prompt missing section %q", section)
		}
		if idx < last {
			t.Errorf("section %q out of order", section)
		}
		last = idx
	}
}

func TestVisualEnhancementOnlyForVisual(t *testing.T) {
	for _, s := range style.All() {
		got := NewBuilder(s, "p", nil, "", "q").Build()
		has := strings.Contains(got, "For visual learners, focus on:")
		if s == style.Visual && !has {
			t.Error("visual prompt missing enhancement block")
		}
		if s != style.Visual && has {
			t.Errorf("%s prompt contains visual enhancement block", s)
		}
	}
}

func TestHistoryWindow(t *testing.T) {
	var history []store.ChatTurn
	for _, content := range []string{"one", "two", "three", "four", "five", "six", "seven"} {
		history = append(history, store.ChatTurn{Role: store.ChatRoleUser, Content: content})
	}

	got := NewBuilder(style.Blended, "p", history, "", "q").Build()
	if strings.Contains(got, "User: two\n") {
		t.Error("turn outside the window leaked into the prompt")
	}
	for _, content := range []string{"three", "four", "five", "six", "seven"} {
		if !strings.Contains(got, "User: "+content+"\n") {
			t.Errorf("turn %q missing from the window", content)
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	history := []store.ChatTurn{{Role: store.ChatRoleUser, Content: "hi"}}
	a := NewBuilder(style.HandsOn, "p", history, "doc", "q").Build()
	b := NewBuilder(style.HandsOn, "p", history, "doc", "q").Build()
	if a != b {
		t.Error("identical inputs produced different prompts")
	}
}

func TestExcerptTruncation(t *testing.T) {
	long := strings.Repeat("é", ExcerptLimit+100)
	got := NewBuilder(style.Blended, "p", nil, long, "q").Build()

	start := strings.Index(got, "Recent document content:\n")
	if start < 0 {
		t.Fatal("excerpt section missing")
	}
	rest := got[start+len("Recent document content:\n"):]
	end := strings.Index(rest, "\n\n")
	if end < 0 {
		t.Fatal("excerpt section not terminated")
	}
	excerpt := rest[:end]

	if utf8.RuneCountInString(excerpt) != ExcerptLimit {
		t.Errorf("excerpt length = %d runes, want %d", utf8.RuneCountInString(excerpt), ExcerptLimit)
	}
	if !utf8.ValidString(excerpt) {
		t.Error("excerpt split a codepoint")
	}
	if excerpt != strings.Repeat("é", ExcerptLimit) {
		t.Error("excerpt is not an exact prefix")
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"shorter than limit", "abc", 10, "abc"},
		{"exact limit", "abc", 3, "abc"},
		{"ascii cut", "abcdef", 3, "abc"},
		{"multibyte cut", "日本語テキスト", 3, "日本語"},
		{"zero limit", "abc", 0, ""},
		{"empty input", "", 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateRunes(tt.in, tt.limit); got != tt.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
			}
		})
	}
}
