package preference

import (
	"strings"
	"testing"
)

func TestSummaryEmptyAnswers(t *testing.T) {
	if got := Summary(nil); got != AdaptiveFallback {
		t.Errorf("nil answers: got %q", got)
	}
	if got := Summary(map[string]string{}); got != AdaptiveFallback {
		t.Errorf("empty answers: got %q", got)
	}
}

func TestSummaryUnknownAnswersOmitted(t *testing.T) {
	got := Summary(map[string]string{
		KeyStudyEnv:     "On the moon",
		KeyStruggleHelp: "Shouting",
	})
	if got != AdaptiveFallback {
		t.Errorf("fully unrecognized answers should fall back, got %q", got)
	}
}

func TestSummaryOrdering(t *testing.T) {
	answers := map[string]string{
		KeyLearningStyle: "Watching videos",
		KeyStudyEnv:      "Library",
		KeyRetainInfo:    "Teaching others",
		KeyTopicApproach: "I prefer a broad overview first",
		KeyStudyDuration: "15-30 minutes",
		KeyStruggleHelp:  "Hints or clues",
		KeyInteraction:   "Witty and humorous",
	}
	got := Summary(answers)

	ordered := []string{
		"Your primary learning style appears to be: visual.",
		studyEnvironments["Library"],
		retentionGuidance["Teaching others"],
		"I'll start with big-picture concepts before diving into details.",
		focusDurations["15-30 minutes"],
		helpApproaches["Hints or clues"],
		interactionStyles["Witty and humorous"],
	}

	last := -1
	for _, fragment := range ordered {
		idx := strings.Index(got, fragment)
		if idx < 0 {
			t.Fatalf("summary missing fragment %q", fragment)
		}
		if idx < last {
			t.Errorf("fragment %q out of order", fragment)
		}
		last = idx
	}
}

func TestSummaryTopicApproachDetails(t *testing.T) {
	got := Summary(map[string]string{KeyTopicApproach: "Dive into details immediately"})
	if !strings.Contains(got, "specific details and mechanisms") {
		t.Errorf("detail-first preference not reflected: %q", got)
	}
}

func TestCatalogLookups(t *testing.T) {
	if StudyEnvironment("Quiet room") == "" {
		t.Error("known environment returned empty guidance")
	}
	if StudyEnvironment("Submarine") != "" {
		t.Error("unknown environment should return empty guidance")
	}
	if FocusDuration("More than an hour") == "" {
		t.Error("known duration returned empty guidance")
	}
	if HelpApproach("A summary or analogy") == "" {
		t.Error("known help approach returned empty guidance")
	}
	if InteractionStyle("Friendly and casual") == "" {
		t.Error("known interaction style returned empty guidance")
	}
}
