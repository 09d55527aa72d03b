package style

import "testing"

func TestFromQuizAnswer(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   Style
	}{
		{"videos maps to visual", "Watching videos", Visual},
		{"books maps to reading", "Reading books", Reading},
		{"podcasts maps to auditory", "Listening to podcasts", Auditory},
		{"doing maps to hands-on", "Doing it myself", HandsOn},
		{"unknown answer defaults", "Interpretive dance", Blended},
		{"empty answer defaults", "", Blended},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromQuizAnswer(tt.answer); got != tt.want {
				t.Errorf("FromQuizAnswer(%q) = %s, want %s", tt.answer, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	for _, s := range All() {
		got, err := Parse(string(s))
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", s, err)
		}
		if got != s {
			t.Errorf("Parse(%q) = %s", s, got)
		}
	}

	if _, err := Parse("kinesthetic"); err == nil {
		t.Error("Parse accepted an unknown style")
	}
	if _, err := Parse(""); err == nil {
		t.Error("Parse accepted an empty style")
	}
}

func TestQuizAnswerRoundTrip(t *testing.T) {
	for _, s := range All() {
		if s == Blended {
			continue // "Others" intentionally maps back to blended's default
		}
		if got := FromQuizAnswer(ToQuizAnswer(s)); got != s {
			t.Errorf("round trip for %s produced %s", s, got)
		}
	}
	if got := FromQuizAnswer(ToQuizAnswer(Blended)); got != Blended {
		t.Errorf("blended write-back should resolve to blended, got %s", got)
	}
}

func TestProfileForUnknownFallsBack(t *testing.T) {
	p := ProfileFor(Style("made-up"))
	if p != profiles[Blended] {
		t.Error("unknown style should fall back to the blended profile")
	}
	for _, s := range All() {
		p := ProfileFor(s)
		if p.Prompt == "" || p.ModelInstruction == "" || p.Description == "" {
			t.Errorf("profile for %s has empty directives", s)
		}
	}
}
