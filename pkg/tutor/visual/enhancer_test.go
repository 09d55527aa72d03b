package visual

import (
	"strings"
	"testing"
)

func TestEnhancePlainTextUnchanged(t *testing.T) {
	inputs := []string{
		"Photosynthesis converts light into chemical energy.",
		"A plain paragraph.\n\nAnother paragraph with no markers.",
		"",
	}
	for _, in := range inputs {
		if got := Enhance(in); got != in {
			t.Errorf("plain text was modified:\nin:  %q\nout: %q", in, got)
		}
	}
}

func TestEnhanceListItems(t *testing.T) {
	got := Enhance("- first point\n- second point")
	if !strings.HasPrefix(got, "📌 first point") {
		t.Errorf("list marker missing: %q", got)
	}
	if strings.Count(got, "📌") != 2 {
		t.Errorf("expected two list markers: %q", got)
	}
}

func TestEnhanceHeadingMarkers(t *testing.T) {
	tests := []struct {
		heading string
		marker  string
	}{
		{"# Math equations", "🧮"},
		{"# Ancient Rome timeline", "📜"},
		{"# Chemistry basics", "🔬"},
		{"# Step by step procedure", "📋"},
		{"# A worked example", "💡"},
		{"# Summary of findings", "📝"},
		{"# Something else entirely", "🔍"},
	}
	for _, tt := range tests {
		got := Enhance(tt.heading)
		if !strings.Contains(got, tt.marker) {
			t.Errorf("Enhance(%q) = %q, want marker %s", tt.heading, got, tt.marker)
		}
	}
}

func TestEnhanceDividerBeforeSubHeadings(t *testing.T) {
	got := Enhance("intro\n## Science section\nbody")
	if !strings.Contains(got, "\n\n---\n\n## ") {
		t.Errorf("divider missing before level-2 heading: %q", got)
	}

	got = Enhance("intro\n### History details\nbody")
	if !strings.Contains(got, "\n\n---\n\n### ") {
		t.Errorf("divider missing before level-3 heading: %q", got)
	}

	// top-level headings get no divider
	got = Enhance("intro\n# Title\nbody")
	if strings.Contains(got, "---") {
		t.Errorf("unexpected divider before level-1 heading: %q", got)
	}
}

func TestEnhanceInlineDashNotTreatedAsList(t *testing.T) {
	in := "ranges are 1-5 and 6-10"
	if got := Enhance(in); got != in {
		t.Errorf("inline dash mangled: %q", got)
	}
}
