package speech

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestCleanForSpeech(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bold removed", "this is **important** stuff", "this is important stuff"},
		{"italic removed", "an *emphasized* word", "an emphasized word"},
		{"heading to sentence", "# Photosynthesis\ncontent", "Photosynthesis. content"},
		{"deep heading to sentence", "### Key Points\nmore", "Key Points. more"},
		{"heading on last line", "wrap up\n## Summary", "wrap up\nSummary. "},
		{"plain text untouched", "nothing special here", "nothing special here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanForSpeech(tt.in); got != tt.want {
				t.Errorf("CleanForSpeech(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSynthesizeUnavailable(t *testing.T) {
	s := NewGoogleSynthesizer(t.TempDir(), "en", false)
	if s.Available() {
		t.Error("disabled synthesizer reports available")
	}

	res, err := s.Synthesize(context.Background(), "hello", "sess")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
	if res != nil {
		t.Error("unavailable synthesizer returned a result")
	}
}

func TestSplitChunks(t *testing.T) {
	chunks := splitChunks("one two three four", 9)
	want := []string{"one two", "three", "four"}
	if len(chunks) != len(want) {
		t.Fatalf("chunks = %v", chunks)
	}
	for i, w := range want {
		if chunks[i] != w {
			t.Errorf("chunk[%d] = %q, want %q", i, chunks[i], w)
		}
	}
	for _, c := range chunks {
		if len(c) > 9 {
			t.Errorf("chunk %q exceeds limit", c)
		}
		if strings.HasPrefix(c, " ") || strings.HasSuffix(c, " ") {
			t.Errorf("chunk %q has stray whitespace", c)
		}
	}

	if got := splitChunks("", 10); len(got) != 0 {
		t.Errorf("empty input produced chunks: %v", got)
	}

	// a single oversized word still goes out in one chunk
	if got := splitChunks("supercalifragilistic", 5); len(got) != 1 {
		t.Errorf("oversized word split: %v", got)
	}
}
