package extract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtractPlainText(t *testing.T) {
	for _, ext := range []string{"notes.txt", "readme.md", "data.csv"} {
		path := writeFile(t, ext, "some study material")
		got, err := Extract(path)
		if err != nil {
			t.Errorf("Extract(%s) error: %v", ext, err)
		}
		if got != "some study material" {
			t.Errorf("Extract(%s) = %q", ext, got)
		}
	}
}

func TestExtractEmptyFileRejected(t *testing.T) {
	path := writeFile(t, "empty.txt", "   \n\t")
	if _, err := Extract(path); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestExtractUnsupportedExtension(t *testing.T) {
	for _, name := range []string{"slides.pptx", "old.ppt", "binary.exe", "image.png"} {
		path := writeFile(t, name, "content")
		if _, err := Extract(path); !errors.Is(err, ErrUnsupported) {
			t.Errorf("Extract(%s): expected ErrUnsupported, got %v", name, err)
		}
	}
}

func TestExtractMissingFile(t *testing.T) {
	if _, err := Extract(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("missing file did not error")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"notes.pdf", "notes.pdf"},
		{"my notes (final).pdf", "my_notes_final_.pdf"},
		{"../../etc/passwd", "passwd"},
		{"weird\x00name.txt", "weird_name.txt"},
		{"", "upload"},
		{"...", "upload"},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
