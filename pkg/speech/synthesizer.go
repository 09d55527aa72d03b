package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// ErrUnavailable signals that speech synthesis is disabled. Chat responses
// simply omit the audio asset in that case.
var ErrUnavailable = errors.New("speech synthesis not available")

// Result points at a generated audio asset.
type Result struct {
	URL  string
	Path string
}

// Synthesizer is the text-to-speech collaborator contract.
type Synthesizer interface {
	Available() bool
	Synthesize(ctx context.Context, text, sessionId string) (*Result, error)
}

var (
	boldRe    = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe  = regexp.MustCompile(`\*(.*?)\*`)
	headingRe = regexp.MustCompile(`#{1,6}\s+(.*?)(?:\n|$)`)
)

// CleanForSpeech strips markdown that reads badly aloud: emphasis markers
// are removed and headings become trailing-period sentences.
func CleanForSpeech(text string) string {
	text = boldRe.ReplaceAllString(text, "$1")
	text = italicRe.ReplaceAllString(text, "$1")
	text = headingRe.ReplaceAllString(text, "$1. ")
	return text
}

// chunkLimit is the maximum text length per synthesis request.
const chunkLimit = 180

// GoogleSynthesizer fetches synthesized speech from the translate TTS
// endpoint and writes mp3 files into the audio directory.
type GoogleSynthesizer struct {
	audioDir   string
	lang       string
	enabled    bool
	httpClient *http.Client
}

func NewGoogleSynthesizer(audioDir, lang string, enabled bool) *GoogleSynthesizer {
	if lang == "" {
		lang = "en"
	}
	return &GoogleSynthesizer{
		audioDir: audioDir,
		lang:     lang,
		enabled:  enabled,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (s *GoogleSynthesizer) Available() bool {
	return s.enabled
}

// Synthesize converts text into an mp3 asset named after the session and
// the current time so concurrent invocations never collide.
func (s *GoogleSynthesizer) Synthesize(ctx context.Context, text, sessionId string) (*Result, error) {
	if !s.enabled {
		return nil, ErrUnavailable
	}

	clean := strings.TrimSpace(CleanForSpeech(text))
	if clean == "" {
		return nil, errors.New("nothing to synthesize")
	}

	if err := os.MkdirAll(s.audioDir, 0o755); err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("%s_audio_%d.mp3", sessionId, time.Now().Unix())
	path := filepath.Join(s.audioDir, filename)

	out, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer out.Close()

	for _, chunk := range splitChunks(clean, chunkLimit) {
		if err := s.fetchChunk(ctx, chunk, out); err != nil {
			out.Close()
			os.Remove(path)
			return nil, err
		}
	}

	return &Result{
		URL:  "/audio/" + filename,
		Path: path,
	}, nil
}

func (s *GoogleSynthesizer) fetchChunk(ctx context.Context, chunk string, out io.Writer) error {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", s.lang)
	q.Set("q", chunk)

	endpoint := "https://translate.google.com/translate_tts?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	res, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("tts status error, got status %d", res.StatusCode)
	}

	_, err = io.Copy(out, res.Body)
	return err
}

// splitChunks breaks text into synthesis-sized pieces on whitespace where
// possible so words are not cut mid-way.
func splitChunks(text string, limit int) []string {
	var chunks []string
	words := strings.Fields(text)

	var current strings.Builder
	for _, word := range words {
		if current.Len() > 0 && current.Len()+1+len(word) > limit {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		// a single word longer than the limit is sent as its own chunk
		current.WriteString(word)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
