package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"studiq-be/pkg/events"
	"studiq-be/pkg/store"
	"studiq-be/pkg/tutor/style"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func writeTempFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	return path
}

func TestReapIdleSessionsRemovesStaleOnly(t *testing.T) {
	dir := t.TempDir()
	sessions := store.NewSessionStore()
	documents := store.NewDocumentStore()
	publisher := events.NewPublisher(nil, "")

	svc := NewCleanupService(sessions, documents, publisher, nopLogger{}, dir, time.Hour)

	docPath := writeTempFile(t, dir, "notes.txt")
	audioPath := writeTempFile(t, dir, "stale_audio_1.mp3")

	stale := sessions.GetOrCreate("stale", style.Blended, "hi")
	stale.AddDocument(store.DocumentRef{Id: "doc-1", Filename: "notes.txt", Path: docPath, UploadedAt: time.Now()})
	documents.Put("doc-1", "extracted text")
	stale.AppendTurn(store.ChatTurn{Role: store.ChatRoleAssistant, Content: "spoken", AudioPath: audioPath, Timestamp: time.Now()})
	stale.MarkActive(time.Now().Add(-25 * time.Hour))

	fresh := sessions.GetOrCreate("fresh", style.Blended, "hi")
	fresh.MarkActive(time.Now().Add(-1 * time.Hour))

	reaped := svc.ReapIdleSessions(time.Now())
	require.Equal(t, 1, reaped)

	_, staleExists := sessions.Get("stale")
	require.False(t, staleExists)
	_, freshExists := sessions.Get("fresh")
	require.True(t, freshExists)

	_, found := documents.Get("doc-1")
	require.False(t, found)

	_, err := os.Stat(docPath)
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(audioPath)
	require.True(t, os.IsNotExist(err))
}

func TestReapIdleSessionsToleratesMissingFiles(t *testing.T) {
	sessions := store.NewSessionStore()
	documents := store.NewDocumentStore()
	svc := NewCleanupService(sessions, documents, events.NewPublisher(nil, ""), nopLogger{}, t.TempDir(), time.Hour)

	s := sessions.GetOrCreate("gone", style.Visual, "hi")
	s.AddDocument(store.DocumentRef{Id: "doc-x", Filename: "a.txt", Path: "/nonexistent/a.txt"})
	s.MarkActive(time.Now().Add(-48 * time.Hour))

	require.Equal(t, 1, svc.ReapIdleSessions(time.Now()))
	require.Equal(t, 0, sessions.Len())
}

func TestSweepAudioDirRemovesOldMp3s(t *testing.T) {
	dir := t.TempDir()
	svc := NewCleanupService(store.NewSessionStore(), store.NewDocumentStore(), events.NewPublisher(nil, ""), nopLogger{}, dir, time.Hour)

	oldAudio := writeTempFile(t, dir, "u1_audio_1.mp3")
	past := time.Now().Add(-7 * time.Hour)
	require.NoError(t, os.Chtimes(oldAudio, past, past))

	freshAudio := writeTempFile(t, dir, "u2_audio_2.mp3")
	other := writeTempFile(t, dir, "keep.txt")
	require.NoError(t, os.Chtimes(other, past, past))

	removed := svc.SweepAudioDir(time.Now())
	require.Equal(t, 1, removed)

	_, err := os.Stat(oldAudio)
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(freshAudio)
	require.NoError(t, err)
	_, err = os.Stat(other)
	require.NoError(t, err)
}

func TestSweepAudioDirMissingDir(t *testing.T) {
	svc := NewCleanupService(store.NewSessionStore(), store.NewDocumentStore(), events.NewPublisher(nil, ""), nopLogger{}, "/nonexistent/audio", time.Hour)
	require.Equal(t, 0, svc.SweepAudioDir(time.Now()))
}
