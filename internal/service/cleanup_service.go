package service

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"studiq-be/internal/constant"
	"studiq-be/internal/pkg/logger"
	"studiq-be/pkg/events"
	"studiq-be/pkg/store"
)

// ICleanupService reclaims idle sessions and stale audio assets. It runs as
// a background ticker task owned by main.
type ICleanupService interface {
	Run(ctx context.Context)
	ReapIdleSessions(now time.Time) int
	SweepAudioDir(now time.Time) int
}

type cleanupService struct {
	sessions  *store.SessionStore
	documents *store.DocumentStore
	publisher *events.Publisher
	logger    logger.ILogger
	audioDir  string
	interval  time.Duration
}

func NewCleanupService(
	sessions *store.SessionStore,
	documents *store.DocumentStore,
	publisher *events.Publisher,
	sysLogger logger.ILogger,
	audioDir string,
	interval time.Duration,
) ICleanupService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &cleanupService{
		sessions:  sessions,
		documents: documents,
		publisher: publisher,
		logger:    sysLogger,
		audioDir:  audioDir,
		interval:  interval,
	}
}

// Run sweeps on a fixed interval until the context is cancelled.
func (s *cleanupService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			reaped := s.ReapIdleSessions(now)
			swept := s.SweepAudioDir(now)
			if reaped > 0 || swept > 0 {
				s.logger.Info("cleanup", "sweep finished", map[string]interface{}{
					"sessions_reaped": reaped,
					"audio_removed":   swept,
				})
			}
		}
	}
}

// ReapIdleSessions removes every session idle past the TTL together with its
// uploaded files, extracted text, and generated audio. A failure on one
// session never blocks the rest.
func (s *cleanupService) ReapIdleSessions(now time.Time) int {
	reaped := 0
	for _, session := range s.sessions.All() {
		if now.Sub(session.LastActive()) <= constant.SessionIdleTTL {
			continue
		}

		for _, doc := range session.Documents() {
			s.documents.Delete(doc.Id)
			if doc.Path != "" {
				if err := os.Remove(doc.Path); err != nil && !os.IsNotExist(err) {
					s.logger.Warn("cleanup", "failed to remove uploaded file", map[string]interface{}{
						"path":  doc.Path,
						"error": err.Error(),
					})
				}
			}
		}

		for _, turn := range session.History() {
			if turn.AudioPath == "" {
				continue
			}
			if err := os.Remove(turn.AudioPath); err != nil && !os.IsNotExist(err) {
				s.logger.Warn("cleanup", "failed to remove audio file", map[string]interface{}{
					"path":  turn.AudioPath,
					"error": err.Error(),
				})
			}
		}

		s.sessions.Delete(session.Id())
		reaped++

		if err := s.publisher.Publish(context.Background(), events.New(events.TypeSessionReaped, map[string]interface{}{
			"session_id": session.Id(),
			"idle_since": session.LastActive(),
		})); err != nil {
			s.logger.Warn("cleanup", "failed to publish reap event", map[string]interface{}{"error": err.Error()})
		}
	}
	return reaped
}

// SweepAudioDir removes audio files older than the audio cutoff regardless
// of session state, catching assets orphaned by crashes.
func (s *cleanupService) SweepAudioDir(now time.Time) int {
	entries, err := os.ReadDir(s.audioDir)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("cleanup", "failed to read audio dir", map[string]interface{}{
				"dir":   s.audioDir,
				"error": err.Error(),
			})
		}
		return 0
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".mp3" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) <= constant.AudioMaxAge {
			continue
		}
		path := filepath.Join(s.audioDir, entry.Name())
		if err := os.Remove(path); err != nil {
			s.logger.Warn("cleanup", "failed to remove stale audio", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
			continue
		}
		removed++
	}
	return removed
}
