package builder

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// RunJanitor evicts sessions idle for longer than the configured TTL,
// checking every interval, until ctx is done. Evicted sessions write their
// pending autosave first.
func (s *Service) RunJanitor(ctx context.Context) {
	interval := s.cfg.JanitorInterval
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.EvictIdle(ctx); n > 0 {
				s.log.InfoContext(ctx, "idle sessions evicted", slog.Int("count", n))
			}
		}
	}
}

// EvictIdle closes every session idle for longer than the TTL and returns
// how many were closed.
func (s *Service) EvictIdle(ctx context.Context) int {
	if s.cfg.SessionIdleTTL <= 0 {
		return 0
	}
	now := s.now()

	s.mu.Lock()
	var idle []*Session
	for id, sess := range s.sessions {
		if sess.idleSince(now) > s.cfg.SessionIdleTTL {
			idle = append(idle, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range idle {
		sess.close()
		s.log.DebugContext(ctx, "session evicted",
			slog.String("session_id", sess.ID.String()),
			slog.String("reason", "idle"),
		)
	}
	return len(idle)
}

// Shutdown closes every session, writing pending autosaves.
func (s *Service) Shutdown(ctx context.Context) {
	s.mu.Lock()
	all := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		all = append(all, sess)
	}
	s.sessions = make(map[uuid.UUID]*Session)
	s.mu.Unlock()

	for _, sess := range all {
		sess.close()
	}
	s.log.InfoContext(ctx, "sessions closed", slog.Int("count", len(all)))
}
