package builder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/teambuilder/internal/autosave"
	"github.com/heartmarshall/teambuilder/internal/domain"
	"github.com/heartmarshall/teambuilder/internal/engine"
	"github.com/heartmarshall/teambuilder/internal/gesture"
	"github.com/heartmarshall/teambuilder/internal/mirror"
	"github.com/heartmarshall/teambuilder/pkg/ctxutil"
)

// CreateSession opens a session for the profile in ctx. With a code the
// session boots from the shared layout; otherwise the profile's draft is
// restored when there is one. A code that does not decode fails the call
// and no session is created.
func (s *Service) CreateSession(ctx context.Context, input CreateSessionInput) (View, error) {
	profile := ctxutil.ProfileFromCtx(ctx)

	var (
		boot   *domain.Layout
		source = "empty"
	)
	if code := strings.TrimSpace(input.Code); code != "" {
		l, err := decodeCode(code)
		s.metrics.ShareDecoded(ctx, err)
		if err != nil {
			return View{}, err
		}
		if l.Name == "" {
			l.Name = NameFromURL
		}
		boot, source = &l, "share_url"
	} else {
		draft, err := s.store.ReadDraft(ctx, profile)
		if err != nil {
			return View{}, fmt.Errorf("read draft: %w", err)
		}
		if draft != nil {
			boot, source = draft, "draft"
		}
	}

	sess := s.newSession(profile)
	if boot != nil {
		sess.engine.LoadLayout(*boot, "")
	}
	s.register(ctx, sess)

	s.log.InfoContext(ctx, "session created",
		slog.String("session_id", sess.ID.String()),
		slog.String("profile", profile),
		slog.String("source", source),
	)

	return sess.view(), nil
}

func (s *Service) newSession(profile string) *Session {
	eng := engine.New(s.catalog)
	translator := gesture.NewTranslator(eng, s.catalog)
	mir := mirror.NewSynchronizer(s.catalog, translator, eng.Snapshot())
	saver := autosave.New(s.log, profile, eng, s.store, s.clock, s.cfg.AutosaveDelay, s.metrics)

	sess := &Session{
		ID:         uuid.New(),
		Profile:    profile,
		engine:     eng,
		mirror:     mir,
		saver:      saver,
		translator: translator,
	}
	sess.unsubs = append(sess.unsubs,
		eng.Subscribe(mir.OnChange),
		eng.Subscribe(saver.OnChange),
		eng.Subscribe(func(ch engine.Change) {
			s.metrics.LayoutChanged(context.Background(), ch.Reason)
		}),
	)
	sess.touch(s.now())
	return sess
}

// register adds sess, evicting the least recently used session when the
// limit is reached.
func (s *Service) register(ctx context.Context, sess *Session) {
	var evicted *Session

	s.mu.Lock()
	if s.cfg.MaxSessions > 0 && len(s.sessions) >= s.cfg.MaxSessions {
		for _, cand := range s.sessions {
			if evicted == nil || cand.lastSeen.Load() < evicted.lastSeen.Load() {
				evicted = cand
			}
		}
		delete(s.sessions, evicted.ID)
	}
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	if evicted != nil {
		evicted.close()
		s.log.InfoContext(ctx, "session evicted",
			slog.String("session_id", evicted.ID.String()),
			slog.String("reason", "capacity"),
		)
	}
}

// GetSession returns the current view of a session.
func (s *Service) GetSession(ctx context.Context, id uuid.UUID) (View, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return View{}, err
	}
	return sess.view(), nil
}

// CloseSession writes any pending autosave and discards the session.
func (s *Service) CloseSession(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok && sess.Profile != ctxutil.ProfileFromCtx(ctx) {
		ok = false
	}
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}

	sess.close()
	s.log.InfoContext(ctx, "session closed", slog.String("session_id", id.String()))
	return nil
}
