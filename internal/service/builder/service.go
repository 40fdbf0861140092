// Package builder runs builder sessions: one live layout per session, wired
// to its mirror views and its autosave, behind the entry points the
// transports expose.
package builder

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/teambuilder/internal/autosave"
	"github.com/heartmarshall/teambuilder/internal/config"
	"github.com/heartmarshall/teambuilder/internal/domain"
	"github.com/heartmarshall/teambuilder/internal/engine"
	"github.com/heartmarshall/teambuilder/pkg/ctxutil"
)

type teamStore interface {
	Get(ctx context.Context, profile, id string) (domain.SavedTeam, error)
	Create(ctx context.Context, profile string, team domain.SavedTeam) (domain.SavedTeam, error)
	Update(ctx context.Context, profile, id string, fn func(*domain.SavedTeam)) (domain.SavedTeam, error)
	ReadDraft(ctx context.Context, profile string) (*domain.Layout, error)
	WriteDraft(ctx context.Context, profile string, l domain.Layout) error
	ClearDraft(ctx context.Context, profile string) error
}

type entityCatalog interface {
	Has(kind domain.SlotKind, id string) bool
	KindOf(id string) (domain.SlotKind, bool)
	Character(id string) (domain.Character, bool)
	Psychube(id string) (domain.Psychube, bool)
}

type recorder interface {
	autosave.Observer
	LayoutChanged(ctx context.Context, reason engine.Reason)
	ShareDecoded(ctx context.Context, err error)
}

// Default names given to layouts that arrive without one.
const (
	NameFromURL  = "Loaded from URL"
	NameFromCode = "Loaded from Code"
)

// Service owns the live sessions.
type Service struct {
	store   teamStore
	catalog entityCatalog
	metrics recorder
	cfg     config.BuilderConfig
	clock   autosave.Clock
	now     func() time.Time
	log     *slog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

// NewService creates a new builder Service. A nil clock is the wall clock.
func NewService(
	log *slog.Logger,
	cfg config.BuilderConfig,
	store teamStore,
	catalog entityCatalog,
	metrics recorder,
	clock autosave.Clock,
) *Service {
	if clock == nil {
		clock = autosave.RealClock
	}
	return &Service{
		store:    store,
		catalog:  catalog,
		metrics:  metrics,
		cfg:      cfg,
		clock:    clock,
		now:      time.Now,
		log:      log.With("service", "builder"),
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Count returns the number of live sessions.
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// session returns the caller's session and marks it as used. Sessions of
// other profiles are reported as not found.
func (s *Service) session(ctx context.Context, id uuid.UUID) (*Session, error) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok || sess.Profile != ctxutil.ProfileFromCtx(ctx) {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	sess.touch(s.now())
	return sess, nil
}
