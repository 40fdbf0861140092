// Package store persists saved teams and the autosave draft of each
// profile in a key-value backend.
//
// Two keys exist per profile: the saved-team list (a JSON array) and the
// draft (a JSON object). Data that no longer parses is treated as absent
// and logged; it never surfaces as an error to callers.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/teambuilder/internal/codec"
	"github.com/heartmarshall/teambuilder/internal/domain"
)

// KV is a byte-valued key-value backend. Get returns domain.ErrNotFound
// for a missing key; Delete of a missing key is not an error.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Updater is implemented by backends that can read-modify-write one key
// atomically. fn receives nil when the key is missing; an error from fn
// aborts the write and is returned as is.
type Updater interface {
	Update(ctx context.Context, key string, fn func(old []byte) ([]byte, error)) error
}

const keyPrefix = "teambuilder:"

// SavedTeamsKey is the key of a profile's saved-team list.
func SavedTeamsKey(profile string) string { return keyPrefix + profile + ":saved_teams" }

// DraftKey is the key of a profile's autosave draft.
func DraftKey(profile string) string { return keyPrefix + profile + ":autosave_team" }

// Gateway is the persistence gateway.
type Gateway struct {
	kv  KV
	log *slog.Logger
	now func() time.Time

	// Serialises read-modify-write of one profile's list within this process.
	locks sync.Map // profile -> *sync.Mutex
}

// NewGateway creates a Gateway over kv.
func NewGateway(logger *slog.Logger, kv KV) *Gateway {
	return &Gateway{
		kv:  kv,
		log: logger.With("component", "store"),
		now: time.Now,
	}
}

func (g *Gateway) lock(profile string) func() {
	m, _ := g.locks.LoadOrStore(profile, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// ListSaved returns the profile's saved teams in insertion order.
func (g *Gateway) ListSaved(ctx context.Context, profile string) ([]domain.SavedTeam, error) {
	return g.readTeams(ctx, profile)
}

// Get returns one saved team.
func (g *Gateway) Get(ctx context.Context, profile, id string) (domain.SavedTeam, error) {
	teams, err := g.readTeams(ctx, profile)
	if err != nil {
		return domain.SavedTeam{}, err
	}
	for _, t := range teams {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.SavedTeam{}, fmt.Errorf("saved team %s: %w", id, domain.ErrNotFound)
}

// Create appends team under a fresh id: the current unix time in
// milliseconds, bumped past any id already in the list.
func (g *Gateway) Create(ctx context.Context, profile string, team domain.SavedTeam) (domain.SavedTeam, error) {
	err := g.modifyTeams(ctx, profile, func(teams []domain.SavedTeam) ([]domain.SavedTeam, error) {
		team.ID = nextID(g.now(), teams)
		return append(teams, team), nil
	})
	if err != nil {
		return domain.SavedTeam{}, err
	}
	return team, nil
}

// Update applies fn to the team with the given id and stores the result.
func (g *Gateway) Update(ctx context.Context, profile, id string, fn func(*domain.SavedTeam)) (domain.SavedTeam, error) {
	var updated domain.SavedTeam
	err := g.modifyTeams(ctx, profile, func(teams []domain.SavedTeam) ([]domain.SavedTeam, error) {
		for i := range teams {
			if teams[i].ID != id {
				continue
			}
			fn(&teams[i])
			teams[i].ID = id
			updated = teams[i]
			return teams, nil
		}
		return nil, fmt.Errorf("saved team %s: %w", id, domain.ErrNotFound)
	})
	if err != nil {
		return domain.SavedTeam{}, err
	}
	return updated, nil
}

// Delete removes a saved team.
func (g *Gateway) Delete(ctx context.Context, profile, id string) error {
	return g.modifyTeams(ctx, profile, func(teams []domain.SavedTeam) ([]domain.SavedTeam, error) {
		kept := teams[:0]
		for _, t := range teams {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		if len(kept) == len(teams) {
			return nil, fmt.Errorf("saved team %s: %w", id, domain.ErrNotFound)
		}
		return kept, nil
	})
}

// ReadDraft returns the profile's draft, or nil when there is none. A draft
// that no longer parses is deleted.
func (g *Gateway) ReadDraft(ctx context.Context, profile string) (*domain.Layout, error) {
	data, err := g.kv.Get(ctx, DraftKey(profile))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read draft: %w", err)
	}

	l, err := codec.UnmarshalDraft(data)
	if err != nil {
		g.log.WarnContext(ctx, "discarding corrupt draft",
			slog.String("profile", profile),
			slog.String("error", err.Error()),
		)
		if derr := g.kv.Delete(ctx, DraftKey(profile)); derr != nil {
			return nil, fmt.Errorf("delete corrupt draft: %w", derr)
		}
		return nil, nil
	}
	return &l, nil
}

// WriteDraft stores l as the profile's draft.
func (g *Gateway) WriteDraft(ctx context.Context, profile string, l domain.Layout) error {
	data, err := codec.MarshalDraft(l)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := g.kv.Set(ctx, DraftKey(profile), data); err != nil {
		return fmt.Errorf("write draft: %w", err)
	}
	return nil
}

// ClearDraft removes the profile's draft.
func (g *Gateway) ClearDraft(ctx context.Context, profile string) error {
	if err := g.kv.Delete(ctx, DraftKey(profile)); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}

func (g *Gateway) readTeams(ctx context.Context, profile string) ([]domain.SavedTeam, error) {
	data, err := g.kv.Get(ctx, SavedTeamsKey(profile))
	if errors.Is(err, domain.ErrNotFound) {
		return []domain.SavedTeam{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read saved teams: %w", err)
	}
	return g.decodeTeams(ctx, profile, data), nil
}

func (g *Gateway) decodeTeams(ctx context.Context, profile string, data []byte) []domain.SavedTeam {
	if data == nil {
		return []domain.SavedTeam{}
	}
	teams, err := codec.UnmarshalTeams(data)
	if err != nil {
		g.log.WarnContext(ctx, "saved teams unreadable, treating as empty",
			slog.String("profile", profile),
			slog.String("error", err.Error()),
		)
		return []domain.SavedTeam{}
	}
	return teams
}

// modifyTeams runs a read-modify-write of the profile's list. Backends
// implementing Updater do it atomically; others rely on the per-profile
// lock, which only covers this process.
func (g *Gateway) modifyTeams(ctx context.Context, profile string, fn func([]domain.SavedTeam) ([]domain.SavedTeam, error)) error {
	defer g.lock(profile)()

	key := SavedTeamsKey(profile)
	apply := func(old []byte) ([]byte, error) {
		next, err := fn(g.decodeTeams(ctx, profile, old))
		if err != nil {
			return nil, err
		}
		data, err := codec.MarshalTeams(next)
		if err != nil {
			return nil, fmt.Errorf("encode saved teams: %w", err)
		}
		return data, nil
	}

	if u, ok := g.kv.(Updater); ok {
		if err := u.Update(ctx, key, apply); err != nil {
			return fmt.Errorf("update saved teams: %w", err)
		}
		return nil
	}

	old, err := g.kv.Get(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		old, err = nil, nil
	}
	if err != nil {
		return fmt.Errorf("read saved teams: %w", err)
	}
	data, err := apply(old)
	if err != nil {
		return err
	}
	if err := g.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("write saved teams: %w", err)
	}
	return nil
}

func nextID(now time.Time, teams []domain.SavedTeam) string {
	id := now.UnixMilli()
	for _, t := range teams {
		if n, err := strconv.ParseInt(t.ID, 10, 64); err == nil && n >= id {
			id = n + 1
		}
	}
	return strconv.FormatInt(id, 10)
}
