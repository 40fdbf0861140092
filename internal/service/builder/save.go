package builder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/teambuilder/internal/domain"
)

// SaveAsNew stores the live layout as a new saved team under the given
// name. The new record becomes the session's loaded record, so later edits
// update it in place, and the profile's draft is removed.
func (s *Service) SaveAsNew(ctx context.Context, id uuid.UUID, input SaveInput) (domain.SavedTeam, error) {
	if err := input.validate(s.cfg.MaxNameLength, s.cfg.MaxDescriptionLength); err != nil {
		return domain.SavedTeam{}, err
	}

	sess, err := s.session(ctx, id)
	if err != nil {
		return domain.SavedTeam{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.engine.Export() == nil {
		return domain.SavedTeam{}, domain.ErrEmptyLayout
	}

	name := strings.TrimSpace(input.Name)
	desc := strings.TrimSpace(input.Description)
	sess.engine.SetMeta(name, desc)
	sess.saver.Cancel()

	l := sess.engine.Snapshot()
	saved, err := s.store.Create(ctx, sess.Profile, domain.SavedTeam{
		Name:        name,
		Description: desc,
		Mode:        l.Mode,
		Teams:       l.Teams(),
	})
	if err != nil {
		return domain.SavedTeam{}, fmt.Errorf("create saved team: %w", err)
	}

	if err := s.store.ClearDraft(ctx, sess.Profile); err != nil {
		s.log.WarnContext(ctx, "draft not cleared after save",
			slog.String("profile", sess.Profile),
			slog.String("error", err.Error()),
		)
	}
	sess.engine.SetLoadedID(saved.ID)

	s.log.InfoContext(ctx, "team saved",
		slog.String("session_id", id.String()),
		slog.String("profile", sess.Profile),
		slog.String("team_id", saved.ID),
	)

	return saved, nil
}

// LoadTeam replaces the live layout with a saved team. A pending autosave
// of the previous layout is dropped and the profile's draft is removed.
func (s *Service) LoadTeam(ctx context.Context, id uuid.UUID, input LoadInput) (View, error) {
	if err := input.Validate(); err != nil {
		return View{}, err
	}

	sess, err := s.session(ctx, id)
	if err != nil {
		return View{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	team, err := s.store.Get(ctx, sess.Profile, input.TeamID)
	if err != nil {
		return View{}, fmt.Errorf("get saved team: %w", err)
	}

	sess.saver.Cancel()
	if err := s.store.ClearDraft(ctx, sess.Profile); err != nil {
		return View{}, fmt.Errorf("clear draft: %w", err)
	}
	sess.engine.LoadLayout(team.Layout(), team.ID)

	s.log.InfoContext(ctx, "team loaded",
		slog.String("session_id", id.String()),
		slog.String("team_id", team.ID),
	)

	return sess.view(), nil
}

// Import replaces the live layout with a pasted share code. A code that
// does not decode leaves the session untouched.
func (s *Service) Import(ctx context.Context, id uuid.UUID, input ImportInput) (View, error) {
	if err := input.Validate(); err != nil {
		return View{}, err
	}

	sess, err := s.session(ctx, id)
	if err != nil {
		return View{}, err
	}

	l, err := decodeCode(input.Code)
	s.metrics.ShareDecoded(ctx, err)
	if err != nil {
		return View{}, err
	}
	if l.Name == "" {
		l.Name = NameFromCode
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.engine.LoadLayout(l, "")

	s.log.InfoContext(ctx, "share code imported",
		slog.String("session_id", id.String()),
		slog.String("mode", l.Mode.String()),
	)

	return sess.view(), nil
}
