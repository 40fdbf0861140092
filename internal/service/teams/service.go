// Package teams manages a profile's saved teams outside of any session.
package teams

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/teambuilder/internal/codec"
	"github.com/heartmarshall/teambuilder/internal/domain"
	"github.com/heartmarshall/teambuilder/internal/layout"
	"github.com/heartmarshall/teambuilder/pkg/ctxutil"
)

type teamStore interface {
	ListSaved(ctx context.Context, profile string) ([]domain.SavedTeam, error)
	Get(ctx context.Context, profile, id string) (domain.SavedTeam, error)
	Update(ctx context.Context, profile, id string, fn func(*domain.SavedTeam)) (domain.SavedTeam, error)
	Delete(ctx context.Context, profile, id string) error
}

// Service provides saved-team operations.
type Service struct {
	store   teamStore
	baseURL string
	maxName int
	maxDesc int
	log     *slog.Logger
}

// NewService creates a new teams Service. Share links are built on baseURL.
func NewService(log *slog.Logger, store teamStore, baseURL string, maxName, maxDesc int) *Service {
	return &Service{
		store:   store,
		baseURL: baseURL,
		maxName: maxName,
		maxDesc: maxDesc,
		log:     log.With("service", "teams"),
	}
}

// List returns the caller's saved teams in save order.
func (s *Service) List(ctx context.Context) ([]domain.SavedTeam, error) {
	return s.store.ListSaved(ctx, ctxutil.ProfileFromCtx(ctx))
}

// EditInput renames a saved team. Name is required; both fields are trimmed.
type EditInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (i EditInput) validate(maxName, maxDesc int) error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxName {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", maxName)})
	}
	if utf8.RuneCountInString(strings.TrimSpace(i.Description)) > maxDesc {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", maxDesc)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Edit changes a saved team's name and description in place.
func (s *Service) Edit(ctx context.Context, id string, input EditInput) (domain.SavedTeam, error) {
	if err := input.validate(s.maxName, s.maxDesc); err != nil {
		return domain.SavedTeam{}, err
	}
	profile := ctxutil.ProfileFromCtx(ctx)

	updated, err := s.store.Update(ctx, profile, id, func(t *domain.SavedTeam) {
		t.Name = strings.TrimSpace(input.Name)
		t.Description = strings.TrimSpace(input.Description)
	})
	if err != nil {
		return domain.SavedTeam{}, fmt.Errorf("update saved team: %w", err)
	}

	s.log.InfoContext(ctx, "team edited",
		slog.String("profile", profile),
		slog.String("team_id", id),
	)
	return updated, nil
}

// Delete removes a saved team.
func (s *Service) Delete(ctx context.Context, id string) error {
	profile := ctxutil.ProfileFromCtx(ctx)

	if err := s.store.Delete(ctx, profile, id); err != nil {
		return fmt.Errorf("delete saved team: %w", err)
	}

	s.log.InfoContext(ctx, "team deleted",
		slog.String("profile", profile),
		slog.String("team_id", id),
	)
	return nil
}

// ShareResult is a share token and the link that carries it.
type ShareResult struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// Share encodes a saved team without loading it into a session.
func (s *Service) Share(ctx context.Context, id string) (ShareResult, error) {
	team, err := s.store.Get(ctx, ctxutil.ProfileFromCtx(ctx), id)
	if err != nil {
		return ShareResult{}, fmt.Errorf("get saved team: %w", err)
	}

	l := team.Layout()
	l.Slots = layout.Generate(l.Mode).Normalize(l.Slots)
	if l.IsEmpty() {
		return ShareResult{}, domain.ErrEmptyLayout
	}

	token, err := codec.Encode(l)
	if err != nil {
		return ShareResult{}, fmt.Errorf("encode share token: %w", err)
	}
	return ShareResult{Token: token, URL: codec.ShareURL(s.baseURL, token)}, nil
}
