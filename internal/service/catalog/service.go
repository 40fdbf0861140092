// Package catalog serves catalog queries with input validation.
package catalog

import (
	"context"
	"log/slog"
	"strings"

	catalogstore "github.com/heartmarshall/teambuilder/internal/catalog"
	"github.com/heartmarshall/teambuilder/internal/domain"
)

type entityStore interface {
	Characters(q catalogstore.CharacterQuery) []domain.Character
	Psychubes(q catalogstore.PsychubeQuery) []domain.Psychube
	Facets() catalogstore.Facets
}

// Service provides catalog browsing.
type Service struct {
	store entityStore
	log   *slog.Logger
}

// NewService creates a new catalog Service.
func NewService(log *slog.Logger, store entityStore) *Service {
	return &Service{
		store: store,
		log:   log.With("service", "catalog"),
	}
}

// CharacterFilter holds the raw character filter parameters.
type CharacterFilter struct {
	Search      string
	Attribute   string
	DamageType  string
	Tags        []string
	Specialties []string
	Sort        string
}

// Validate checks all fields and collects all errors.
func (f CharacterFilter) Validate() error {
	var errs []domain.FieldError

	if f.Attribute != "" && !domain.Attribute(f.Attribute).IsValid() {
		errs = append(errs, domain.FieldError{Field: "attribute", Message: "unknown attribute"})
	}
	if f.DamageType != "" && !domain.DamageType(f.DamageType).IsValid() {
		errs = append(errs, domain.FieldError{Field: "damage_type", Message: "must be Reality or Mental"})
	}
	if f.Sort != "" && !domain.SortOrder(f.Sort).IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "unknown sort order"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PsychubeFilter holds the raw psychube filter parameters.
type PsychubeFilter struct {
	Search string
	Sort   string
}

// Validate checks all fields and collects all errors.
func (f PsychubeFilter) Validate() error {
	if f.Sort != "" && !domain.SortOrder(f.Sort).IsValid() {
		return domain.NewValidationError("sort", "unknown sort order")
	}
	return nil
}

// Characters returns the characters matching f.
func (s *Service) Characters(ctx context.Context, f CharacterFilter) ([]domain.Character, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	out := s.store.Characters(catalogstore.CharacterQuery{
		Search:      strings.TrimSpace(f.Search),
		Attribute:   domain.Attribute(f.Attribute),
		DamageType:  domain.DamageType(f.DamageType),
		Tags:        compact(f.Tags),
		Specialties: compact(f.Specialties),
		Sort:        domain.SortOrder(f.Sort),
	})

	s.log.DebugContext(ctx, "characters listed", slog.Int("count", len(out)))
	return out, nil
}

// Psychubes returns the psychubes matching f.
func (s *Service) Psychubes(ctx context.Context, f PsychubeFilter) ([]domain.Psychube, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return s.store.Psychubes(catalogstore.PsychubeQuery{
		Search: strings.TrimSpace(f.Search),
		Sort:   domain.SortOrder(f.Sort),
	}), nil
}

// Facets lists the filter values present in the catalog.
func (s *Service) Facets(context.Context) catalogstore.Facets {
	return s.store.Facets()
}

// compact trims values and drops blanks.
func compact(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
