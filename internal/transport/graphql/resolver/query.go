package resolver

import (
	"context"

	"github.com/google/uuid"

	catalogstore "github.com/heartmarshall/teambuilder/internal/catalog"
	"github.com/heartmarshall/teambuilder/internal/domain"
	"github.com/heartmarshall/teambuilder/internal/service/builder"
	catalogsvc "github.com/heartmarshall/teambuilder/internal/service/catalog"
	gql "github.com/heartmarshall/teambuilder/internal/transport/graphql"
)

type queryResolver struct{ *Resolver }

func (r *queryResolver) Characters(ctx context.Context, f catalogsvc.CharacterFilter) ([]domain.Character, error) {
	return r.catalog.Characters(ctx, f)
}

func (r *queryResolver) Psychubes(ctx context.Context, f catalogsvc.PsychubeFilter) ([]domain.Psychube, error) {
	return r.catalog.Psychubes(ctx, f)
}

func (r *queryResolver) Facets(ctx context.Context) catalogstore.Facets {
	return r.catalog.Facets(ctx)
}

func (r *queryResolver) Session(ctx context.Context, id uuid.UUID) (builder.View, error) {
	return r.builder.GetSession(ctx, id)
}

func (r *queryResolver) Teams(ctx context.Context) ([]domain.SavedTeam, error) {
	return r.teams.List(ctx)
}

func (r *queryResolver) object() *gql.Object {
	return &gql.Object{Name: "Query", Fields: map[string]gql.Resolve{
		"characters": func(ctx context.Context, _ any, args map[string]any) (any, error) {
			list, err := r.Characters(ctx, catalogsvc.CharacterFilter{
				Search:      argString(args, "search"),
				Attribute:   argString(args, "attribute"),
				DamageType:  argString(args, "damageType"),
				Tags:        argStrings(args, "tags"),
				Specialties: argStrings(args, "specialties"),
				Sort:        argString(args, "sort"),
			})
			if err != nil {
				return nil, err
			}
			return gql.As(characterType, list), nil
		},
		"psychubes": func(ctx context.Context, _ any, args map[string]any) (any, error) {
			list, err := r.Psychubes(ctx, catalogsvc.PsychubeFilter{
				Search: argString(args, "search"),
				Sort:   argString(args, "sort"),
			})
			if err != nil {
				return nil, err
			}
			return gql.As(psychubeType, list), nil
		},
		"facets": func(ctx context.Context, _ any, _ map[string]any) (any, error) {
			return gql.Typed{Type: facetsType, Value: r.Facets(ctx)}, nil
		},
		"session": func(ctx context.Context, _ any, args map[string]any) (any, error) {
			id, err := argUUID(args, "id")
			if err != nil {
				return nil, err
			}
			view, err := r.Session(ctx, id)
			if err != nil {
				return nil, err
			}
			return gql.Typed{Type: sessionType, Value: view}, nil
		},
		"teams": func(ctx context.Context, _ any, _ map[string]any) (any, error) {
			list, err := r.Teams(ctx)
			if err != nil {
				return nil, err
			}
			return gql.As(savedTeamType, list), nil
		},
	}}
}
