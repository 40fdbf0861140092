package resolver

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/teambuilder/internal/service/builder"
	"github.com/heartmarshall/teambuilder/internal/service/teams"
	gql "github.com/heartmarshall/teambuilder/internal/transport/graphql"
)

type mutationResolver struct{ *Resolver }

// layoutMutation resolves a mutation on the session named by the session
// argument that answers with a MutationResult.
func (r *mutationResolver) layoutMutation(call func(ctx context.Context, id uuid.UUID, args map[string]any) (builder.MutationResult, error)) gql.Resolve {
	return func(ctx context.Context, _ any, args map[string]any) (any, error) {
		id, err := argUUID(args, "session")
		if err != nil {
			return nil, err
		}
		res, err := call(ctx, id, args)
		if err != nil {
			return nil, err
		}
		return gql.Typed{Type: mutationResultType, Value: res}, nil
	}
}

// sessionMutation is layoutMutation for calls that answer with the session view.
func (r *mutationResolver) sessionMutation(call func(ctx context.Context, id uuid.UUID, args map[string]any) (builder.View, error)) gql.Resolve {
	return func(ctx context.Context, _ any, args map[string]any) (any, error) {
		id, err := argUUID(args, "session")
		if err != nil {
			return nil, err
		}
		view, err := call(ctx, id, args)
		if err != nil {
			return nil, err
		}
		return gql.Typed{Type: sessionType, Value: view}, nil
	}
}

func (r *mutationResolver) object() *gql.Object {
	b := r.builder
	return &gql.Object{Name: "Mutation", Fields: map[string]gql.Resolve{
		"createSession": func(ctx context.Context, _ any, args map[string]any) (any, error) {
			view, err := b.CreateSession(ctx, builder.CreateSessionInput{Code: argString(args, "code")})
			if err != nil {
				return nil, err
			}
			return gql.Typed{Type: sessionType, Value: view}, nil
		},
		"closeSession": func(ctx context.Context, _ any, args map[string]any) (any, error) {
			id, err := argUUID(args, "id")
			if err != nil {
				return nil, err
			}
			if err := b.CloseSession(ctx, id); err != nil {
				return nil, err
			}
			return true, nil
		},

		"setMode": r.layoutMutation(func(ctx context.Context, id uuid.UUID, args map[string]any) (builder.MutationResult, error) {
			return b.SetMode(ctx, id, builder.ModeInput{Mode: argEnum(args, "mode")})
		}),
		"place": r.layoutMutation(func(ctx context.Context, id uuid.UUID, args map[string]any) (builder.MutationResult, error) {
			return b.Place(ctx, id, builder.PlaceInput{
				Index:    argInt(args, "index"),
				Kind:     argEnum(args, "kind"),
				EntityID: argString(args, "entityId"),
			})
		}),
		"clear": r.layoutMutation(func(ctx context.Context, id uuid.UUID, args map[string]any) (builder.MutationResult, error) {
			return b.Clear(ctx, id, builder.ClearInput{Index: argInt(args, "index"), Kind: argEnum(args, "kind")})
		}),
		"swap": r.layoutMutation(func(ctx context.Context, id uuid.UUID, args map[string]any) (builder.MutationResult, error) {
			return b.Swap(ctx, id, builder.SwapInput{
				From:     argInt(args, "from"),
				FromKind: argEnum(args, "fromKind"),
				To:       argInt(args, "to"),
				ToKind:   argEnum(args, "toKind"),
			})
		}),
		"drop": r.layoutMutation(func(ctx context.Context, id uuid.UUID, args map[string]any) (builder.MutationResult, error) {
			return b.Drop(ctx, id, builder.DropInput{Source: argString(args, "source"), Target: argString(args, "target")})
		}),
		"click": r.layoutMutation(func(ctx context.Context, id uuid.UUID, args map[string]any) (builder.MutationResult, error) {
			return b.Click(ctx, id, builder.ClickInput{Target: argString(args, "target")})
		}),
		"setMeta": r.layoutMutation(func(ctx context.Context, id uuid.UUID, args map[string]any) (builder.MutationResult, error) {
			return b.SetMeta(ctx, id, builder.MetaInput{Name: argString(args, "name"), Description: argString(args, "description")})
		}),
		"resetTeam": r.layoutMutation(func(ctx context.Context, id uuid.UUID, args map[string]any) (builder.MutationResult, error) {
			return b.Reset(ctx, id, builder.ResetInput{Confirm: argBool(args, "confirm")})
		}),

		"saveTeam": func(ctx context.Context, _ any, args map[string]any) (any, error) {
			id, err := argUUID(args, "session")
			if err != nil {
				return nil, err
			}
			team, err := b.SaveAsNew(ctx, id, builder.SaveInput{Name: argString(args, "name"), Description: argString(args, "description")})
			if err != nil {
				return nil, err
			}
			return gql.Typed{Type: savedTeamType, Value: team}, nil
		},
		"loadTeam": r.sessionMutation(func(ctx context.Context, id uuid.UUID, args map[string]any) (builder.View, error) {
			return b.LoadTeam(ctx, id, builder.LoadInput{TeamID: argString(args, "teamId")})
		}),
		"importCode": r.sessionMutation(func(ctx context.Context, id uuid.UUID, args map[string]any) (builder.View, error) {
			return b.Import(ctx, id, builder.ImportInput{Code: argString(args, "code")})
		}),
		"shareSession": func(ctx context.Context, _ any, args map[string]any) (any, error) {
			id, err := argUUID(args, "session")
			if err != nil {
				return nil, err
			}
			res, err := b.Share(ctx, id)
			if err != nil {
				return nil, err
			}
			return gql.Typed{Type: shareType, Value: shareNode{token: res.Token, url: res.URL}}, nil
		},

		"editTeam": func(ctx context.Context, _ any, args map[string]any) (any, error) {
			team, err := r.teams.Edit(ctx, argString(args, "id"), teams.EditInput{
				Name:        argString(args, "name"),
				Description: argString(args, "description"),
			})
			if err != nil {
				return nil, err
			}
			return gql.Typed{Type: savedTeamType, Value: team}, nil
		},
		"deleteTeam": func(ctx context.Context, _ any, args map[string]any) (any, error) {
			if err := r.teams.Delete(ctx, argString(args, "id")); err != nil {
				return nil, err
			}
			return true, nil
		},
		"shareTeam": func(ctx context.Context, _ any, args map[string]any) (any, error) {
			res, err := r.teams.Share(ctx, argString(args, "id"))
			if err != nil {
				return nil, err
			}
			return gql.Typed{Type: shareType, Value: shareNode{token: res.Token, url: res.URL}}, nil
		},
	}}
}
