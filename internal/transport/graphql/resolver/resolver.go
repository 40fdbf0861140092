package resolver

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vektah/gqlparser/v2/ast"

	catalogstore "github.com/heartmarshall/teambuilder/internal/catalog"
	"github.com/heartmarshall/teambuilder/internal/domain"
	"github.com/heartmarshall/teambuilder/internal/service/builder"
	catalogsvc "github.com/heartmarshall/teambuilder/internal/service/catalog"
	"github.com/heartmarshall/teambuilder/internal/service/teams"
	gql "github.com/heartmarshall/teambuilder/internal/transport/graphql"
)

//go:generate moq -out builder_service_mock_test.go -pkg resolver . builderService
//go:generate moq -out team_service_mock_test.go -pkg resolver . teamService
//go:generate moq -out catalog_service_mock_test.go -pkg resolver . catalogService

// builderService defines what resolver needs from the builder service.
type builderService interface {
	CreateSession(ctx context.Context, input builder.CreateSessionInput) (builder.View, error)
	GetSession(ctx context.Context, id uuid.UUID) (builder.View, error)
	CloseSession(ctx context.Context, id uuid.UUID) error

	SetMode(ctx context.Context, id uuid.UUID, input builder.ModeInput) (builder.MutationResult, error)
	Place(ctx context.Context, id uuid.UUID, input builder.PlaceInput) (builder.MutationResult, error)
	Clear(ctx context.Context, id uuid.UUID, input builder.ClearInput) (builder.MutationResult, error)
	Swap(ctx context.Context, id uuid.UUID, input builder.SwapInput) (builder.MutationResult, error)
	Drop(ctx context.Context, id uuid.UUID, input builder.DropInput) (builder.MutationResult, error)
	Click(ctx context.Context, id uuid.UUID, input builder.ClickInput) (builder.MutationResult, error)
	SetMeta(ctx context.Context, id uuid.UUID, input builder.MetaInput) (builder.MutationResult, error)
	Reset(ctx context.Context, id uuid.UUID, input builder.ResetInput) (builder.MutationResult, error)

	SaveAsNew(ctx context.Context, id uuid.UUID, input builder.SaveInput) (domain.SavedTeam, error)
	LoadTeam(ctx context.Context, id uuid.UUID, input builder.LoadInput) (builder.View, error)
	Import(ctx context.Context, id uuid.UUID, input builder.ImportInput) (builder.View, error)
	Share(ctx context.Context, id uuid.UUID) (builder.ShareResult, error)
}

// teamService defines what resolver needs from the saved-team service.
type teamService interface {
	List(ctx context.Context) ([]domain.SavedTeam, error)
	Edit(ctx context.Context, id string, input teams.EditInput) (domain.SavedTeam, error)
	Delete(ctx context.Context, id string) error
	Share(ctx context.Context, id string) (teams.ShareResult, error)
}

// catalogService defines what resolver needs from the catalog service.
type catalogService interface {
	Characters(ctx context.Context, f catalogsvc.CharacterFilter) ([]domain.Character, error)
	Psychubes(ctx context.Context, f catalogsvc.PsychubeFilter) ([]domain.Psychube, error)
	Facets(ctx context.Context) catalogstore.Facets
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	builder builderService
	teams   teamService
	catalog catalogService
	log     *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(
	log *slog.Logger,
	builder builderService,
	teams teamService,
	catalog catalogService,
) *Resolver {
	return &Resolver{
		builder: builder,
		teams:   teams,
		catalog: catalog,
		log:     log.With("component", "graphql"),
	}
}

// Executor binds the resolvers to schema.
func (r *Resolver) Executor(schema *ast.Schema) *gql.Executor {
	return gql.NewExecutor(r.log, schema, (&queryResolver{r}).object(), (&mutationResolver{r}).object())
}
