package graphql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/heartmarshall/teambuilder/internal/domain"
	"github.com/heartmarshall/teambuilder/pkg/ctxutil"
)

// NewErrorPresenter returns a gqlgen error presenter that maps domain errors
// to GraphQL error codes.
func NewErrorPresenter(log *slog.Logger) graphql.ErrorPresenterFunc {
	return func(ctx context.Context, err error) *gqlerror.Error {
		gqlErr := graphql.DefaultErrorPresenter(ctx, err)

		// gqlgen wraps resolver errors with the field path.
		origErr := err
		if unwrapped := errors.Unwrap(err); unwrapped != nil {
			origErr = unwrapped
		}

		switch {
		case errors.Is(origErr, domain.ErrNotFound):
			gqlErr.Extensions = map[string]any{"code": "NOT_FOUND"}

		case errors.Is(origErr, domain.ErrValidation):
			gqlErr.Extensions = map[string]any{"code": "VALIDATION"}
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				fields := make([]map[string]string, len(ve.Errors))
				for i, fe := range ve.Errors {
					fields[i] = map[string]string{"field": fe.Field, "message": fe.Message}
				}
				gqlErr.Extensions["fields"] = fields
			}

		case errors.Is(origErr, domain.ErrConflict):
			gqlErr.Extensions = map[string]any{"code": "CONFLICT"}

		case errors.Is(origErr, domain.ErrCorruptToken),
			errors.Is(origErr, domain.ErrMalformedShareData),
			errors.Is(origErr, domain.ErrEmptyLayout):
			gqlErr.Extensions = map[string]any{"code": "UNPROCESSABLE"}

		case errors.Is(origErr, ErrIntrospectionDisabled):
			gqlErr.Extensions = map[string]any{"code": "INTROSPECTION_DISABLED"}

		default:
			log.ErrorContext(ctx, "unexpected GraphQL error",
				slog.String("error", origErr.Error()),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			)
			gqlErr.Message = "internal error"
			gqlErr.Extensions = map[string]any{"code": "INTERNAL"}
		}

		return gqlErr
	}
}
