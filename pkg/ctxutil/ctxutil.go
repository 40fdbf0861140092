package ctxutil

import (
	"context"
	"strings"
)

type ctxKey string

const (
	profileKey   ctxKey = "profile_id"
	requestIDKey ctxKey = "request_id"
)

// DefaultProfile is used when a request names no profile.
const DefaultProfile = "default"

// WithProfile stores the profile id in the context. Blank ids are stored
// as DefaultProfile.
func WithProfile(ctx context.Context, id string) context.Context {
	id = strings.TrimSpace(id)
	if id == "" {
		id = DefaultProfile
	}
	return context.WithValue(ctx, profileKey, id)
}

// ProfileFromCtx extracts the profile id from the context.
// Returns DefaultProfile if absent.
func ProfileFromCtx(ctx context.Context) string {
	id, ok := ctx.Value(profileKey).(string)
	if !ok || id == "" {
		return DefaultProfile
	}
	return id
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
