package actorctx

import (
	"context"
	"strings"
)

type actorKey struct{}

// WithActor stores the acting user's email on the context.
func WithActor(ctx context.Context, email string) context.Context {
	email = strings.TrimSpace(email)
	if email == "" {
		return ctx
	}
	return context.WithValue(ctx, actorKey{}, email)
}

// ActorFromContext returns the acting user's email, if any.
func ActorFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(actorKey{}).(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}
