package domain

import "context"

type actorCtxKey struct{}

// WithActor returns a context attributing subsequent writes to actor.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorCtxKey{}, actor)
}

// ActorFrom returns the acting identity, falling back to SystemActor.
func ActorFrom(ctx context.Context) string {
	if actor, ok := ctx.Value(actorCtxKey{}).(string); ok && actor != "" {
		return actor
	}
	return SystemActor
}
