package composables

import (
	"context"
	"errors"

	"github.com/claimdesk/claimdesk/pkg/constants"
	"github.com/claimdesk/claimdesk/pkg/types"
)

var ErrNoActor = errors.New("no actor found in context")

// WithActor returns a new context carrying the authenticated actor.
func WithActor(ctx context.Context, actor types.Actor) context.Context {
	return context.WithValue(ctx, constants.ActorKey, actor)
}

// UseActor returns the authenticated actor from the context. The actor is
// resolved externally by the session layer; the engine never resolves
// identity itself.
func UseActor(ctx context.Context) (types.Actor, error) {
	actor, ok := ctx.Value(constants.ActorKey).(types.Actor)
	if !ok {
		return types.Actor{}, ErrNoActor
	}
	return actor, nil
}
