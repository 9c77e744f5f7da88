package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/claimdesk/claimdesk/pkg/composables"
	"github.com/claimdesk/claimdesk/pkg/types"
)

// Identity headers set by the authenticating gateway in front of this
// service. Requests without them pass through actorless; handlers that need
// an actor reject those with 401.
const (
	HeaderActorID        = "X-Actor-Id"
	HeaderActorRole      = "X-Actor-Role"
	HeaderActorWorkspace = "X-Actor-Workspace"
	HeaderActorContact   = "X-Actor-Contact"
)

// ActorFromHeaders resolves the calling actor from gateway identity headers
// and stores it in the request context.
func ActorFromHeaders() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actorID, err := uuid.Parse(r.Header.Get(HeaderActorID))
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			actor := types.Actor{
				ID:   actorID,
				Role: types.Role(r.Header.Get(HeaderActorRole)),
			}
			if id, err := uuid.Parse(r.Header.Get(HeaderActorWorkspace)); err == nil {
				actor.WorkspaceID = &id
			}
			if id, err := uuid.Parse(r.Header.Get(HeaderActorContact)); err == nil {
				actor.ContactID = &id
			}
			next.ServeHTTP(w, r.WithContext(composables.WithActor(r.Context(), actor)))
		})
	}
}
