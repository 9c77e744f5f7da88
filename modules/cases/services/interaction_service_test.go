package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/claimdesk/claimdesk/modules/cases/infrastructure/persistence"
	"github.com/claimdesk/claimdesk/modules/cases/services"
	"github.com/claimdesk/claimdesk/pkg/composables"
	"github.com/claimdesk/claimdesk/pkg/types"
)

func TestInteractionService_GetByID_AppliesVisibilityScope(t *testing.T) {
	t.Parallel()

	repo, workspaceID, contactID := newStubRepo()
	svc := services.NewInteractionService(repo, nil, nil, nil)

	ownRow := repo.rows[0].row.Interaction     // lawyer contact assigned
	foreignRow := repo.rows[3].row.Interaction // unrelated workspace and contacts

	t.Run("admin reads any interaction", func(t *testing.T) {
		ctx := actorCtx(types.Actor{Role: types.RoleAdmin})
		got, err := svc.GetByID(ctx, foreignRow.ID)
		require.NoError(t, err)
		require.Equal(t, foreignRow.ID, got.ID)
	})

	t.Run("contact-anchored actor reads own case's interaction", func(t *testing.T) {
		ctx := actorCtx(types.Actor{Role: types.RoleWorkspaceUser, ContactID: &contactID})
		got, err := svc.GetByID(ctx, ownRow.ID)
		require.NoError(t, err)
		require.Equal(t, ownRow.ID, got.ID)
	})

	t.Run("out-of-scope row reads as not found", func(t *testing.T) {
		ctx := actorCtx(types.Actor{Role: types.RoleWorkspaceUser, ContactID: &contactID})
		_, err := svc.GetByID(ctx, foreignRow.ID)
		require.ErrorIs(t, err, persistence.ErrInteractionNotFound)
	})

	t.Run("fail-closed actor reads nothing by id", func(t *testing.T) {
		ctx := actorCtx(types.Actor{Role: types.RoleWorkspaceUser})
		_, err := svc.GetByID(ctx, ownRow.ID)
		require.ErrorIs(t, err, persistence.ErrInteractionNotFound)
	})

	t.Run("workspace-anchored actor stays inside the workspace", func(t *testing.T) {
		ctx := actorCtx(types.Actor{Role: types.RoleLawyer, WorkspaceID: &workspaceID})
		got, err := svc.GetByID(ctx, ownRow.ID)
		require.NoError(t, err)
		require.Equal(t, ownRow.ID, got.ID)

		_, err = svc.GetByID(ctx, foreignRow.ID)
		require.ErrorIs(t, err, persistence.ErrInteractionNotFound)
	})

	t.Run("no actor is rejected", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), ownRow.ID)
		require.ErrorIs(t, err, composables.ErrNoActor)
	})
}
