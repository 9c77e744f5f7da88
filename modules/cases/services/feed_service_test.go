package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claimdesk/claimdesk/modules/cases/domain/access"
	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/interaction"
	"github.com/claimdesk/claimdesk/modules/cases/infrastructure/persistence"
	"github.com/claimdesk/claimdesk/modules/cases/services"
	"github.com/claimdesk/claimdesk/pkg/composables"
	"github.com/claimdesk/claimdesk/pkg/types"
)

// stubFeedRow pairs a feed row with the case assignment columns the real
// query would join against.
type stubFeedRow struct {
	row         interaction.FeedRow
	workspaceID *uuid.UUID
	lawyerID    *uuid.UUID
	rentalID    *uuid.UUID
}

type feedRepositoryStub struct {
	rows     []stubFeedRow
	lastSort interaction.Sort
}

func (s *feedRepositoryStub) visible(scope access.Scope) []interaction.FeedRow {
	var out []interaction.FeedRow
	for _, r := range s.rows {
		if matchesScope(scope, r) {
			out = append(out, r.row)
		}
	}
	return out
}

func matchesScope(scope access.Scope, r stubFeedRow) bool {
	if scope.Unrestricted() {
		return true
	}
	if scope.Empty() {
		return false
	}
	clause := scope.Clause()
	args := clause.Args()
	if strings.Contains(clause.Fragment(), "assigned_lawyer_contact_id") {
		contactID := args[0].(uuid.UUID)
		return (r.lawyerID != nil && *r.lawyerID == contactID) ||
			(r.rentalID != nil && *r.rentalID == contactID)
	}
	workspaceID := args[0].(uuid.UUID)
	return r.workspaceID != nil && *r.workspaceID == workspaceID
}

func (s *feedRepositoryStub) GetPaginated(_ context.Context, scope access.Scope, params *interaction.FindParams) (*interaction.PageResult, error) {
	s.lastSort = params.Sort
	rows := s.visible(scope)
	total := int64(len(rows))

	offset := (params.Page - 1) * params.PageSize
	if offset > len(rows) {
		offset = len(rows)
	}
	end := offset + params.PageSize
	if end > len(rows) {
		end = len(rows)
	}
	return &interaction.PageResult{
		Rows:       rows[offset:end],
		TotalCount: total,
		HasMore:    total > int64(params.Page*params.PageSize),
	}, nil
}

func (s *feedRepositoryStub) Count(_ context.Context, scope access.Scope, _ interaction.Filter) (int64, error) {
	return int64(len(s.visible(scope))), nil
}

func (s *feedRepositoryStub) GetByID(_ context.Context, scope access.Scope, id uuid.UUID) (*interaction.Interaction, error) {
	for _, r := range s.rows {
		if r.row.Interaction.ID == id && matchesScope(scope, r) {
			out := r.row.Interaction
			return &out, nil
		}
	}
	return nil, persistence.ErrInteractionNotFound
}
func (s *feedRepositoryStub) Create(context.Context, *interaction.Interaction) error {
	panic("not used")
}
func (s *feedRepositoryStub) Update(context.Context, *interaction.Interaction) error {
	panic("not used")
}
func (s *feedRepositoryStub) Delete(context.Context, uuid.UUID) error { panic("not used") }

func actorCtx(actor types.Actor) context.Context {
	return composables.WithActor(context.Background(), actor)
}

func newStubRepo() (*feedRepositoryStub, uuid.UUID, uuid.UUID) {
	workspaceID := uuid.New()
	contactID := uuid.New()
	otherWorkspace := uuid.New()
	otherContact := uuid.New()

	repo := &feedRepositoryStub{rows: []stubFeedRow{
		{row: namedRow("CASE-1"), workspaceID: &workspaceID, lawyerID: &contactID},
		{row: namedRow("CASE-2"), workspaceID: &workspaceID, rentalID: &otherContact},
		{row: namedRow("CASE-3"), workspaceID: &otherWorkspace, rentalID: &contactID},
		{row: namedRow("CASE-4"), workspaceID: &otherWorkspace, lawyerID: &otherContact},
	}}
	return repo, workspaceID, contactID
}

func namedRow(caseNumber string) interaction.FeedRow {
	return interaction.FeedRow{
		Interaction: interaction.Interaction{ID: uuid.New(), CaseNumber: caseNumber},
		Case:        interaction.CaseContext{CaseStatus: "active"},
	}
}

func caseNumbers(items []services.FeedItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.CaseNumber)
	}
	return out
}

func TestFeedService_AdminSeesEverything(t *testing.T) {
	t.Parallel()
	repo, _, _ := newStubRepo()
	svc := services.NewFeedService(repo)

	ctx := actorCtx(types.Actor{ID: uuid.New(), Role: types.RoleAdmin})
	page, err := svc.GetFeed(ctx, &interaction.FindParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, []string{"CASE-1", "CASE-2", "CASE-3", "CASE-4"}, caseNumbers(page.Items))
	assert.Equal(t, int64(4), page.TotalCount)
	assert.False(t, page.HasMore)
}

func TestFeedService_ContactScopedActor(t *testing.T) {
	t.Parallel()
	repo, workspaceID, contactID := newStubRepo()
	svc := services.NewFeedService(repo)

	// The contact anchor wins over workspace membership: the actor sees
	// cases assigned to the contact in either role, across workspaces.
	ctx := actorCtx(types.Actor{
		ID:          uuid.New(),
		Role:        types.RoleWorkspaceUser,
		WorkspaceID: &workspaceID,
		ContactID:   &contactID,
	})
	page, err := svc.GetFeed(ctx, &interaction.FindParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, []string{"CASE-1", "CASE-3"}, caseNumbers(page.Items))
}

func TestFeedService_WorkspaceScopedActor(t *testing.T) {
	t.Parallel()
	repo, workspaceID, _ := newStubRepo()
	svc := services.NewFeedService(repo)

	ctx := actorCtx(types.Actor{
		ID:          uuid.New(),
		Role:        types.RoleLawyer,
		WorkspaceID: &workspaceID,
	})
	page, err := svc.GetFeed(ctx, &interaction.FindParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, []string{"CASE-1", "CASE-2"}, caseNumbers(page.Items))
}

func TestFeedService_UnanchoredActorGetsEmptyPage(t *testing.T) {
	t.Parallel()
	repo, _, _ := newStubRepo()
	svc := services.NewFeedService(repo)

	ctx := actorCtx(types.Actor{ID: uuid.New(), Role: types.RoleLawyer})
	page, err := svc.GetFeed(ctx, &interaction.FindParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.TotalCount)
	assert.False(t, page.HasMore)
}

func TestFeedService_NoActor(t *testing.T) {
	t.Parallel()
	repo, _, _ := newStubRepo()
	svc := services.NewFeedService(repo)

	_, err := svc.GetFeed(context.Background(), &interaction.FindParams{Page: 1, PageSize: 20})
	require.ErrorIs(t, err, composables.ErrNoActor)
}

func TestFeedService_HasMoreTracksTotal(t *testing.T) {
	t.Parallel()
	repo, _, _ := newStubRepo()
	svc := services.NewFeedService(repo)
	ctx := actorCtx(types.Actor{ID: uuid.New(), Role: types.RoleAdmin})

	page, err := svc.GetFeed(ctx, &interaction.FindParams{Page: 1, PageSize: 3})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.True(t, page.HasMore)

	page, err = svc.GetFeed(ctx, &interaction.FindParams{Page: 2, PageSize: 3})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.False(t, page.HasMore)
}

func TestFeedService_UnrecognizedSortIsPassedThrough(t *testing.T) {
	t.Parallel()
	repo, _, _ := newStubRepo()
	svc := services.NewFeedService(repo)
	ctx := actorCtx(types.Actor{ID: uuid.New(), Role: types.RoleAdmin})

	// An unknown sort field is not an error anywhere in the pipeline; the
	// storage layer falls back to the default ordering.
	_, err := svc.GetFeed(ctx, &interaction.FindParams{
		Page:     1,
		PageSize: 20,
		Sort:     interaction.Sort{Field: "evil; DROP TABLE interactions"},
	})
	require.NoError(t, err)
	assert.Equal(t, interaction.SortField("evil; DROP TABLE interactions"), repo.lastSort.Field)
}

func TestFeedService_CountVisible(t *testing.T) {
	t.Parallel()
	repo, workspaceID, _ := newStubRepo()
	svc := services.NewFeedService(repo)

	ctx := actorCtx(types.Actor{ID: uuid.New(), Role: types.RoleLawyer, WorkspaceID: &workspaceID})
	count, err := svc.CountVisible(ctx, interaction.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
