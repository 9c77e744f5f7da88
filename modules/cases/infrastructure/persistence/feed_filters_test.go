package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/claimdesk/claimdesk/modules/cases/domain/access"
	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/interaction"
	"github.com/claimdesk/claimdesk/pkg/types"
)

func adminScope() access.Scope {
	return access.ScopeFor(types.Actor{ID: uuid.New(), Role: types.RoleAdmin})
}

func TestBuildFeedWhere_ParameterCountMatchesAcceptedFilters(t *testing.T) {
	caseID := uuid.New()
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)

	cases := []struct {
		name       string
		filter     interaction.Filter
		wantParams int
	}{
		{"no filters", interaction.Filter{}, 0},
		{"case number only", interaction.Filter{CaseNumber: "2024-00123"}, 1},
		{"case id only", interaction.Filter{CaseID: &caseID}, 1},
		{
			"list filters",
			interaction.Filter{
				Types:      []interaction.Type{interaction.TypeCall, interaction.TypeEmail},
				Priorities: []interaction.Priority{interaction.PriorityUrgent},
				Statuses:   []interaction.Status{interaction.StatusOpen},
			},
			3,
		},
		{"date range", interaction.Filter{DateFrom: &from, DateTo: &to}, 2},
		{"search query", interaction.Filter{SearchQuery: "rear bumper damage"}, 1},
		{"tags", interaction.Filter{Tags: []string{"towing", "glass"}}, 1},
		{
			"joined case fields",
			interaction.Filter{
				InsuranceCompany: "Acme",
				LawyerAssigned:   "Stone",
				RentalCompany:    "Wheels",
			},
			3,
		},
		{
			"everything at once",
			interaction.Filter{
				CaseNumber:       "2024",
				CaseID:           &caseID,
				Types:            []interaction.Type{interaction.TypeCall},
				Priorities:       []interaction.Priority{interaction.PriorityHigh},
				Statuses:         []interaction.Status{interaction.StatusPending},
				DateFrom:         &from,
				DateTo:           &to,
				SearchQuery:      "settlement",
				Tags:             []string{"legal"},
				InsuranceCompany: "Acme",
				LawyerAssigned:   "Stone",
				RentalCompany:    "Wheels",
			},
			12,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := buildFeedWhere(adminScope(), tc.filter)
			exprs, args, err := b.Build(1)
			require.NoError(t, err)
			require.Len(t, args, tc.wantParams)

			// The scope clause always leads; the unrestricted scope binds
			// nothing.
			require.Equal(t, "TRUE", exprs[0])

			placeholders := 0
			for _, e := range exprs {
				placeholders += strings.Count(e, "$")
			}
			require.Equal(t, tc.wantParams, placeholders)
		})
	}
}

func TestBuildFeedWhere_PlaceholdersHaveNoGaps(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	// DateFrom set, DateTo skipped: the skipped bound must not reserve an
	// index.
	f := interaction.Filter{
		Priorities: []interaction.Priority{interaction.PriorityUrgent},
		DateFrom:   &from,
		Tags:       []string{"towing"},
	}

	exprs, args, err := buildFeedWhere(adminScope(), f).Build(1)
	require.NoError(t, err)
	require.Len(t, args, 3)
	require.Equal(t, []string{
		"TRUE",
		"i.priority = ANY($1)",
		"i.occurred_at >= $2",
		"i.tags && $3",
	}, exprs)
}

func TestBuildFeedWhere_ScopeBindsFirst(t *testing.T) {
	workspaceID := uuid.New()
	scope := access.ScopeFor(types.Actor{
		ID:          uuid.New(),
		Role:        types.RoleWorkspaceUser,
		WorkspaceID: &workspaceID,
	})

	exprs, args, err := buildFeedWhere(scope, interaction.Filter{CaseNumber: "2024"}).Build(1)
	require.NoError(t, err)
	require.Equal(t, "c.workspace_id = $1", exprs[0])
	require.Equal(t, "i.case_number ILIKE $2", exprs[1])
	require.Equal(t, workspaceID, args[0])
}

func TestBuildFeedWhere_FailClosedScope(t *testing.T) {
	scope := access.ScopeFor(types.Actor{ID: uuid.New(), Role: types.RoleWorkspaceUser})

	exprs, args, err := buildFeedWhere(scope, interaction.Filter{}).Build(1)
	require.NoError(t, err)
	require.Equal(t, []string{"FALSE"}, exprs)
	require.Empty(t, args)
}

func TestBuildLookupWhere_ScopeGatesSingleRowReads(t *testing.T) {
	id := uuid.New()

	t.Run("unrestricted scope binds only the id", func(t *testing.T) {
		exprs, args, err := buildLookupWhere(adminScope(), "i.id", id).Build(1)
		require.NoError(t, err)
		require.Equal(t, []string{"TRUE", "i.id = $1"}, exprs)
		require.Equal(t, []any{id}, args)
	})

	t.Run("workspace scope leads the predicate", func(t *testing.T) {
		workspaceID := uuid.New()
		scope := access.ScopeFor(types.Actor{
			ID:          uuid.New(),
			Role:        types.RoleWorkspaceUser,
			WorkspaceID: &workspaceID,
		})

		exprs, args, err := buildLookupWhere(scope, "c.id", id).Build(1)
		require.NoError(t, err)
		require.Equal(t, []string{"c.workspace_id = $1", "c.id = $2"}, exprs)
		require.Equal(t, []any{workspaceID, id}, args)
	})

	t.Run("fail-closed scope can never match", func(t *testing.T) {
		scope := access.ScopeFor(types.Actor{ID: uuid.New(), Role: types.RoleWorkspaceUser})

		exprs, _, err := buildLookupWhere(scope, "i.id", id).Build(1)
		require.NoError(t, err)
		require.Equal(t, "FALSE", exprs[0])
	})
}

func TestFeedOrderClause(t *testing.T) {
	t.Run("default is timestamp descending", func(t *testing.T) {
		require.Equal(t, "ORDER BY i.occurred_at DESC", feedOrderClause(interaction.Sort{}))
	})

	t.Run("allow-listed field", func(t *testing.T) {
		clause := feedOrderClause(interaction.Sort{
			Field:     interaction.SortByCaseNumber,
			Direction: interaction.SortAsc,
		})
		require.Equal(t, "ORDER BY i.case_number ASC", clause)
	})

	t.Run("unknown field falls back silently", func(t *testing.T) {
		clause := feedOrderClause(interaction.Sort{Field: "evil; DROP TABLE", Direction: interaction.SortAsc})
		require.Equal(t, "ORDER BY i.occurred_at ASC", clause)
	})
}
