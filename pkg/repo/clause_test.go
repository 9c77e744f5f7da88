package repo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/claimdesk/claimdesk/pkg/repo"
)

func TestWhereBuilder_Build(t *testing.T) {
	t.Run("base clause only", func(t *testing.T) {
		exprs, args, err := repo.NewWhere(repo.All()).Build(1)
		require.NoError(t, err)
		require.Equal(t, []string{"TRUE"}, exprs)
		require.Empty(t, args)
	})

	t.Run("placeholders are sequential with no gaps", func(t *testing.T) {
		b := repo.NewWhere(repo.Eq("c.workspace_id", "ws-1")).
			Add(repo.Contains("i.case_number", "2024")).
			Add(repo.AnyOf("i.priority", []string{"urgent", "high"})).
			Add(repo.Gte("i.occurred_at", "2024-01-01"))

		exprs, args, err := b.Build(1)
		require.NoError(t, err)
		require.Equal(t, []string{
			"c.workspace_id = $1",
			"i.case_number ILIKE $2",
			"i.priority = ANY($3)",
			"i.occurred_at >= $4",
		}, exprs)
		require.Len(t, args, 4)
		require.Equal(t, "%2024%", args[1])
	})

	t.Run("skipped clauses reserve nothing", func(t *testing.T) {
		b := repo.NewWhere(repo.All()).
			Add(repo.Clause{}).
			Add(repo.Eq("i.case_id", "case-9"))

		exprs, args, err := b.Build(1)
		require.NoError(t, err)
		require.Equal(t, []string{"TRUE", "i.case_id = $1"}, exprs)
		require.Len(t, args, 1)
	})

	t.Run("start index offsets numbering", func(t *testing.T) {
		exprs, _, err := repo.NewWhere(repo.Eq("i.status", "open")).Build(3)
		require.NoError(t, err)
		require.Equal(t, []string{"i.status = $3"}, exprs)
	})

	t.Run("marker and argument count must agree", func(t *testing.T) {
		b := repo.NewWhere(repo.NewClause("i.type = ? AND i.status = ?", "call"))
		_, _, err := b.Build(1)
		require.Error(t, err)
	})

	t.Run("argument count always equals placeholder count", func(t *testing.T) {
		b := repo.NewWhere(repo.All()).
			Add(repo.Overlaps("i.tags", []string{"towing", "glass"})).
			Add(repo.FullText("i.search_document", "rear bumper")).
			Add(repo.Lte("i.occurred_at", "2024-12-31"))

		exprs, args, err := b.Build(1)
		require.NoError(t, err)

		placeholders := 0
		for _, e := range exprs {
			placeholders += strings.Count(e, "$")
		}
		require.Equal(t, len(args), placeholders)
	})
}

func TestContains_EscapesLikeMetacharacters(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain substring", "2024", "%2024%"},
		{"percent matched literally", "100%", `%100\%%`},
		{"underscore matched literally", "case_number", `%case\_number%`},
		{"backslash escaped first", `a\b`, `%a\\b%`},
		{"bare wildcard cannot match everything", "%", `%\%%`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := repo.Contains("i.case_number", tc.input)
			require.Equal(t, "i.case_number ILIKE ?", c.Fragment())
			require.Equal(t, []any{tc.want}, c.Args())
		})
	}
}

func TestOr(t *testing.T) {
	t.Run("combines clauses into one disjunction", func(t *testing.T) {
		c := repo.Or(
			repo.Eq("c.assigned_lawyer_contact_id", "contact-1"),
			repo.Eq("c.assigned_rental_company_contact_id", "contact-1"),
		)
		require.Equal(
			t,
			"(c.assigned_lawyer_contact_id = ? OR c.assigned_rental_company_contact_id = ?)",
			c.Fragment(),
		)
		require.Len(t, c.Args(), 2)
	})

	t.Run("empty clauses are dropped", func(t *testing.T) {
		c := repo.Or(repo.Clause{}, repo.Eq("i.status", "open"))
		require.Equal(t, "(i.status = ?)", c.Fragment())
	})

	t.Run("all empty yields empty clause", func(t *testing.T) {
		require.True(t, repo.Or().IsEmpty())
	})
}

func TestJoinWhere(t *testing.T) {
	require.Equal(t, "", repo.JoinWhere())
	require.Equal(t, "WHERE a = $1", repo.JoinWhere("a = $1"))
	require.Equal(t, "WHERE a = $1 AND b = $2", repo.JoinWhere("a = $1", "", "b = $2"))
}

func TestFormatLimitOffset(t *testing.T) {
	require.Equal(t, "", repo.FormatLimitOffset(0, 0))
	require.Equal(t, "LIMIT 21", repo.FormatLimitOffset(21, 0))
	require.Equal(t, "LIMIT 21 OFFSET 40", repo.FormatLimitOffset(21, 40))
	require.Equal(t, "OFFSET 40", repo.FormatLimitOffset(0, 40))
}

func TestSortBy_ToSQL(t *testing.T) {
	type field string
	mapping := map[field]string{
		"timestamp":  "i.occurred_at",
		"caseNumber": "i.case_number",
	}

	t.Run("renders mapped fields", func(t *testing.T) {
		s := repo.SortBy[field]{Fields: []repo.SortByField[field]{
			{Field: "timestamp", Ascending: false},
			{Field: "caseNumber", Ascending: true},
		}}
		require.Equal(t, "ORDER BY i.occurred_at DESC, i.case_number ASC", s.ToSQL(mapping))
	})

	t.Run("unmapped fields are skipped", func(t *testing.T) {
		s := repo.SortBy[field]{Fields: []repo.SortByField[field]{{Field: "bogus"}}}
		require.Equal(t, "", s.ToSQL(mapping))
	})

	t.Run("empty sort renders nothing", func(t *testing.T) {
		require.Equal(t, "", repo.SortBy[field]{}.ToSQL(mapping))
	})
}
