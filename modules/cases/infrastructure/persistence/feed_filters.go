package persistence

import (
	"github.com/claimdesk/claimdesk/modules/cases/domain/access"
	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/interaction"
	"github.com/claimdesk/claimdesk/pkg/repo"
)

// searchDocumentExpr is the full-text document over the interaction's free
// text fields. Kept in sync with the expression index in the schema.
const searchDocumentExpr = "to_tsvector('english', coalesce(i.situation, '') || ' ' || coalesce(i.action_taken, '') || ' ' || coalesce(i.outcome, ''))"

var feedSortColumns = map[interaction.SortField]string{
	interaction.SortByTimestamp:  "i.occurred_at",
	interaction.SortByCaseNumber: "i.case_number",
	interaction.SortByPriority:   "i.priority",
	interaction.SortByStatus:     "i.status",
}

// buildFeedWhere compiles the visibility scope plus the recognized filters
// into a clause set. The scope is the builder's base clause; every present
// filter contributes exactly one clause and an absent one contributes
// nothing, so bound parameters always match accepted filters 1:1.
func buildFeedWhere(scope access.Scope, f interaction.Filter) *repo.WhereBuilder {
	b := repo.NewWhere(scope.Clause())

	if f.CaseNumber != "" {
		b.Add(repo.Contains("i.case_number", f.CaseNumber))
	}
	if f.CaseID != nil {
		b.Add(repo.Eq("i.case_id", *f.CaseID))
	}
	if len(f.Types) > 0 {
		b.Add(repo.AnyOf("i.type", toStrings(f.Types)))
	}
	if len(f.Priorities) > 0 {
		b.Add(repo.AnyOf("i.priority", toStrings(f.Priorities)))
	}
	if len(f.Statuses) > 0 {
		b.Add(repo.AnyOf("i.status", toStrings(f.Statuses)))
	}
	if f.DateFrom != nil {
		b.Add(repo.Gte("i.occurred_at", *f.DateFrom))
	}
	if f.DateTo != nil {
		b.Add(repo.Lte("i.occurred_at", *f.DateTo))
	}
	if f.SearchQuery != "" {
		b.Add(repo.FullText(searchDocumentExpr, f.SearchQuery))
	}
	if len(f.Tags) > 0 {
		b.Add(repo.Overlaps("i.tags", f.Tags))
	}
	if f.InsuranceCompany != "" {
		b.Add(repo.Contains("c.insurance_company", f.InsuranceCompany))
	}
	if f.LawyerAssigned != "" {
		b.Add(repo.Contains("lc.name", f.LawyerAssigned))
	}
	if f.RentalCompany != "" {
		b.Add(repo.Contains("rc.name", f.RentalCompany))
	}

	return b
}

// buildLookupWhere compiles a single-entity lookup predicate. The scope is
// the base clause, same as the feed, so a row the actor cannot see in the
// feed cannot be read by id either.
func buildLookupWhere(scope access.Scope, column string, value any) *repo.WhereBuilder {
	return repo.NewWhere(scope.Clause()).Add(repo.Eq(column, value))
}

// feedOrderClause renders the ORDER BY for a normalized sort. Ties are
// resolved by storage order; no secondary key is applied.
func feedOrderClause(s interaction.Sort) string {
	s = s.Normalize()
	sortBy := repo.SortBy[interaction.SortField]{
		Fields: []repo.SortByField[interaction.SortField]{
			{Field: s.Field, Ascending: s.Direction == interaction.SortAsc},
		},
	}
	return sortBy.ToSQL(feedSortColumns)
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
