package services

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/interaction"
)

// FeedItem is one projected feed entry. Case-derived fields come from the
// joined parent case and are empty when the case no longer exists.
type FeedItem struct {
	ID                uuid.UUID `json:"id"`
	CaseID            uuid.UUID `json:"caseId"`
	CaseNumber        string    `json:"caseNumber"`
	Type              string    `json:"type"`
	Priority          string    `json:"priority"`
	Status            string    `json:"status"`
	Tags              []string  `json:"tags"`
	Situation         string    `json:"situation"`
	ActionTaken       string    `json:"actionTaken"`
	Outcome           string    `json:"outcome"`
	OccurredAt        time.Time `json:"occurredAt"`
	ClientName        string    `json:"clientName"`
	InsuranceCompany  string    `json:"insuranceCompany"`
	LawyerName        string    `json:"lawyerName"`
	RentalCompanyName string    `json:"rentalCompanyName"`
	CaseStatus        string    `json:"caseStatus"`
}

// PageFacets are the distinct case-derived values present on the current
// page only. They describe what the caller is looking at, not the whole
// visible data set, so they change as the caller pages.
type PageFacets struct {
	InsuranceCompanies []string `json:"insuranceCompanies"`
	Lawyers            []string `json:"lawyers"`
	RentalCompanies    []string `json:"rentalCompanies"`
	CaseNumbers        []string `json:"caseNumbers"`
}

// FeedPage is the projected feed response for one page.
type FeedPage struct {
	Items      []FeedItem `json:"items"`
	TotalCount int64      `json:"totalCount"`
	HasMore    bool       `json:"hasMore"`
	PageFacets PageFacets `json:"pageFacets"`
}

func projectFeedPage(result *interaction.PageResult) *FeedPage {
	items := make([]FeedItem, 0, len(result.Rows))
	for _, row := range result.Rows {
		items = append(items, projectFeedItem(row))
	}
	return &FeedPage{
		Items:      items,
		TotalCount: result.TotalCount,
		HasMore:    result.HasMore,
		PageFacets: deriveFacets(result.Rows),
	}
}

func projectFeedItem(row interaction.FeedRow) FeedItem {
	tags := row.Interaction.Tags
	if tags == nil {
		tags = []string{}
	}
	return FeedItem{
		ID:                row.Interaction.ID,
		CaseID:            row.Interaction.CaseID,
		CaseNumber:        row.Interaction.CaseNumber,
		Type:              string(row.Interaction.Type),
		Priority:          string(row.Interaction.Priority),
		Status:            string(row.Interaction.Status),
		Tags:              tags,
		Situation:         row.Interaction.Situation,
		ActionTaken:       row.Interaction.ActionTaken,
		Outcome:           row.Interaction.Outcome,
		OccurredAt:        row.Interaction.OccurredAt,
		ClientName:        row.Case.ClientName,
		InsuranceCompany:  row.Case.InsuranceCompany,
		LawyerName:        row.Case.LawyerName,
		RentalCompanyName: row.Case.RentalCompanyName,
		CaseStatus:        row.Case.CaseStatus,
	}
}

// deriveFacets collects the distinct non-empty case-derived values of the
// page, sorted for stable output. Orphaned interactions contribute nothing.
func deriveFacets(rows []interaction.FeedRow) PageFacets {
	insurance := map[string]struct{}{}
	lawyers := map[string]struct{}{}
	rentals := map[string]struct{}{}
	caseNumbers := map[string]struct{}{}
	for _, row := range rows {
		if row.Case.InsuranceCompany != "" {
			insurance[row.Case.InsuranceCompany] = struct{}{}
		}
		if row.Case.LawyerName != "" {
			lawyers[row.Case.LawyerName] = struct{}{}
		}
		if row.Case.RentalCompanyName != "" {
			rentals[row.Case.RentalCompanyName] = struct{}{}
		}
		if row.Interaction.CaseNumber != "" {
			caseNumbers[row.Interaction.CaseNumber] = struct{}{}
		}
	}
	return PageFacets{
		InsuranceCompanies: sortedKeys(insurance),
		Lawyers:            sortedKeys(lawyers),
		RentalCompanies:    sortedKeys(rentals),
		CaseNumbers:        sortedKeys(caseNumbers),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
