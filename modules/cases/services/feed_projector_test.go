package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claimdesk/claimdesk/modules/cases/domain/entities/interaction"
)

func feedRow(caseNumber, insurance, lawyer, rental string) interaction.FeedRow {
	return interaction.FeedRow{
		Interaction: interaction.Interaction{
			ID:         uuid.New(),
			CaseID:     uuid.New(),
			CaseNumber: caseNumber,
			Type:       interaction.TypeCall,
			Priority:   interaction.PriorityNormal,
			Status:     interaction.StatusOpen,
			OccurredAt: time.Now(),
		},
		Case: interaction.CaseContext{
			InsuranceCompany:  insurance,
			LawyerName:        lawyer,
			RentalCompanyName: rental,
			CaseStatus:        "active",
		},
	}
}

func TestProjectFeedPage(t *testing.T) {
	t.Parallel()

	result := &interaction.PageResult{
		Rows: []interaction.FeedRow{
			feedRow("CASE-2", "Acme Insurance", "Smith", "WheelsFast"),
			feedRow("CASE-1", "Zenith Mutual", "Jones", ""),
			feedRow("CASE-1", "Acme Insurance", "Smith", "WheelsFast"),
		},
		TotalCount: 57,
		HasMore:    true,
	}

	page := projectFeedPage(result)
	require.Len(t, page.Items, 3)
	assert.Equal(t, int64(57), page.TotalCount)
	assert.True(t, page.HasMore)

	assert.Equal(t, "CASE-2", page.Items[0].CaseNumber)
	assert.Equal(t, "call", page.Items[0].Type)
	assert.Equal(t, "Acme Insurance", page.Items[0].InsuranceCompany)
}

func TestProjectFeedPage_FacetsAreDedupedAndSorted(t *testing.T) {
	t.Parallel()

	result := &interaction.PageResult{
		Rows: []interaction.FeedRow{
			feedRow("CASE-2", "Zenith Mutual", "Smith", "WheelsFast"),
			feedRow("CASE-1", "Acme Insurance", "Jones", "WheelsFast"),
			feedRow("CASE-2", "Acme Insurance", "Smith", ""),
		},
	}

	facets := projectFeedPage(result).PageFacets
	assert.Equal(t, []string{"Acme Insurance", "Zenith Mutual"}, facets.InsuranceCompanies)
	assert.Equal(t, []string{"Jones", "Smith"}, facets.Lawyers)
	assert.Equal(t, []string{"WheelsFast"}, facets.RentalCompanies)
	assert.Equal(t, []string{"CASE-1", "CASE-2"}, facets.CaseNumbers)
}

func TestProjectFeedPage_OrphanedInteraction(t *testing.T) {
	t.Parallel()

	// A row whose parent case was deleted carries only empty case context.
	orphan := feedRow("CASE-9", "", "", "")
	orphan.Case.CaseStatus = ""
	result := &interaction.PageResult{Rows: []interaction.FeedRow{orphan}, TotalCount: 1}

	page := projectFeedPage(result)
	require.Len(t, page.Items, 1)
	assert.Empty(t, page.Items[0].ClientName)
	assert.Empty(t, page.Items[0].InsuranceCompany)
	assert.Empty(t, page.Items[0].CaseStatus)

	// The interaction keeps its own denormalized case number, so that facet
	// still lists it; the case-derived facets stay empty.
	assert.Equal(t, []string{"CASE-9"}, page.PageFacets.CaseNumbers)
	assert.Empty(t, page.PageFacets.InsuranceCompanies)
	assert.Empty(t, page.PageFacets.Lawyers)
	assert.Empty(t, page.PageFacets.RentalCompanies)
}

func TestProjectFeedPage_EmptyPage(t *testing.T) {
	t.Parallel()

	page := projectFeedPage(&interaction.PageResult{})
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.TotalCount)
	assert.False(t, page.HasMore)
}

func TestProjectFeedItem_NilTags(t *testing.T) {
	t.Parallel()

	row := feedRow("CASE-1", "", "", "")
	row.Interaction.Tags = nil
	item := projectFeedItem(row)
	assert.NotNil(t, item.Tags)
	assert.Empty(t, item.Tags)
}
